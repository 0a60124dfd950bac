package helpers

import "strings"

// NullableString coalesces an optional text input to a nil pointer when the
// trimmed value is empty, so the store receives NULL instead of "".
func NullableString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NullableInt64 converts an id to a nil pointer when it is zero.
func NullableInt64(i int64) *int64 {
	if i == 0 {
		return nil
	}
	return &i
}
