// Package services holds the business rules for the four managed entities.
// Each service validates request input before any store access, coalesces
// optional fields to NULL, and maps repository errors to apperrors kinds.
// Services depend on small store interfaces so tests can substitute fakes.
package services

import (
	"strings"
	"time"
)

// parseDate accepts a date in YYYY-MM-DD form or a full RFC3339 timestamp
// (rows echoed back into edit requests carry the latter). Empty input
// coalesces to nil.
func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &t, nil
}
