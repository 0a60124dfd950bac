package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Flex is a string-backed field that accepts either a JSON string or a JSON
// number. The browser client posts form state as strings, but rows echoed
// back into an edit request carry numeric price/stock/category_id values, so
// both encodings arrive on the same endpoints. Form binding works through the
// plain string kind.
type Flex string

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flex) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value")
	}

	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		return json.Unmarshal(data, (*string)(f))
	}

	// Numbers and booleans keep their literal text form.
	*f = Flex(data)
	return nil
}

// String returns the field's text form.
func (f Flex) String() string {
	return string(f)
}
