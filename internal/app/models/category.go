package models

import "time"

// Category defines the category model based on the 'category' table.
// Students and products optionally reference a category; a referenced
// category may not be deleted.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
