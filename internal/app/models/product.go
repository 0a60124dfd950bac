package models

import "time"

// Product defines the product model based on the 'product' table.
// CategoryName is denormalized from the category join in list queries.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	CategoryID   *int64    `json:"category_id"`
	CategoryName *string   `json:"category_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
