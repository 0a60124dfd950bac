package dto

// CategoryRequest carries the fields for creating or updating a category.
// Name is required; description is optional.
type CategoryRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}
