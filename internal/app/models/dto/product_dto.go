package dto

// ProductRequest carries the fields for creating or updating a product.
// Name and price are required; price must parse as a non-negative number,
// stock defaults to 0.
type ProductRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Price       Flex   `json:"price" form:"price"`
	Stock       Flex   `json:"stock" form:"stock"`
	CategoryID  Flex   `json:"category_id" form:"category_id"`
}
