package dto

// StudentRequest carries the fields for creating or updating a student.
// First name, last name and email are required; the rest are optional and
// coalesce to NULL when left empty.
type StudentRequest struct {
	FirstName   string `json:"first_name" form:"first_name"`
	LastName    string `json:"last_name" form:"last_name"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	DateOfBirth string `json:"date_of_birth" form:"date_of_birth"`
	CategoryID  Flex   `json:"category_id" form:"category_id"`
	Address     string `json:"address" form:"address"`
}
