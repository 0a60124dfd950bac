package dto

// CreateUserRequest carries the fields for creating a user.
// Username, email and password are required; phone is optional.
type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Phone    string `json:"phone" form:"phone"`
}

// UpdateUserRequest carries the fields for updating a user. An empty
// password means "keep the current one".
type UpdateUserRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Phone    string `json:"phone" form:"phone"`
}
