package models

import "time"

// Student defines the student model based on the 'student' table.
// CategoryName is denormalized from the category join in list queries.
type Student struct {
	ID             int64      `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	CategoryID     *int64     `json:"category_id"`
	CategoryName   *string    `json:"category_name"`
	Address        *string    `json:"address"`
	EnrollmentDate *time.Time `json:"enrollment_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
