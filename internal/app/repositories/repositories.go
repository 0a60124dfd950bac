package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Shared repository error types
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserDuplicate    = errors.New("user with this username or email already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryDuplicate = errors.New("category with this name already exists")
	ErrStudentNotFound  = errors.New("student not found")
	ErrStudentDuplicate = errors.New("student with this email already exists")
	ErrProductNotFound  = errors.New("product not found")
	// ErrCategoryReference marks a write naming a category id that does not
	// exist.
	ErrCategoryReference = errors.New("referenced category does not exist")
)

// Repositories holds one repository per entity, all sharing the pool.
type Repositories struct {
	User     *UserRepository
	Category *CategoryRepository
	Student  *StudentRepository
	Product  *ProductRepository
}

// NewRepositories creates all repositories over a single connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Category: NewCategoryRepository(db),
		Student:  NewStudentRepository(db),
		Product:  NewProductRepository(db),
	}
}
