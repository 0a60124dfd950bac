package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/naveen/management/internal/app/models"
	"github.com/naveen/management/internal/app/models/dto"
	"github.com/naveen/management/internal/app/repositories"
	"github.com/naveen/management/internal/pkg/apperrors"
	"github.com/naveen/management/internal/pkg/helpers"
)

// StudentStore is the store access the student service needs.
type StudentStore interface {
	List(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// StudentService handles student-related operations
type StudentService struct {
	students StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore) *StudentService {
	return &StudentService{students: students}
}

// ListStudents retrieves all students with their category names,
// newest-first.
func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID.
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("Student not found")
	}
	return student, nil
}

// buildStudent validates a student request and converts it into a model,
// coalescing empty optional fields to NULL.
func buildStudent(req dto.StudentRequest, missingMsg string) (*models.Student, error) {
	if strings.TrimSpace(req.FirstName) == "" ||
		strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError(missingMsg)
	}

	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("Date of birth must be a valid date")
	}

	categoryID, err := parseOptionalID(req.CategoryID.String())
	if err != nil {
		return nil, apperrors.NewValidationError("Category must be a valid category id")
	}

	return &models.Student{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       helpers.NullableString(req.Phone),
		DateOfBirth: dateOfBirth,
		CategoryID:  categoryID,
		Address:     helpers.NullableString(req.Address),
	}, nil
}

// parseOptionalID parses an optional id field, coalescing empty input to nil.
func parseOptionalID(value string) (*int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}
	return helpers.NullableInt64(id), nil
}

// CreateStudent validates and creates a new student. The enrollment date is
// assigned by the store at insert time.
func (s *StudentService) CreateStudent(ctx context.Context, req dto.StudentRequest) (*models.Student, error) {
	student, err := buildStudent(req, "Missing required fields: First name, last name, and email are required")
	if err != nil {
		return nil, err
	}

	if err := s.students.Create(ctx, student); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStudentDuplicate):
			return nil, apperrors.NewConflictError(apperrors.MsgStudentDuplicate)
		case errors.Is(err, repositories.ErrCategoryReference):
			return nil, apperrors.NewValidationError("Selected category does not exist")
		default:
			return nil, apperrors.NewStoreError(err)
		}
	}

	return student, nil
}

// UpdateStudent validates and replaces a student's editable fields.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req dto.StudentRequest) (*models.Student, error) {
	student, err := buildStudent(req, "First name, last name, and email are required")
	if err != nil {
		return nil, err
	}
	student.ID = id

	if err := s.students.Update(ctx, student); err != nil {
		switch {
		case errors.Is(err, repositories.ErrStudentNotFound):
			return nil, apperrors.NewNotFoundError("Student not found")
		case errors.Is(err, repositories.ErrStudentDuplicate):
			return nil, apperrors.NewConflictError(apperrors.MsgStudentDuplicate)
		case errors.Is(err, repositories.ErrCategoryReference):
			return nil, apperrors.NewValidationError("Selected category does not exist")
		default:
			return nil, apperrors.NewStoreError(err)
		}
	}

	return student, nil
}

// DeleteStudent removes a student. Deleting a missing ID reports success.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return apperrors.NewStoreError(err)
	}
	return nil
}
