package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/naveen/management/internal/app/models"
	"github.com/naveen/management/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentSelect = `
	SELECT s.id, s.first_name, s.last_name, s.email, s.phone, s.date_of_birth,
	       s.category_id, c.name AS category_name, s.address, s.enrollment_date,
	       s.created_at, s.updated_at
	FROM student s
	LEFT JOIN category c ON s.category_id = c.id
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Phone,
		&student.DateOfBirth,
		&student.CategoryID,
		&student.CategoryName,
		&student.Address,
		&student.EnrollmentDate,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// List retrieves all students joined with their category name, newest-first.
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, studentSelect+" ORDER BY s.id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student with its category name. Returns (nil, nil)
// when no row matches.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, studentSelect+" WHERE s.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// Create inserts a new student and fills in its assigned ID. The enrollment
// date is set to the current date and never updated afterwards.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO student (first_name, last_name, email, phone, date_of_birth, category_id, address, enrollment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_DATE)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.FirstName, student.LastName, student.Email, student.Phone,
		student.DateOfBirth, student.CategoryID, student.Address).Scan(&student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrStudentDuplicate
		}
		if dberrors.IsForeignKeyViolation(err) {
			return ErrCategoryReference
		}
		return err
	}

	return nil
}

// Update replaces a student's editable fields. Enrollment date is not
// editable.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE student
		SET first_name = $1, last_name = $2, email = $3, phone = $4,
		    date_of_birth = $5, category_id = $6, address = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName, student.LastName, student.Email, student.Phone,
		student.DateOfBirth, student.CategoryID, student.Address, student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrStudentDuplicate
		}
		if dberrors.IsForeignKeyViolation(err) {
			return ErrCategoryReference
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// Delete removes a student by ID. Deleting a missing ID is not an error.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM student WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
