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

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

const categoryColumns = "id, name, description, created_at, updated_at"

// categoryNameConstraint is the unique constraint on category.name.
const categoryNameConstraint = "category_name_key"

func scanCategory(row pgx.Row) (*models.Category, error) {
	var category models.Category
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListByName retrieves all categories ordered by name, used by the JSON
// listing and the student/product form dropdowns.
func (r *CategoryRepository) ListByName(ctx context.Context) ([]*models.Category, error) {
	return r.list(ctx, fmt.Sprintf("SELECT %s FROM category ORDER BY name", categoryColumns))
}

// ListNewestFirst retrieves all categories ordered newest-first, as shown on
// the HTML list view.
func (r *CategoryRepository) ListNewestFirst(ctx context.Context) ([]*models.Category, error) {
	return r.list(ctx, fmt.Sprintf("SELECT %s FROM category ORDER BY id DESC", categoryColumns))
}

func (r *CategoryRepository) list(ctx context.Context, query string) ([]*models.Category, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// GetByID retrieves a category by ID. Returns (nil, nil) when no row matches.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	query := fmt.Sprintf("SELECT %s FROM category WHERE id = $1", categoryColumns)

	category, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving category: %w", err)
	}

	return category, nil
}

// Create inserts a new category and fills in its assigned ID.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO category (name, description)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, category.Name, category.Description).Scan(&category.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, categoryNameConstraint) {
			return ErrCategoryDuplicate
		}
		return err
	}

	return nil
}

// Update replaces a category's editable fields.
func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE category
		SET name = $1, description = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, category.Name, category.Description, category.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, categoryNameConstraint) {
			return ErrCategoryDuplicate
		}
		return fmt.Errorf("error updating category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category by ID. Deleting a missing ID is not an error.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM category WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting category: %w", err)
	}
	return nil
}

// CountReferences counts students and products still pointing at the
// category, in a single round trip.
func (r *CategoryRepository) CountReferences(ctx context.Context, id int64) (int64, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM student WHERE category_id = $1)
		     + (SELECT COUNT(*) FROM product WHERE category_id = $1)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting category references: %w", err)
	}

	return count, nil
}
