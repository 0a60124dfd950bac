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

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = "id, username, email, phone, created_at, updated_at"

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves all users in natural table order.
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	return r.list(ctx, fmt.Sprintf("SELECT %s FROM users", userColumns))
}

// ListNewestFirst retrieves all users ordered newest-first, as shown on the
// HTML list view.
func (r *UserRepository) ListNewestFirst(ctx context.Context) ([]*models.User, error) {
	return r.list(ctx, fmt.Sprintf("SELECT %s FROM users ORDER BY id DESC", userColumns))
}

func (r *UserRepository) list(ctx context.Context, query string) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Empty tables yield an empty slice, never nil; the list endpoints
	// serialize this directly as a JSON array.
	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// GetByID retrieves a user by ID. Returns (nil, nil) when no row matches.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// Create inserts a new user and fills in its assigned ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.Password, user.Phone).Scan(&user.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrUserDuplicate
		}
		return err
	}

	return nil
}

// Update replaces a user's editable fields. When withPassword is false the
// password column is left untouched.
func (r *UserRepository) Update(ctx context.Context, user *models.User, withPassword bool) error {
	var (
		query string
		args  []interface{}
	)

	if withPassword {
		query = `
			UPDATE users
			SET username = $1, email = $2, password = $3, phone = $4, updated_at = CURRENT_TIMESTAMP
			WHERE id = $5
		`
		args = []interface{}{user.Username, user.Email, user.Password, user.Phone, user.ID}
	} else {
		query = `
			UPDATE users
			SET username = $1, email = $2, phone = $3, updated_at = CURRENT_TIMESTAMP
			WHERE id = $4
		`
		args = []interface{}{user.Username, user.Email, user.Phone, user.ID}
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrUserDuplicate
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete removes a user by ID. Deleting a missing ID is not an error.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
