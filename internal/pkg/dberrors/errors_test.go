package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("detects 23505", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("detects wrapped 23505", func(t *testing.T) {
		err := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("ignores other codes", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	})

	t.Run("ignores non-pg errors", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(errors.New("boom")))
	})
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "category_name_key"}
	assert.True(t, IsDuplicateConstraintError(err, "category_name_key"))
	assert.False(t, IsDuplicateConstraintError(err, "users_email_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(nil))
}
