package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naveen/management/internal/app/models/dto"
	"github.com/naveen/management/internal/app/repositories"
	"github.com/naveen/management/internal/pkg/apperrors"
)

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects missing required fields", func(t *testing.T) {
		svc := NewStudentService(&fakeStudentStore{})

		_, err := svc.CreateStudent(ctx, dto.StudentRequest{FirstName: "Ada"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		assert.Equal(t, "Missing required fields: First name, last name, and email are required", err.Error())
	})

	t.Run("parses a plain date of birth", func(t *testing.T) {
		store := &fakeStudentStore{}
		svc := NewStudentService(store)

		_, err := svc.CreateStudent(ctx, dto.StudentRequest{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "ada@example.com",
			DateOfBirth: "1990-05-01",
		})
		require.NoError(t, err)
		require.NotNil(t, store.created.DateOfBirth)
		assert.Equal(t, 1990, store.created.DateOfBirth.Year())
		assert.Equal(t, time.May, store.created.DateOfBirth.Month())
	})

	t.Run("accepts an echoed RFC3339 timestamp as a date", func(t *testing.T) {
		store := &fakeStudentStore{}
		svc := NewStudentService(store)

		_, err := svc.CreateStudent(ctx, dto.StudentRequest{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "ada@example.com",
			DateOfBirth: "1990-05-01T00:00:00.000Z",
		})
		require.NoError(t, err)
		require.NotNil(t, store.created.DateOfBirth)
		assert.Equal(t, "1990-05-01", store.created.DateOfBirth.Format("2006-01-02"))
	})

	t.Run("rejects a garbled date", func(t *testing.T) {
		svc := NewStudentService(&fakeStudentStore{})

		_, err := svc.CreateStudent(ctx, dto.StudentRequest{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "ada@example.com",
			DateOfBirth: "yesterday",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("empty category coalesces to nil", func(t *testing.T) {
		store := &fakeStudentStore{}
		svc := NewStudentService(store)

		_, err := svc.CreateStudent(ctx, dto.StudentRequest{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		})
		require.NoError(t, err)
		assert.Nil(t, store.created.CategoryID)
	})

	t.Run("numeric category id is kept", func(t *testing.T) {
		store := &fakeStudentStore{}
		svc := NewStudentService(store)

		_, err := svc.CreateStudent(ctx, dto.StudentRequest{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			CategoryID: dto.Flex("3"),
		})
		require.NoError(t, err)
		require.NotNil(t, store.created.CategoryID)
		assert.Equal(t, int64(3), *store.created.CategoryID)
	})

	t.Run("non-numeric category id is rejected", func(t *testing.T) {
		svc := NewStudentService(&fakeStudentStore{})

		_, err := svc.CreateStudent(ctx, dto.StudentRequest{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			CategoryID: dto.Flex("tech"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("rejects a category id with no matching row", func(t *testing.T) {
		store := &fakeStudentStore{createErr: repositories.ErrCategoryReference}
		svc := NewStudentService(store)

		_, err := svc.CreateStudent(ctx, dto.StudentRequest{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			CategoryID: dto.Flex("999"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		assert.Equal(t, "Selected category does not exist", err.Error())
	})

	t.Run("translates a duplicate email to a conflict", func(t *testing.T) {
		store := &fakeStudentStore{createErr: repositories.ErrStudentDuplicate}
		svc := NewStudentService(store)

		_, err := svc.CreateStudent(ctx, dto.StudentRequest{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrConflict))
		assert.Equal(t, apperrors.MsgStudentDuplicate, err.Error())
	})
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("uses the update wording for missing fields", func(t *testing.T) {
		svc := NewStudentService(&fakeStudentStore{})

		_, err := svc.UpdateStudent(ctx, 1, dto.StudentRequest{})
		require.Error(t, err)
		assert.Equal(t, "First name, last name, and email are required", err.Error())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		store := &fakeStudentStore{updateErr: repositories.ErrStudentNotFound}
		svc := NewStudentService(store)

		_, err := svc.UpdateStudent(ctx, 99, dto.StudentRequest{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("carries the path id onto the model", func(t *testing.T) {
		store := &fakeStudentStore{}
		svc := NewStudentService(store)

		_, err := svc.UpdateStudent(ctx, 12, dto.StudentRequest{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(12), store.updated.ID)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("empty is nil", func(t *testing.T) {
		got, err := parseDate("  ")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("rfc3339 is truncated to a date", func(t *testing.T) {
		got, err := parseDate("2024-03-15T18:30:00Z")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "2024-03-15", got.Format("2006-01-02"))
		assert.Zero(t, got.Hour())
	})
}
