package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabaseError(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
		check  func(error) bool
	}{
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_projects_title"`), http.StatusConflict, IsAlreadyExists},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: projects.title"), http.StatusConflict, IsAlreadyExists},
		{"gorm not found", errors.New("record not found"), http.StatusNotFound, IsNotFound},
		{"anything else", errors.New("syntax error at or near"), http.StatusInternalServerError, IsDatabaseQueryError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("create", "project", tt.cause)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.True(t, tt.check(err))
			assert.Contains(t, err.GetFullError(), tt.cause.Error())
		})
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("disk full")

	write := NewStorageError("write", "uploads/a.png", cause)
	assert.True(t, errors.Is(write, ErrStorageWrite))
	assert.True(t, IsStorageError(write))
	assert.Equal(t, http.StatusInternalServerError, write.StatusCode)

	del := NewStorageError("delete", "uploads/a.png", cause)
	assert.True(t, errors.Is(del, ErrStorageDelete))
	assert.Equal(t, "storage delete failed: Failed to delete uploads/a.png -> disk full", del.GetFullError())
}

func TestValidationErrors(t *testing.T) {
	err := NewMissingRequiredFieldError("title")
	assert.True(t, IsMissingRequiredFieldError(err))
	assert.Equal(t, "title", err.Field)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)

	invalid := NewInvalidFieldError("technologies", "unknown id 9")
	assert.True(t, IsInvalidFieldError(invalid))
	assert.Equal(t, "invalid field: Invalid field technologies: unknown id 9", invalid.Error())
}
