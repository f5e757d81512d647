package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrStorageWrite  = errors.New("storage write failed")
	ErrStorageDelete = errors.New("storage delete failed")
	ErrInvalidPath   = errors.New("invalid storage path")
)

// NewStorageError reports a failed blob operation. The sentinel is picked from
// the operation so callers can tell writes from deletes.
func NewStorageError(operation, path string, cause error) *ApiErr {
	sentinel := ErrStorageWrite
	if operation == "delete" {
		sentinel = ErrStorageDelete
	}
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        sentinel,
		Details:    fmt.Sprintf("Failed to %s %s", operation, path),
		Cause:      cause,
		Field:      "storage",
	}
}

func NewInvalidPathError(path string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidPath,
		Details:    fmt.Sprintf("Path %q escapes the storage root", path),
		Field:      "path",
	}
}

func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorageWrite) || errors.Is(err, ErrStorageDelete)
}
