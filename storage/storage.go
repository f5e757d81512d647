// Package storage keeps uploaded files (project images) on local disk or in S3.
package storage

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-admin/config"
	"github.com/rpupo63/portfolio-admin/errs"
)

// UploadsDir is the namespace project images are written to.
const UploadsDir = "uploads"

// Upload is a file received from a form, fully read into memory.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

func (u *Upload) Size() int64 {
	return int64(len(u.Data))
}

// FileStore persists blobs and hands back the path they are referenced by.
type FileStore interface {
	// Put writes the upload under dir with a generated name and returns its path.
	Put(ctx context.Context, dir string, upload *Upload) (string, error)
	// Delete removes the blob at path. Deleting a missing blob is not an error.
	Delete(ctx context.Context, path string) error
	// URL returns the public address of the blob at path.
	URL(path string) string
}

// New builds the store selected by STORAGE_DISK.
func New(ctx context.Context, c map[string]string) (FileStore, error) {
	switch disk := strings.ToLower(config.GetString(c, "STORAGE_DISK", "local")); disk {
	case "local":
		return NewLocalStore(
			config.GetString(c, "STORAGE_ROOT", filepath.Join("storage", "app")),
			config.GetString(c, "STORAGE_PUBLIC_URL", "/storage"),
		)
	case "s3":
		return NewS3Store(ctx, c)
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DISK %q", disk)
	}
}

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// objectPath generates a fresh name under dir, keeping an extension that
// matches the content type.
func objectPath(dir string, upload *Upload) string {
	ext, ok := extensions[upload.ContentType]
	if !ok {
		ext = strings.ToLower(filepath.Ext(upload.Name))
	}
	return path.Join(dir, uuid.NewString()+ext)
}

// cleanPath normalises p and rejects anything that would leave the store.
func cleanPath(p string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(p, "/") {
		return "", errs.NewInvalidPathError(p)
	}
	return cleaned, nil
}
