package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rpupo63/portfolio-admin/errs"
)

// LocalStore writes blobs below a root directory.
type LocalStore struct {
	root      string
	publicURL string
}

func NewLocalStore(root, publicURL string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errs.NewStorageError("create", root, err)
	}
	return &LocalStore{root: root, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// Root is the directory blobs live under.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Put(ctx context.Context, dir string, upload *Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p := objectPath(dir, upload)
	full := filepath.Join(s.root, filepath.FromSlash(p))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", errs.NewStorageError("write", p, err)
	}
	if err := os.WriteFile(full, upload.Data, 0o644); err != nil {
		return "", errs.NewStorageError("write", p, err)
	}
	return p, nil
}

func (s *LocalStore) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := cleanPath(path)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.root, filepath.FromSlash(p)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.NewStorageError("delete", p, err)
	}
	return nil
}

func (s *LocalStore) URL(path string) string {
	return s.publicURL + "/" + strings.TrimPrefix(path, "/")
}
