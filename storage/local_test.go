package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-admin/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePutAndDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewLocalStore(root, "/storage/")
	require.NoError(t, err)

	p, err := store.Put(ctx, UploadsDir, &Upload{Name: "Cover.PNG", ContentType: "image/png", Data: []byte("png-bytes")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, "uploads/"))
	assert.True(t, strings.HasSuffix(p, ".png"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "/storage/"+p, store.URL(p))

	require.NoError(t, store.Delete(ctx, p))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(p)))
	assert.True(t, os.IsNotExist(err))

	// already gone
	assert.NoError(t, store.Delete(ctx, p))
}

func TestLocalStoreGeneratesDistinctNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)

	up := &Upload{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte("x")}
	first, err := store.Put(context.Background(), UploadsDir, up)
	require.NoError(t, err)
	second, err := store.Put(context.Background(), UploadsDir, up)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestLocalStoreRejectsEscapingPaths(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)

	for _, p := range []string{"../secret", "uploads/../../secret", ""} {
		err := store.Delete(context.Background(), p)
		assert.ErrorIs(t, err, errs.ErrInvalidPath, p)
	}
}

func TestObjectPathExtension(t *testing.T) {
	assert.True(t, strings.HasSuffix(objectPath("uploads", &Upload{Name: "x.jpeg", ContentType: "image/jpeg"}), ".jpg"))
	assert.True(t, strings.HasSuffix(objectPath("uploads", &Upload{Name: "x.SVG", ContentType: "text/xml"}), ".svg"))
}

func TestNewSelectsDisk(t *testing.T) {
	store, err := New(context.Background(), map[string]string{"STORAGE_ROOT": t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)

	_, err = New(context.Background(), map[string]string{"STORAGE_DISK": "ftp"})
	assert.Error(t, err)

	_, err = New(context.Background(), map[string]string{"STORAGE_DISK": "s3"})
	assert.ErrorContains(t, err, "S3_BUCKET")
}
