package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rpupo63/portfolio-admin/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

// fakeS3 answers object PUT/DELETE the way S3 does and remembers what it saw.
func fakeS3(t *testing.T, status int) (*s3.Client, *[]recordedRequest) {
	t.Helper()
	var (
		mu       sync.Mutex
		requests []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			return
		}
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := s3.New(s3.Options{
		Region:           "us-east-1",
		BaseEndpoint:     aws.String(srv.URL),
		UsePathStyle:     true,
		Credentials:      credentials.NewStaticCredentialsProvider("key", "secret", ""),
		RetryMaxAttempts: 1,
	})
	return client, &requests
}

func TestS3StorePutAndDelete(t *testing.T) {
	client, requests := fakeS3(t, 0)
	store := NewS3StoreWithClient(client, "portfolio", "https://cdn.example.com/")

	key, err := store.Put(context.Background(), UploadsDir, &Upload{Name: "a.png", ContentType: "image/png", Data: []byte("png")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.Equal(t, "https://cdn.example.com/"+key, store.URL(key))

	require.NoError(t, store.Delete(context.Background(), key))

	require.Len(t, *requests, 2)
	assert.Equal(t, http.MethodPut, (*requests)[0].method)
	assert.Equal(t, "/portfolio/"+key, (*requests)[0].path)
	assert.Contains(t, (*requests)[0].body, "png")
	assert.Equal(t, http.MethodDelete, (*requests)[1].method)
	assert.Equal(t, "/portfolio/"+key, (*requests)[1].path)
}

func TestS3StoreWrapsFailures(t *testing.T) {
	client, _ := fakeS3(t, http.StatusForbidden)
	store := NewS3StoreWithClient(client, "portfolio", "")

	_, err := store.Put(context.Background(), UploadsDir, &Upload{Name: "a.png", ContentType: "image/png", Data: []byte("png")})
	assert.ErrorIs(t, err, errs.ErrStorageWrite)

	err = store.Delete(context.Background(), "uploads/a.png")
	assert.ErrorIs(t, err, errs.ErrStorageDelete)
}
