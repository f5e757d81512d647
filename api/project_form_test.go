package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-admin/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormErrors(t *testing.T) {
	t.Run("body over the limit", func(t *testing.T) {
		req := formRequest(http.MethodPost, "/admin/projects", url.Values{"title": {strings.Repeat("a", 200)}})
		req.Body = http.MaxBytesReader(httptest.NewRecorder(), req.Body, 16)

		err := parseForm(req, 1<<20)
		require.Error(t, err)
		assert.True(t, errs.IsMaxBodySizeExceededError(err))
	})

	t.Run("bad escape", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/projects", strings.NewReader("title=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err := parseForm(req, 1<<20)
		require.Error(t, err)
		assert.True(t, errs.IsMalformedPayloadError(err))
	})
}

func TestDecodeProjectFormPresence(t *testing.T) {
	req := formRequest(http.MethodPut, "/admin/projects/1", url.Values{
		"title":          {"  Spaced  "},
		"demo_link":      {""},
		"type_id":        {""},
		"technologies[]": {"", "3", "4"},
		"image":          {""},
	})

	in, err := decodeProjectForm(req, 1<<20, 1024)
	require.NoError(t, err)

	assert.Equal(t, "Spaced", in.Title)
	assert.False(t, in.Description.Set)
	assert.True(t, in.DemoLink.Set)
	assert.Empty(t, in.DemoLink.Value)
	assert.True(t, in.TypeID.Set)
	assert.Nil(t, in.TypeID.Value)
	assert.True(t, in.Technologies.Set)
	assert.Equal(t, []uint{3, 4}, in.Technologies.Value)
	assert.True(t, in.Image.Set)
	assert.Nil(t, in.Image.Value)
}

func TestDecodeProjectFormRejectsBadIDs(t *testing.T) {
	req := formRequest(http.MethodPost, "/admin/projects", url.Values{"title": {"A"}, "technologies": {"go"}})

	_, err := decodeProjectForm(req, 1<<20, 1024)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidFieldError(err))
}
