package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-admin/database"
	"github.com/rpupo63/portfolio-admin/database/dbtest"
	"github.com/rpupo63/portfolio-admin/errs"
	"github.com/rpupo63/portfolio-admin/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	techs := dbtest.Technologies(t, db, "Go")
	types := dbtest.Types(t, db, "Library")
	local, err := storage.NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)
	service := NewProjectService(database.New(db), local, WithMaxImageBytes(16))

	existing, err := service.Create(ctx, ProjectInput{Title: "Existing"})
	require.NoError(t, err)

	unknownType := uint(999)
	tests := []struct {
		name  string
		in    ProjectInput
		field string
	}{
		{"missing title", ProjectInput{Title: "   "}, "title"},
		{"title too long", ProjectInput{Title: strings.Repeat("a", 151)}, "title"},
		{"bad github link", ProjectInput{Title: "A", GithubLink: Some("not a url")}, "github_link"},
		{"ftp demo link", ProjectInput{Title: "A", DemoLink: Some("ftp://example.com/x")}, "demo_link"},
		{"unknown type", ProjectInput{Title: "A", TypeID: Some(&unknownType)}, "type_id"},
		{"unknown technology", ProjectInput{Title: "A", Technologies: Some([]uint{techs[0].ID, 999})}, "technologies"},
		{"image too large", ProjectInput{Title: "A", Image: Some(&storage.Upload{ContentType: "image/png", Data: make([]byte, 17)})}, "image"},
		{"not an image", ProjectInput{Title: "A", Image: Some(&storage.Upload{ContentType: "application/pdf", Data: []byte("%PDF")})}, "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Validate(ctx, tt.in, nil)
			var apiErr *errs.ApiErr
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 400, apiErr.StatusCode)
			assert.Equal(t, tt.field, apiErr.Field)
		})
	}

	t.Run("duplicate title conflicts", func(t *testing.T) {
		err := service.Validate(ctx, ProjectInput{Title: "Existing"}, nil)
		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.StatusCode)
		assert.Equal(t, "title", apiErr.Field)
		assert.True(t, errs.IsAlreadyExists(err))
	})

	t.Run("valid input", func(t *testing.T) {
		err := service.Validate(ctx, ProjectInput{
			Title:        "Fresh",
			GithubLink:   Some("https://github.com/rpupo63/site"),
			DemoLink:     Some(""),
			TypeID:       Some(&types[0].ID),
			Technologies: Some([]uint{techs[0].ID, techs[0].ID}),
			Image:        Some(&storage.Upload{ContentType: "image/gif", Data: []byte("GIF89a")}),
		}, nil)
		assert.NoError(t, err)
	})

	t.Run("update may keep its own title", func(t *testing.T) {
		assert.NoError(t, service.Validate(ctx, ProjectInput{Title: "Existing"}, existing.Project))
	})
}
