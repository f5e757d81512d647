package services

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rpupo63/portfolio-admin/errs"
	"github.com/rpupo63/portfolio-admin/models"
)

const maxTitleLength = 150

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Validate checks a create (existing == nil) or update form before anything is
// written. The first problem found is returned as a 400 naming the field.
func (s *ProjectService) Validate(ctx context.Context, in ProjectInput, existing *models.Project) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return errs.NewInvalidFieldError("title", fmt.Sprintf("must not be longer than %d characters", maxTitleLength))
	}

	var exceptID uint
	if existing != nil {
		exceptID = existing.ID
	}
	taken, err := s.projects.TitleTaken(ctx, title, exceptID)
	if err != nil {
		return errs.NewDatabaseError("check title of", "project", err)
	}
	if taken {
		return errs.NewAlreadyExists("project", "title")
	}

	if err := validateLink("github_link", in.GithubLink); err != nil {
		return err
	}
	if err := validateLink("demo_link", in.DemoLink); err != nil {
		return err
	}

	if in.TypeID.Set && in.TypeID.Value != nil {
		t, err := s.types.FindByID(ctx, *in.TypeID.Value)
		if err != nil {
			return errs.NewDatabaseError("find", "type", err)
		}
		if t == nil {
			return errs.NewInvalidFieldError("type_id", fmt.Sprintf("unknown type %d", *in.TypeID.Value))
		}
	}

	if in.Technologies.Set && len(in.Technologies.Value) > 0 {
		ids := uniqueIDs(in.Technologies.Value)
		found, err := s.technologies.FindByIDs(ctx, ids)
		if err != nil {
			return errs.NewDatabaseError("find", "technologies", err)
		}
		if len(found) != len(ids) {
			return errs.NewInvalidFieldError("technologies", fmt.Sprintf("unknown technology among %v", ids))
		}
	}

	if in.Image.Set && in.Image.Value != nil {
		upload := in.Image.Value
		if upload.Size() > s.maxImageBytes {
			return errs.NewInvalidFieldError("image", fmt.Sprintf("must not be larger than %d bytes", s.maxImageBytes))
		}
		if !slices.Contains(allowedImageTypes, upload.ContentType) {
			return errs.NewInvalidFieldError("image", "must be a jpeg, png, gif or webp image")
		}
	}

	return nil
}

func validateLink(field string, value Field[string]) error {
	if !value.Set || strings.TrimSpace(value.Value) == "" {
		return nil
	}
	u, err := url.ParseRequestURI(strings.TrimSpace(value.Value))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewInvalidFieldError(field, "must be an absolute http or https URL")
	}
	return nil
}
