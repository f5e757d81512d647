package api

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rpupo63/portfolio-admin/errs"
	"github.com/rpupo63/portfolio-admin/services"
	"github.com/rpupo63/portfolio-admin/storage"
)

var formContentTypes = []string{"multipart/form-data", "application/x-www-form-urlencoded"}

// parseForm reads a urlencoded or multipart body once. Later calls are no-ops.
func parseForm(r *http.Request, maxMemory int64) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var err error
	switch mediaType {
	case "multipart/form-data":
		err = r.ParseMultipartForm(maxMemory)
	case "application/x-www-form-urlencoded":
		err = r.ParseForm()
	default:
		return errs.NewUnsupportedMediaTypeError(mediaType, formContentTypes)
	}
	if err == nil {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errs.NewMaxBodySizeExceededError(tooLarge.Limit)
	}
	return errs.NewMalformedPayloadError("form", err)
}

// decodeProjectForm maps the submitted form onto a ProjectInput. A field the
// form does not carry stays unset so the service can tell "absent" from "empty".
func decodeProjectForm(r *http.Request, maxMemory, maxImageBytes int64) (services.ProjectInput, error) {
	var in services.ProjectInput
	if err := parseForm(r, maxMemory); err != nil {
		return in, err
	}
	values := r.PostForm

	in.Title = strings.TrimSpace(values.Get("title"))
	in.Description = textField(values, "description")
	in.GithubLink = textField(values, "github_link")
	in.DemoLink = textField(values, "demo_link")

	if raw, ok := values["type_id"]; ok {
		typeID, err := optionalID("type_id", raw[0])
		if err != nil {
			return in, err
		}
		in.TypeID = services.Some(typeID)
	}

	technologies, ok, err := idList(values, "technologies", "technologies[]")
	if err != nil {
		return in, err
	}
	if ok {
		in.Technologies = services.Some(technologies)
	}

	image, err := imageField(r, values, maxImageBytes)
	if err != nil {
		return in, err
	}
	in.Image = image

	return in, nil
}

func textField(values url.Values, key string) services.Field[string] {
	raw, ok := values[key]
	if !ok {
		return services.Field[string]{}
	}
	return services.Some(strings.TrimSpace(raw[0]))
}

func optionalID(field, raw string) (*uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || n == 0 {
		return nil, errs.NewInvalidFieldError(field, "must be a positive integer")
	}
	id := uint(n)
	return &id, nil
}

// idList collects repeated values under any of keys. Blank entries are
// skipped so a hidden empty input can submit an empty selection.
func idList(values url.Values, keys ...string) ([]uint, bool, error) {
	present := false
	ids := []uint{}
	for _, key := range keys {
		raw, ok := values[key]
		if !ok {
			continue
		}
		present = true
		for _, v := range raw {
			id, err := optionalID("technologies", v)
			if err != nil {
				return nil, true, err
			}
			if id != nil {
				ids = append(ids, *id)
			}
		}
	}
	return ids, present, nil
}

// imageField yields an upload for a file part, a present nil for a plain
// "image" value, and an unset field otherwise.
func imageField(r *http.Request, values url.Values, maxImageBytes int64) (services.Field[*storage.Upload], error) {
	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			upload, err := readUpload(files[0], maxImageBytes)
			if err != nil {
				return services.Field[*storage.Upload]{}, err
			}
			return services.Some(upload), nil
		}
	}
	if _, ok := values["image"]; ok {
		return services.Some[*storage.Upload](nil), nil
	}
	return services.Field[*storage.Upload]{}, nil
}

// readUpload reads at most one byte past the limit so oversize files are
// still rejected by validation without being buffered whole.
func readUpload(fh *multipart.FileHeader, maxImageBytes int64) (*storage.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, errs.NewMalformedPayloadError("image", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, errs.NewMalformedPayloadError("image", err)
	}

	return &storage.Upload{
		Name:        fh.Filename,
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}
