package services

import (
	"strings"

	"github.com/gosimple/slug"
	"github.com/rpupo63/portfolio-admin/storage"
)

// Field is a form value together with whether the request carried it at all.
type Field[T any] struct {
	Value T
	Set   bool
}

// Some returns a present field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// ProjectInput is the decoded create/update form. Only fields listed here are
// ever written to a project.
//
// Image follows a three-way rule on update: a present upload replaces the
// stored image, a present nil clears it, an absent field leaves it alone.
type ProjectInput struct {
	Title        string
	Description  Field[string]
	GithubLink   Field[string]
	DemoLink     Field[string]
	TypeID       Field[*uint]
	Image        Field[*storage.Upload]
	Technologies Field[[]uint]
}

// slugSeparators are turned into word breaks before slugging. The slug
// package would spell "&" out as "and".
var slugSeparators = strings.NewReplacer("_", " ", "&", " ")

// Slugify lowercases and transliterates title to ASCII and joins the words
// with single hyphens: "My New App" becomes "my-new-app".
func Slugify(title string) string {
	return slug.Make(slugSeparators.Replace(title))
}

// nullable maps the empty string to NULL.
func nullable(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
