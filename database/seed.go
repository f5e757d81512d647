package database

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/rpupo63/portfolio-admin/models"
)

var (
	defaultTypes = []string{"Web Application", "Library", "Command Line Tool", "Game"}

	defaultTechnologies = []string{
		"Go", "PHP", "Laravel", "JavaScript", "TypeScript",
		"Vue", "React", "PostgreSQL", "Docker", "Sass",
	}
)

// SeedLookups makes sure the default types and technologies exist. Running it twice is harmless.
func SeedLookups(ctx context.Context, d Database) error {
	for _, name := range defaultTypes {
		t := models.Type{Name: name, Slug: slug.Make(name)}
		if err := d.TypeRepo().FirstOrCreate(ctx, &t); err != nil {
			return fmt.Errorf("seed type %q: %w", name, err)
		}
	}

	for _, name := range defaultTechnologies {
		tech := models.Technology{Name: name, Slug: slug.Make(name)}
		if err := d.TechnologyRepo().FirstOrCreate(ctx, &tech); err != nil {
			return fmt.Errorf("seed technology %q: %w", name, err)
		}
	}

	return nil
}
