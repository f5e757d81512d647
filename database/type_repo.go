package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-admin/models"
	"gorm.io/gorm"
)

type TypeRepo struct {
	db *gorm.DB
}

func NewTypeRepo(db *gorm.DB) *TypeRepo {
	return &TypeRepo{db}
}

// FindAll returns all project types ordered by name
func (r *TypeRepo) FindAll(ctx context.Context) ([]*models.Type, error) {
	var types []*models.Type
	err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error
	return types, err
}

// FindByID returns a type by its ID, or nil when no such type exists
func (r *TypeRepo) FindByID(ctx context.Context, id uint) (*models.Type, error) {
	var t models.Type
	err := r.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Add inserts a new type
func (r *TypeRepo) Add(ctx context.Context, t *models.Type) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FirstOrCreate returns the type with the given name, inserting it when missing
func (r *TypeRepo) FirstOrCreate(ctx context.Context, t *models.Type) error {
	return r.db.WithContext(ctx).
		Where(models.Type{Name: t.Name}).
		Attrs(models.Type{Slug: t.Slug}).
		FirstOrCreate(t).Error
}
