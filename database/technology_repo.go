package database

import (
	"context"

	"github.com/rpupo63/portfolio-admin/models"
	"gorm.io/gorm"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// FindAll returns all technologies ordered by name
func (r *TechnologyRepo) FindAll(ctx context.Context) ([]*models.Technology, error) {
	var technologies []*models.Technology
	err := r.db.WithContext(ctx).Order("name ASC").Find(&technologies).Error
	return technologies, err
}

// FindByIDs returns the technologies matching ids. Unknown ids are simply absent from the result.
func (r *TechnologyRepo) FindByIDs(ctx context.Context, ids []uint) ([]models.Technology, error) {
	technologies := []models.Technology{}
	if len(ids) == 0 {
		return technologies, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&technologies).Error
	return technologies, err
}

// Add inserts a new technology
func (r *TechnologyRepo) Add(ctx context.Context, technology *models.Technology) error {
	return r.db.WithContext(ctx).Create(technology).Error
}

// FirstOrCreate returns the technology with the given name, inserting it when missing
func (r *TechnologyRepo) FirstOrCreate(ctx context.Context, technology *models.Technology) error {
	return r.db.WithContext(ctx).
		Where(models.Technology{Name: technology.Name}).
		Attrs(models.Technology{Slug: technology.Slug}).
		FirstOrCreate(technology).Error
}
