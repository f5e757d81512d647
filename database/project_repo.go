package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-admin/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const technologiesAssociation = "Technologies"

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

func (r *ProjectRepo) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload(technologiesAssociation, func(db *gorm.DB) *gorm.DB {
			return db.Order("technologies.name ASC")
		}).
		Preload("Type")
}

// FindAll returns every project with its type and technologies, oldest first
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.withRelations(ctx).Order("projects.id ASC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no such project exists
func (r *ProjectRepo) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.withRelations(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// TitleTaken reports whether another project already uses title. exceptID is
// ignored so a project can keep its own title on update; pass 0 on create.
func (r *ProjectRepo) TitleTaken(ctx context.Context, title string, exceptID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Project{}).Where("title = ?", title)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// Add inserts a new project. Associations are written separately through SyncTechnologies.
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

// Update writes every column of an existing project, leaving associations alone
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

// Delete removes the project and its project_technology rows
func (r *ProjectRepo) Delete(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Select(technologiesAssociation).Delete(project).Error
}

// SyncTechnologies replaces the project's technologies with exactly the given set:
// missing links are added, extraneous ones removed and matching ones kept.
func (r *ProjectRepo) SyncTechnologies(ctx context.Context, project *models.Project, technologies []models.Technology) error {
	if len(technologies) == 0 {
		return r.DetachTechnologies(ctx, project)
	}
	return r.db.WithContext(ctx).Model(project).Association(technologiesAssociation).Replace(technologies)
}

// DetachTechnologies unlinks every technology without deleting the technologies themselves
func (r *ProjectRepo) DetachTechnologies(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Model(project).Association(technologiesAssociation).Clear(); err != nil {
		return err
	}
	project.Technologies = []models.Technology{}
	return nil
}
