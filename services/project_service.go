package services

import (
	"context"
	"fmt"

	"github.com/rpupo63/portfolio-admin/database"
	"github.com/rpupo63/portfolio-admin/errs"
	"github.com/rpupo63/portfolio-admin/models"
	"github.com/rpupo63/portfolio-admin/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxImageBytes caps uploaded project images.
const DefaultMaxImageBytes int64 = 4 << 20

// ProjectService runs the back office project operations. None of the
// multi-step mutations are transactional: a failure half way leaves whatever
// already happened in place and is returned to the caller as is.
type ProjectService struct {
	logger        zerolog.Logger
	projects      *database.ProjectRepo
	technologies  *database.TechnologyRepo
	types         *database.TypeRepo
	files         storage.FileStore
	maxImageBytes int64
}

type Option func(*ProjectService)

func WithMaxImageBytes(n int64) Option {
	return func(s *ProjectService) {
		if n > 0 {
			s.maxImageBytes = n
		}
	}
}

func NewProjectService(db database.Database, files storage.FileStore, opts ...Option) *ProjectService {
	s := &ProjectService{
		logger:        log.With().Str("serviceName", "projectService").Logger(),
		projects:      db.ProjectRepo(),
		technologies:  db.TechnologyRepo(),
		types:         db.TypeRepo(),
		files:         files,
		maxImageBytes: DefaultMaxImageBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxImageBytes is the largest accepted image upload.
func (s *ProjectService) MaxImageBytes() int64 {
	return s.maxImageBytes
}

// Outcome is the result of a write: the affected project and the flash message for the listing.
type Outcome struct {
	Project *models.Project
	Message string
}

// CreateForm holds the lookups the creation form offers.
type CreateForm struct {
	Types        []*models.Type       `json:"types"`
	Technologies []*models.Technology `json:"technologies"`
}

// EditForm holds a project and the technologies it may be linked to.
type EditForm struct {
	Project      *models.Project      `json:"project"`
	Technologies []*models.Technology `json:"technologies"`
}

// List returns every project, unfiltered and unpaginated.
func (s *ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	for _, p := range projects {
		s.decorate(p)
	}
	return projects, nil
}

// CreateForm loads all types and technologies.
func (s *ProjectService) CreateForm(ctx context.Context) (CreateForm, error) {
	var form CreateForm

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		types, err := s.types.FindAll(gctx)
		if err != nil {
			return errs.NewDatabaseError("find", "types", err)
		}
		form.Types = types
		return nil
	})
	g.Go(func() error {
		technologies, err := s.technologies.FindAll(gctx)
		if err != nil {
			return errs.NewDatabaseError("find", "technologies", err)
		}
		form.Technologies = technologies
		return nil
	})
	if err := g.Wait(); err != nil {
		return CreateForm{}, err
	}
	return form, nil
}

// Find looks a project up by id. A missing project is a 404.
func (s *ProjectService) Find(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}
	s.decorate(project)
	return project, nil
}

// EditForm pairs the project with all technologies.
func (s *ProjectService) EditForm(ctx context.Context, project *models.Project) (EditForm, error) {
	technologies, err := s.technologies.FindAll(ctx)
	if err != nil {
		return EditForm{}, errs.NewDatabaseError("find", "technologies", err)
	}
	return EditForm{Project: project, Technologies: technologies}, nil
}

// Create stores a new project. Technologies are linked only when the input
// names them; an absent list creates no links.
func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (Outcome, error) {
	project := &models.Project{Technologies: []models.Technology{}}
	applyFields(project, in)
	project.Slug = Slugify(in.Title)

	if in.Image.Set && in.Image.Value != nil {
		path, err := s.files.Put(ctx, storage.UploadsDir, in.Image.Value)
		if err != nil {
			return Outcome{}, err
		}
		project.Image = &path
	}

	if err := s.projects.Add(ctx, project); err != nil {
		return Outcome{}, errs.NewDatabaseError("create", "project", err)
	}

	if in.Technologies.Set {
		if err := s.syncTechnologies(ctx, project, in.Technologies.Value); err != nil {
			return Outcome{}, err
		}
	}

	s.logger.Info().Uint("projectID", project.ID).Str("slug", project.Slug).Msg("Project created")
	s.decorate(project)
	return Outcome{Project: project, Message: fmt.Sprintf("%s was created successfully", project.Title)}, nil
}

// Update rewrites an existing project. Unlike Create, an absent technologies
// list detaches every technology.
func (s *ProjectService) Update(ctx context.Context, project *models.Project, in ProjectInput) (Outcome, error) {
	project.Slug = Slugify(in.Title)

	if in.Image.Set {
		if project.HasImage() {
			if err := s.files.Delete(ctx, *project.Image); err != nil {
				return Outcome{}, err
			}
		}
		project.Image = nil

		if in.Image.Value != nil {
			path, err := s.files.Put(ctx, storage.UploadsDir, in.Image.Value)
			if err != nil {
				return Outcome{}, err
			}
			project.Image = &path
		}
	}

	if in.Technologies.Set {
		if err := s.syncTechnologies(ctx, project, in.Technologies.Value); err != nil {
			return Outcome{}, err
		}
	} else if err := s.projects.DetachTechnologies(ctx, project); err != nil {
		return Outcome{}, errs.NewDatabaseError("detach technologies from", "project", err)
	}

	applyFields(project, in)
	if err := s.projects.Update(ctx, project); err != nil {
		return Outcome{}, errs.NewDatabaseError("update", "project", err)
	}

	s.logger.Info().Uint("projectID", project.ID).Str("slug", project.Slug).Msg("Project updated")
	s.decorate(project)
	return Outcome{Project: project, Message: fmt.Sprintf("%s has been edited successfully", project.Title)}, nil
}

// Delete removes the stored image, then the project. The returned message
// uses the title captured before anything was deleted.
func (s *ProjectService) Delete(ctx context.Context, project *models.Project) (string, error) {
	title := project.Title

	if project.HasImage() {
		if err := s.files.Delete(ctx, *project.Image); err != nil {
			return "", err
		}
	}

	if err := s.projects.Delete(ctx, project); err != nil {
		return "", errs.NewDatabaseError("delete", "project", err)
	}

	s.logger.Info().Uint("projectID", project.ID).Msg("Project deleted")
	return fmt.Sprintf("%s was deleted successfully", title), nil
}

func (s *ProjectService) syncTechnologies(ctx context.Context, project *models.Project, ids []uint) error {
	technologies, err := s.technologies.FindByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return errs.NewDatabaseError("find", "technologies", err)
	}
	if err := s.projects.SyncTechnologies(ctx, project, technologies); err != nil {
		return errs.NewDatabaseError("sync technologies of", "project", err)
	}
	return nil
}

func (s *ProjectService) decorate(project *models.Project) {
	project.ImageURL = ""
	if project.HasImage() {
		project.ImageURL = s.files.URL(*project.Image)
	}
}

// applyFields copies the submitted fields onto project. Absent fields are left alone.
func applyFields(project *models.Project, in ProjectInput) {
	project.Title = in.Title
	if in.Description.Set {
		project.Description = nullable(in.Description.Value)
	}
	if in.GithubLink.Set {
		project.GithubLink = nullable(in.GithubLink.Value)
	}
	if in.DemoLink.Set {
		project.DemoLink = nullable(in.DemoLink.Value)
	}
	if in.TypeID.Set {
		if !sameID(project.TypeID, in.TypeID.Value) {
			project.Type = nil
		}
		project.TypeID = in.TypeID.Value
	}
}

func sameID(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
