package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-admin/errs"
	"github.com/rpupo63/portfolio-admin/models"
	"github.com/rpupo63/portfolio-admin/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const projectsIndexPath = "/admin/projects"

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  *services.ProjectService
	maxMemory int64
}

func newProjectHandler(projects *services.ProjectService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		maxMemory: projects.MaxImageBytes() + formOverheadBytes,
	}
}

// listProjects returns every project together with the flash message left by
// the last write, which is consumed in the process.
// @Summary List projects
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectIndexResponse
// @Router /admin/projects [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, ProjectIndexResponse{
			Projects: projects,
			Total:    len(projects),
			Message:  takeFlash(w, r),
		})
	}
}

// @Summary Data for the project creation form
// @Tags Projects
// @Produce json
// @Success 200 {object} services.CreateForm
// @Router /admin/projects/create [get]
func (h projectHandler) showCreateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := h.projects.CreateForm(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, form)
	}
}

// @Summary Create a project
// @Tags Projects
// @Accept multipart/form-data
// @Success 302 "Redirect to the project listing"
// @Failure 400 {object} ErrorResponse
// @Router /admin/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		in, err := decodeProjectForm(r, h.maxMemory, h.projects.MaxImageBytes())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.projects.Validate(ctx, in, nil); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		outcome, err := h.projects.Create(ctx, in)
		recordMutation("create", err)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().
			Uint("projectID", outcome.Project.ID).
			Str("admin", ctxGetUserID(ctx)).
			Msg("project created")
		h.responder.Redirect(w, r, projectsIndexPath, outcome.Message)
	}
}

// @Summary Get a project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/projects/{projectID} [get]
func (h projectHandler) showProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.loadProject(w, r)
		if !ok {
			return
		}
		h.responder.WriteJSON(w, ProjectResponse{Project: project})
	}
}

// @Summary Data for the project edit form
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} services.EditForm
// @Router /admin/projects/{projectID}/edit [get]
func (h projectHandler) showEditForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.loadProject(w, r)
		if !ok {
			return
		}
		form, err := h.projects.EditForm(r.Context(), project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, form)
	}
}

// updateProject serves both PUT and PATCH. Either way fields missing from the
// form are left alone, except technologies, which are detached.
// @Summary Update a project
// @Tags Projects
// @Accept multipart/form-data
// @Param projectID path int true "Project ID"
// @Success 302 "Redirect to the project listing"
// @Router /admin/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		project, ok := h.loadProject(w, r)
		if !ok {
			return
		}

		in, err := decodeProjectForm(r, h.maxMemory, h.projects.MaxImageBytes())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.projects.Validate(ctx, in, project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		outcome, err := h.projects.Update(ctx, project, in)
		recordMutation("update", err)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().
			Uint("projectID", project.ID).
			Str("admin", ctxGetUserID(ctx)).
			Msg("project updated")
		h.responder.Redirect(w, r, projectsIndexPath, outcome.Message)
	}
}

// @Summary Delete a project
// @Tags Projects
// @Param projectID path int true "Project ID"
// @Success 302 "Redirect to the project listing"
// @Router /admin/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		project, ok := h.loadProject(w, r)
		if !ok {
			return
		}

		message, err := h.projects.Delete(ctx, project)
		recordMutation("delete", err)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().
			Uint("projectID", project.ID).
			Str("admin", ctxGetUserID(ctx)).
			Msg("project deleted")
		h.responder.Redirect(w, r, projectsIndexPath, message)
	}
}

// loadProject resolves {projectID}. It writes the error response itself and
// reports whether the handler should go on.
func (h projectHandler) loadProject(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "projectID"), 10, 0)
	if err != nil || id == 0 {
		h.responder.WriteError(w, errs.NewNotFound("project"))
		return nil, false
	}

	project, err := h.projects.Find(r.Context(), uint(id))
	if err != nil {
		h.responder.WriteError(w, err)
		return nil, false
	}
	return project, true
}
