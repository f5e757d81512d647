package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rpupo63/portfolio-admin/storage"
)

// setupAdminRoutes mounts the project back office under /admin
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/create", handlers.projectHandler.showCreateForm())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Get("/projects/{projectID}", handlers.projectHandler.showProject())
		r.Get("/projects/{projectID}/edit", handlers.projectHandler.showEditForm())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Patch("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
	})
}

func setupOperationalRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/health", handlers.healthHandler.health())
	r.Handle("/metrics", promhttp.Handler())
}

// setupStorageRoutes serves locally stored uploads. Remote stores hand out
// their own URLs, so nothing is mounted for them.
func setupStorageRoutes(r chi.Router, files storage.FileStore) {
	local, ok := files.(*storage.LocalStore)
	if !ok {
		return
	}

	fileServer := http.StripPrefix("/storage/", http.FileServer(http.Dir(local.Root())))
	r.Get("/storage/*", func(w http.ResponseWriter, r *http.Request) {
		// No directory listings
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
