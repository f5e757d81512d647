package api

import (
	"time"

	"github.com/rpupo63/portfolio-admin/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(projects *services.ProjectService, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(projects),
		healthHandler:  newHealthHandler(startupTime),
	}
}
