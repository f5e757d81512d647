package api

import "github.com/rpupo63/portfolio-admin/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	healthHandler  healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// ProjectIndexResponse is the project listing plus the pending flash message
type ProjectIndexResponse struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
	Message  string            `json:"message,omitempty"`
}

// ProjectResponse wraps a single project
type ProjectResponse struct {
	Project *models.Project `json:"project"`
}
