package handler

import (
	"context"
	"net/http"

	"github.com/portfolio-site/backend/internal/model"
	"github.com/portfolio-site/backend/internal/service"
)

// ProjectHandler serves the read-only portfolio listings.
type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.projectService.List)
}

// Featured handles GET /api/projects/featured.
func (h *ProjectHandler) Featured(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.projectService.ListFeatured)
}

func (h *ProjectHandler) respond(w http.ResponseWriter, r *http.Request, list func(context.Context) ([]*model.PortfolioProject, error)) {
	projects, err := list(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	// Return [] not null for empty lists
	if projects == nil {
		projects = []*model.PortfolioProject{}
	}
	writeJSON(w, http.StatusOK, projects)
}
