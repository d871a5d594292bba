package http

import (
	"net/http"

	"workforce_project/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	Projects *repository.ProjectRepository
}

func NewProjectHandler(projects *repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{Projects: projects}
}

func (h *ProjectHandler) List(c *gin.Context) {
	ids, err := h.Projects.ListIDsForEmployee(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"project_ids": ids,
	})
}

type projectDetailsRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
}

func (h *ProjectHandler) Details(c *gin.Context) {
	var req projectDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, "Project id is required")
		return
	}

	details, err := h.Projects.Details(c.Request.Context(), req.ProjectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"project_details": details,
	})
}
