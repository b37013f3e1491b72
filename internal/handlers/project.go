package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inkwell-dev/inkwell/internal/apperr"
	"github.com/inkwell-dev/inkwell/internal/authz"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/services"
	"github.com/inkwell-dev/inkwell/internal/utils"
)

type CreateProjectRequest struct {
	TeamID      string `json:"team_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type ProjectHandler struct {
	projects *services.ProjectService
	resolver *authz.Resolver
}

func NewProjectHandler(projects *services.ProjectService, resolver *authz.Resolver) *ProjectHandler {
	return &ProjectHandler{projects: projects, resolver: resolver}
}

func (h *ProjectHandler) CreateProject(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	decision := h.resolver.ResolveTeam(ctx.Request.Context(), currentUser.User.ID, body.TeamID, authz.ActionWrite)

	if !decision.Permitted {
		abortDenied(ctx, decision)
		return
	}

	project := models.Project{
		ID:          uuid.NewString(),
		TeamID:      body.TeamID,
		Name:        body.Name,
		Description: body.Description,
	}

	projectID, err := h.projects.CreateProject(ctx.Request.Context(), project)

	if err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "project_id": projectID})
}

func (h *ProjectHandler) GetProject(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	project, err := h.projects.GetProjectByID(ctx.Request.Context(), ctx.Param("project_id"))

	if err != nil {
		if apperr.HTTPStatus(err) == http.StatusNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	decision := h.resolver.ResolveTeam(ctx.Request.Context(), currentUser.User.ID, project.TeamID, authz.ActionRead)

	if !decision.Permitted {
		abortDenied(ctx, decision)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) ListTeamProjects(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	teamID := ctx.Param("team_id")

	decision := h.resolver.ResolveTeam(ctx.Request.Context(), currentUser.User.ID, teamID, authz.ActionRead)

	if !decision.Permitted {
		abortDenied(ctx, decision)
		return
	}

	projects, err := h.projects.ListProjectsByTeamID(ctx.Request.Context(), teamID)

	if err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if projects == nil {
		projects = []models.Project{}
	}

	ctx.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) DeleteProject(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	project, err := h.projects.GetProjectByID(ctx.Request.Context(), ctx.Param("project_id"))

	if err != nil {
		if apperr.HTTPStatus(err) == http.StatusNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	decision := h.resolver.ResolveTeam(ctx.Request.Context(), currentUser.User.ID, project.TeamID, authz.ActionAdmin)

	if !decision.Permitted {
		abortDenied(ctx, decision)
		return
	}

	if err := h.projects.DeleteProject(ctx.Request.Context(), project.ID); err != nil {
		log.Printf("Failed to delete project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
