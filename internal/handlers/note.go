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

type CreateNoteRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Content   string `json:"content"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

type CreateNoteResponse struct {
	Success bool   `json:"success"`
	NoteID  string `json:"note_id"`
}

type NoteHandler struct {
	notes    *services.NoteService
	resolver *authz.Resolver
}

func NewNoteHandler(notes *services.NoteService, resolver *authz.Resolver) *NoteHandler {
	return &NoteHandler{notes: notes, resolver: resolver}
}

func (h *NoteHandler) CreateNote(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var body CreateNoteRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	decision := h.resolver.ResolveProject(ctx.Request.Context(), currentUser.User.ID, body.ProjectID, authz.ActionWrite)

	if !decision.Permitted {
		abortDenied(ctx, decision)
		return
	}

	note := models.Note{
		ID:        uuid.NewString(),
		ProjectID: body.ProjectID,
		Content:   body.Content,
		X:         body.X,
		Y:         body.Y,
	}

	noteID, err := h.notes.CreateNote(ctx.Request.Context(), note)

	if err != nil {
		log.Printf("Failed to create note: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, CreateNoteResponse{Success: true, NoteID: noteID})
}

func (h *NoteHandler) GetNote(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	note, err := h.notes.GetNoteByID(ctx.Request.Context(), ctx.Param("note_id"))

	if err != nil {
		if apperr.HTTPStatus(err) == http.StatusNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		} else {
			log.Printf("Failed to fetch note: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	decision := h.resolver.ResolveProject(ctx.Request.Context(), currentUser.User.ID, note.ProjectID, authz.ActionRead)

	if !decision.Permitted {
		abortDenied(ctx, decision)
		return
	}

	ctx.JSON(http.StatusOK, note)
}

func (h *NoteHandler) ListProjectNotes(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	projectID := ctx.Param("project_id")

	decision := h.resolver.ResolveProject(ctx.Request.Context(), currentUser.User.ID, projectID, authz.ActionRead)

	if !decision.Permitted {
		abortDenied(ctx, decision)
		return
	}

	notes, err := h.notes.ListNotesByProjectID(ctx.Request.Context(), projectID)

	if err != nil {
		log.Printf("Failed to list notes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}

	ctx.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) DeleteNote(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	if currentUser.User == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	note, err := h.notes.GetNoteByID(ctx.Request.Context(), ctx.Param("note_id"))

	if err != nil {
		if apperr.HTTPStatus(err) == http.StatusNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		} else {
			log.Printf("Failed to fetch note: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	decision := h.resolver.ResolveProject(ctx.Request.Context(), currentUser.User.ID, note.ProjectID, authz.ActionWrite)

	if !decision.Permitted {
		abortDenied(ctx, decision)
		return
	}

	if err := h.notes.DeleteNote(ctx.Request.Context(), note.ID); err != nil {
		log.Printf("Failed to delete note: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
