package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/internal/authz"
)

// abortDenied translates a deny decision into exactly one transport outcome.
func abortDenied(ctx *gin.Context, decision authz.Decision) {
	switch decision.Reason {
	case authz.ReasonProjectNotFound:
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	case authz.ReasonNotMember:
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not a team member"})
	case authz.ReasonInsufficientAuthority:
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Insufficient authority"})
	default:
		log.Printf("Authorization resolution failed: %v", decision.Err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
