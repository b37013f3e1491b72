package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/internal/utils"
)

func HealthCheck(ctx *gin.Context) {
	currentUser := utils.GetCurrentUser(ctx)

	ctx.JSON(http.StatusOK, gin.H{
		"server_ok":  true,
		"authorized": currentUser.Authorized,
	})
}
