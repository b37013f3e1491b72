package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/internal/middleware"
	"github.com/inkwell-dev/inkwell/internal/types"
)

// GetCurrentUser returns the identity the middleware stashed in the context.
// An anonymous identity comes back when the middleware never ran.
func GetCurrentUser(ctx *gin.Context) middleware.CurrentUser {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.CurrentUser{}
	}

	currentUser, ok := value.(middleware.CurrentUser)

	if !ok {
		return middleware.CurrentUser{}
	}

	return currentUser
}
