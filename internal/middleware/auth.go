package middleware

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwell-dev/inkwell/internal/auth"
	"github.com/inkwell-dev/inkwell/internal/models"
	"github.com/inkwell-dev/inkwell/internal/services"
	"github.com/inkwell-dev/inkwell/internal/types"
)

// CurrentUser is the per-request identity. User is nil when the request
// carried no valid token; handlers that require identity must reject before
// touching the store.
type CurrentUser struct {
	User       *models.User
	Authorized bool
}

// Identity runs on every route. It never rejects: a missing or invalid token
// just leaves the request anonymous, and each handler enforces its own
// requirement.
func Identity(users *services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(types.ContextUserKey, resolveIdentity(ctx, users))
		ctx.Next()
	}
}

func resolveIdentity(ctx *gin.Context, users *services.UserService) CurrentUser {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader == "" {
		return CurrentUser{}
	}

	parts := strings.SplitN(authHeader, " ", 2)

	if len(parts) != 2 || parts[0] != "Bearer" {
		return CurrentUser{}
	}

	token, err := auth.VerifyJWT(parts[1])

	if err != nil {
		return CurrentUser{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return CurrentUser{}
	}

	userID, ok := claims["user_id"].(string)

	if !ok {
		return CurrentUser{}
	}

	user, err := users.GetUserByID(ctx.Request.Context(), userID)

	if err != nil {
		log.Printf("Failed to load user %s for token: %v", userID, err)
		return CurrentUser{}
	}

	return CurrentUser{User: &user, Authorized: true}
}
