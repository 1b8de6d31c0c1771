package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/joshua-takyi/carrental/internal/services"
)

// bearerToken reads the session token from the Authorization header and then
// from the access_token cookie.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		if token = strings.TrimSpace(token); token != "" {
			return token
		}
	}
	if cookie, err := c.Cookie(helpers.TokenCookieName); err == nil && cookie != "" {
		return cookie
	}
	return ""
}

// AuthMiddleware resolves the session and stores the user id in the context.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			return
		}

		userID, err := auth.Authenticate(token)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Set(helpers.ContextUserID, userID)
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware. The role is read from the
// store on every request so demotions apply immediately.
func RequireAdmin(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := helpers.UserIDFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
			return
		}
		if err := auth.RequireAdmin(c.Request.Context(), userID); err != nil {
			abortWithError(c, err)
			return
		}
		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	status, appErr, ok := services.Status(err)
	if !ok || status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(status, models.ErrorResponse(appErr.Message))
}
