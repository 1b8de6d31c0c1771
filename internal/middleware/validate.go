package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
)

// ValidateJSON binds the JSON body into a fresh T and rejects the request
// with field errors before the handler runs. Handlers read the result with
// helpers.BodyFrom[T].
func ValidateJSON[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		body := new(T)
		if err := c.ShouldBindJSON(body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ValidationResponse(helpers.ValidationErrors(err)))
			return
		}
		c.Set(helpers.ContextBody, body)
		c.Next()
	}
}
