package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/carrental/internal/helpers"
	"github.com/joshua-takyi/carrental/internal/models"
	"github.com/joshua-takyi/carrental/internal/services"
)

// respondError writes client errors directly and hands everything else to
// the ErrorHandler middleware.
func respondError(c *gin.Context, err error) {
	status, appErr, ok := services.Status(err)
	if !ok || status == http.StatusInternalServerError {
		_ = c.Error(err)
		return
	}
	c.JSON(status, models.ErrorResponse(appErr.Message))
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := helpers.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("Authentication required"))
	}
	return id, ok
}

func pathID(c *gin.Context, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(msg))
		return uuid.Nil, false
	}
	return id, true
}

func pageFrom(c *gin.Context) models.Page {
	var q services.PageQuery
	_ = c.ShouldBindQuery(&q)
	return q.Resolve()
}
