package helpers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextUserID    = "user_id"
	ContextBody      = "validated_body"
	ContextRequestID = "request_id"
)

// UserIDFrom returns the authenticated user id set by the session middleware.
func UserIDFrom(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// BodyFrom returns the request body bound by the validation middleware.
func BodyFrom[T any](c *gin.Context) (*T, bool) {
	v, ok := c.Get(ContextBody)
	if !ok {
		return nil, false
	}
	body, ok := v.(*T)
	return body, ok
}

func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}
