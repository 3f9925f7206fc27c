package handler

import (
	"ramp-gateway/internal/adapter/http/middleware"
	"ramp-gateway/pkg/apperror"
	"ramp-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parseUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Validation(field + " must be a UUID")
	}
	return id, nil
}

// actAs parses the acting user id and checks it against the token subject.
// It writes the error response and returns false on failure.
func actAs(c *gin.Context, raw string) (uuid.UUID, bool) {
	userID, err := parseUUID(raw, "user_id")
	if err != nil {
		response.Error(c, err)
		return uuid.Nil, false
	}
	if !middleware.AuthorizeUser(c, userID) {
		return uuid.Nil, false
	}
	c.Set(middleware.CtxUserID, userID)
	return userID, true
}

// tagResource names the affected record for the audit trail.
func tagResource(c *gin.Context, id string) {
	c.Set(middleware.CtxResourceID, id)
}
