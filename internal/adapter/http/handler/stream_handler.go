package handler

import (
	"ramp-gateway/internal/adapter/http/middleware"
	"ramp-gateway/internal/adapter/notify"
	"ramp-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StreamHandler upgrades subscribers to the status event websocket.
type StreamHandler struct {
	hub *notify.Hub
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(hub *notify.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

// Subscribe handles GET /ws. The optional user_id query narrows the stream
// to one user; an authenticated caller only ever sees their own events.
func (h *StreamHandler) Subscribe(c *gin.Context) {
	filter := ""
	if raw := c.Query("user_id"); raw != "" {
		userID, err := parseUUID(raw, "user_id")
		if err != nil {
			response.Error(c, err)
			return
		}
		if !middleware.AuthorizeUser(c, userID) {
			return
		}
		filter = userID.String()
	} else if caller, ok := c.Get(middleware.CtxUserID); ok {
		if id, ok := caller.(uuid.UUID); ok {
			filter = id.String()
		}
	}

	notify.ServeWS(c.Writer, c.Request, h.hub, filter)
}
