package handler

import (
	"context"
	"io"
	"net/http"

	"ramp-gateway/internal/adapter/http/dto"
	"ramp-gateway/internal/core/ports"
	"ramp-gateway/pkg/apperror"
	"ramp-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// HeaderWebhookSignature carries the hex HMAC-SHA512 of the raw body.
const HeaderWebhookSignature = "signature"

// WebhookHandler receives payment provider callbacks.
type WebhookHandler struct {
	reconciler ports.WebhookReconciler
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(reconciler ports.WebhookReconciler) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler}
}

// Fincra handles POST /webhooks/fincra.
func (h *WebhookHandler) Fincra(c *gin.Context) {
	h.receive(c, h.reconciler.HandleFincra)
}

// Paybox handles POST /webhooks/paybox.
func (h *WebhookHandler) Paybox(c *gin.Context) {
	h.receive(c, h.reconciler.HandlePaybox)
}

// receive reads the body raw because the signature covers the exact bytes
// sent.
func (h *WebhookHandler) receive(c *gin.Context, handle func(context.Context, []byte, string) error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	if err := handle(c.Request.Context(), body, c.GetHeader(HeaderWebhookSignature)); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WebhookAck{Result: "success"})
}
