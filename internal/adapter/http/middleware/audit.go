package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful write operations. Handlers may set
// CtxResourceID (and CtxUserID when no token carried one) to attach the
// affected record.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var userID *uuid.UUID
		if uid, exists := c.Get(CtxUserID); exists {
			if id, ok := uid.(uuid.UUID); ok {
				userID = &id
			}
		}

		resourceID := c.GetString(CtxResourceID)
		if resourceID == "" {
			resourceID = c.Param("id")
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			UserID:       userID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case route == "/order/create" && method == http.MethodPost:
		return domain.AuditActionCreateOrder, "transaction"
	case route == "/order/debit" && method == http.MethodPost:
		return domain.AuditActionDebit, "transaction"
	case route == "/order/credit" && method == http.MethodPost:
		return domain.AuditActionCredit, "transaction"
	case route == "/order/complete" && method == http.MethodPost:
		return domain.AuditActionComplete, "transaction"
	case route == "/order/:id/:userId/:status" && method == http.MethodPatch:
		return domain.AuditActionOverrideStatus, "transaction"
	case route == "/order/:id/fail" && method == http.MethodPost:
		return domain.AuditActionFail, "transaction"
	case (route == "/webhooks/fincra" || route == "/webhooks/paybox") && method == http.MethodPost:
		return domain.AuditActionWebhook, "transaction"
	case route == "/users" && method == http.MethodPost:
		return domain.AuditActionSignup, "user"
	case route == "/users/:id/wallet" && method == http.MethodPut:
		return domain.AuditActionLinkWallet, "user"
	}
	return "", ""
}
