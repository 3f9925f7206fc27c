package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionCreateOrder    AuditAction = "CREATE_ORDER"
	AuditActionDebit          AuditAction = "DEBIT"
	AuditActionCredit         AuditAction = "CREDIT"
	AuditActionComplete       AuditAction = "COMPLETE"
	AuditActionOverrideStatus AuditAction = "OVERRIDE_STATUS"
	AuditActionFail           AuditAction = "FAIL"
	AuditActionSignup         AuditAction = "SIGNUP"
	AuditActionLinkWallet     AuditAction = "LINK_WALLET"
	AuditActionWebhook        AuditAction = "WEBHOOK"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	UserID       *uuid.UUID  `json:"user_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
