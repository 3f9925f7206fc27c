package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusEvent is pushed to subscribers whenever a transaction advances.
type StatusEvent struct {
	TransactionID uuid.UUID         `json:"transaction_id"`
	UserID        uuid.UUID         `json:"user_id"`
	Status        TransactionStatus `json:"status"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

// NewStatusEvent snapshots t into an event.
func NewStatusEvent(t *Transaction) StatusEvent {
	return StatusEvent{
		TransactionID: t.ID,
		UserID:        t.UserID,
		Status:        t.Status,
		OccurredAt:    time.Now().UTC(),
	}
}
