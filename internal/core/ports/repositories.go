package ports

import (
	"context"

	"ramp-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepository defines persistence operations for swap transactions.
// Lookups return (nil, nil) when the row does not exist.
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)

	// CompareAndSetStatus applies update only while the stored status still
	// equals expected. It returns (nil, nil) when the row was not updated.
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, expected domain.TransactionStatus, update domain.StatusUpdate) (*domain.Transaction, error)

	// SetPaymentReference records the provider holding a charge or payout
	// without touching the status.
	SetPaymentReference(ctx context.Context, id uuid.UUID, provider domain.PaymentProvider, reference string) error

	// Row-locked access for the administrative override.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	LinkWallet(ctx context.Context, id uuid.UUID, walletAddress string) error
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
