package ports

import (
	"context"

	"ramp-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EncryptionService seals small secrets at rest.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService computes and verifies hex HMAC signatures over raw bodies.
type SignatureService interface {
	Sign(secret string, payload []byte) string
	Verify(secret string, payload []byte, signature string) bool
}

// TokenService validates bearer tokens issued by the auth service.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims. Admin is set for operator
// tokens carrying the "admin" role.
type TokenClaims struct {
	UserID uuid.UUID
	Admin  bool
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// OrderService drives a swap transaction through its settlement states.
type OrderService interface {
	Create(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error)
	Debit(ctx context.Context, req DebitRequest) (*DebitResult, error)
	Credit(ctx context.Context, userID, txID uuid.UUID) (*CreditResult, error)
	Complete(ctx context.Context, userID, txID uuid.UUID) (*LedgerTxResult, error)
	UpdateStatus(ctx context.Context, txID, userID uuid.UUID, status string) (*domain.Transaction, error)
	Fail(ctx context.Context, txID, userID uuid.UUID, reason string) (*domain.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
	NewUserAccountTx(ctx context.Context, userID uuid.UUID) (*LedgerTxResult, error)
}

// CreateOrderRequest holds validated input for a new swap.
type CreateOrderRequest struct {
	UserID      uuid.UUID
	FiatAmount  decimal.Decimal
	TokenAmount decimal.Decimal
	Token       domain.Token
	Fiat        string
	Country     string
	Kind        domain.TransactionKind
	PayoutInfo  domain.PayoutInfo
	FiatRate    decimal.Decimal
	TokenRate   decimal.Decimal
}

type CreateOrderResult struct {
	Transaction           *domain.Transaction `json:"transaction"`
	SerializedTransaction string              `json:"serialized_transaction"`
}

// DebitRequest starts the debit leg. Card is only used for ONRAMP.
type DebitRequest struct {
	UserID         uuid.UUID
	TxID           uuid.UUID
	BlockchainTxID string
	Card           *CardDetails
}

type DebitResult struct {
	Transaction           *domain.Transaction `json:"transaction"`
	PaymentLink           string              `json:"payment_link,omitempty"`
	SerializedTransaction string              `json:"serialized_transaction,omitempty"`
}

type CreditResult struct {
	Transaction           *domain.Transaction `json:"transaction"`
	SerializedTransaction string              `json:"serialized_transaction,omitempty"`
	PayoutReference       string              `json:"payout_reference,omitempty"`
}

type LedgerTxResult struct {
	SerializedTransaction string `json:"serialized_transaction"`
}

// WebhookReconciler advances transactions on verified provider callbacks.
type WebhookReconciler interface {
	HandleFincra(ctx context.Context, body []byte, signature string) error
	HandlePaybox(ctx context.Context, body []byte, signature string) error
}

// UserService is the thin user collaborator behind the order flow.
type UserService interface {
	Signup(ctx context.Context, req SignupRequest) (*domain.User, error)
	LinkWallet(ctx context.Context, id uuid.UUID, walletAddress string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type SignupRequest struct {
	Username       string
	Email          string
	WalletAddress  *string
	KYCFields      []byte
	PaymentDetails []byte
}

// MarketService serves forex rates and the bank list.
type MarketService interface {
	Rate(ctx context.Context, symbol string) (decimal.Decimal, error)
	Banks(ctx context.Context) ([]Bank, error)
}
