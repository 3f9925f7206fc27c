package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind is the direction of the fiat/token conversion.
type TransactionKind string

const (
	TransactionKindOnramp  TransactionKind = "ONRAMP"  // fiat in, tokens out
	TransactionKindOfframp TransactionKind = "OFFRAMP" // tokens in, fiat out
)

// IsValid reports whether k is a known kind.
func (k TransactionKind) IsValid() bool {
	return k == TransactionKindOnramp || k == TransactionKindOfframp
}

// TransactionStatus represents the lifecycle state of a swap transaction.
type TransactionStatus string

const (
	TransactionStatusInitiated TransactionStatus = "INITIATED"
	TransactionStatusDebiting  TransactionStatus = "DEBITING"
	TransactionStatusDebited   TransactionStatus = "DEBITED"
	TransactionStatusSettling  TransactionStatus = "SETTLING"
	TransactionStatusSettled   TransactionStatus = "SETTLED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// forward holds the single legal successor of each non-terminal status.
var forward = map[TransactionStatus]TransactionStatus{
	TransactionStatusInitiated: TransactionStatusDebiting,
	TransactionStatusDebiting:  TransactionStatusDebited,
	TransactionStatusDebited:   TransactionStatusSettling,
	TransactionStatusSettling:  TransactionStatusSettled,
}

// ParseTransactionStatus accepts a status name in any letter case.
func ParseTransactionStatus(s string) (TransactionStatus, bool) {
	status := TransactionStatus(strings.ToUpper(strings.TrimSpace(s)))
	return status, status.IsValid()
}

// IsValid reports whether s is one of the six enumerated statuses.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusInitiated, TransactionStatusDebiting, TransactionStatusDebited,
		TransactionStatusSettling, TransactionStatusSettled, TransactionStatusFailed:
		return true
	}
	return false
}

// IsTerminal returns true for SETTLED and FAILED.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusSettled || s == TransactionStatusFailed
}

// CanTransitionTo reports whether next is a legal step from s along the
// settlement graph. Any non-terminal status may fail.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if next == TransactionStatusFailed {
		return s.IsValid() && !s.IsTerminal()
	}
	succ, ok := forward[s]
	return ok && succ == next
}

// Token is a supported stablecoin.
type Token string

const (
	TokenUSDC Token = "USDC"
	TokenUSDT Token = "USDT"
)

// IsSupported reports whether the ledger program knows this token.
func (t Token) IsSupported() bool {
	return t == TokenUSDC || t == TokenUSDT
}

// PaymentProvider names the fiat processor that holds a charge or payout.
type PaymentProvider string

const (
	PaymentProviderFincra PaymentProvider = "FINCRA"
	PaymentProviderPaybox PaymentProvider = "PAYBOX"
)

// Transaction is a single on/off-ramp swap and its settlement state.
type Transaction struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"user_id"`
	Kind              TransactionKind   `json:"kind"`
	Status            TransactionStatus `json:"status"`
	Token             Token             `json:"token"`
	Fiat              string            `json:"fiat"`
	Country           string            `json:"country"`
	FiatAmount        decimal.Decimal   `json:"fiat_amount"`
	TokenAmount       decimal.Decimal   `json:"token_amount"`
	FiatRate          decimal.Decimal   `json:"fiat_rate"`
	TokenRate         decimal.Decimal   `json:"token_rate"`
	TransactionHash   *string           `json:"transaction_hash,omitempty"`
	FiatTransactionID *string           `json:"fiat_transaction_id,omitempty"`
	PaymentProvider   *PaymentProvider  `json:"payment_provider,omitempty"`
	PayoutInfo        PayoutInfo        `json:"payout_info"`
	ErrorReason       *string           `json:"error_reason,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	SettledDate       *time.Time        `json:"settled_date,omitempty"`
}

// SwapID is the ledger-side identifier of the transaction: the uuid hex
// without dashes. It seeds the swap account address.
func (t *Transaction) SwapID() string {
	return SwapIDFor(t.ID)
}

// SwapIDFor returns the ledger swap id for a transaction id.
func SwapIDFor(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}

// BelongsTo reports whether the transaction is owned by userID.
func (t *Transaction) BelongsTo(userID uuid.UUID) bool {
	return t.UserID == userID
}

// StatusUpdate carries a status change plus the columns a transition may
// set alongside it. Nil fields leave the stored value untouched.
type StatusUpdate struct {
	Status            TransactionStatus
	TransactionHash   *string
	FiatTransactionID *string
	PaymentProvider   *PaymentProvider
	ErrorReason       *string
	SettledDate       *time.Time
}
