package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User is the account a transaction is created for. WalletAddress stays
// nil until the user links a wallet.
type User struct {
	ID             uuid.UUID       `json:"id"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	WalletAddress  *string         `json:"wallet_address,omitempty"`
	KYCFields      json.RawMessage `json:"kyc_fields,omitempty"`
	PaymentDetails json.RawMessage `json:"payment_details,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// HasWallet returns true once a wallet address is linked.
func (u *User) HasWallet() bool {
	return u.WalletAddress != nil && *u.WalletAddress != ""
}
