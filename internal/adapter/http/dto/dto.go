package dto

import (
	"encoding/json"

	"ramp-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the request body for POST /order/create.
// Amounts and rates accept JSON numbers or decimal strings.
type CreateOrderRequest struct {
	UserID      string            `json:"user_id" binding:"required,uuid"`
	FiatAmount  decimal.Decimal   `json:"fiat_amount"`
	TokenAmount decimal.Decimal   `json:"token_amount"`
	Token       string            `json:"token" binding:"required"`
	Fiat        string            `json:"fiat" binding:"required,currency_code"`
	Country     string            `json:"country" binding:"required,min=2,max=3"`
	Kind        string            `json:"kind" binding:"required,oneof=ONRAMP OFFRAMP"`
	PayoutInfo  domain.PayoutInfo `json:"payout_info"`
	FiatRate    decimal.Decimal   `json:"fiat_rate"`
	TokenRate   decimal.Decimal   `json:"token_rate"`
}

// TxRequest names a transaction and the user acting on it.
type TxRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	TxID   string `json:"tx_id" binding:"required,uuid"`
}

// DebitRequest is the request body for POST /order/debit.
type DebitRequest struct {
	TxRequest
	BlockchainTxID string       `json:"blockchain_tx_id" binding:"omitempty,max=128,safe_id"`
	Card           *CardRequest `json:"card,omitempty"`
}

// CardRequest carries card details for a direct ONRAMP charge.
type CardRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Number    string `json:"number" binding:"required,numeric,min=12,max=19"`
	Expiry    string `json:"expiry" binding:"required,max=7"`
	CVC       string `json:"cvc" binding:"required,numeric,min=3,max=4"`
	Country   string `json:"country" binding:"omitempty,max=3"`
	Address   string `json:"address" binding:"omitempty,max=200"`
	City      string `json:"city" binding:"omitempty,max=100"`
	State     string `json:"state" binding:"omitempty,max=100"`
	Zip       string `json:"zip" binding:"omitempty,max=20"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// FailRequest is the request body for POST /order/:id/fail.
type FailRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Reason string `json:"reason" binding:"max=500"`
}

// OverrideStatusURI binds PATCH /order/:id/:userId/:status. The status
// itself is checked by the service so an unknown value maps to its own error.
type OverrideStatusURI struct {
	ID     string `uri:"id" binding:"required,uuid"`
	UserID string `uri:"userId" binding:"required,uuid"`
	Status string `uri:"status" binding:"required"`
}

// SignupRequest is the request body for POST /users.
type SignupRequest struct {
	Username       string          `json:"username" binding:"required,min=3,max=50"`
	Email          string          `json:"email" binding:"required,email"`
	WalletAddress  *string         `json:"wallet_address,omitempty" binding:"omitempty,solana_address"`
	KYCFields      json.RawMessage `json:"kyc_fields,omitempty"`
	PaymentDetails json.RawMessage `json:"payment_details,omitempty"`
}

// LinkWalletRequest is the request body for PUT /users/:id/wallet.
type LinkWalletRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required,solana_address"`
}

// RateResponse is the response body for GET /rates/:symbol.
type RateResponse struct {
	Base   string          `json:"base"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"`
}

// WebhookAck is the plain acknowledgement returned to the payment provider.
type WebhookAck struct {
	Result string `json:"result"`
}
