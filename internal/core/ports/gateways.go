package ports

import (
	"context"
	"time"

	"ramp-gateway/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// --- Payment provider ---

// PaymentProvider initiates fiat charges and payouts.
type PaymentProvider interface {
	// InitiatePayment creates a hosted checkout link.
	InitiatePayment(ctx context.Context, form PaymentForm) (*PaymentLink, error)
	// InitiatePayout sends fiat to a bank account or mobile wallet.
	InitiatePayout(ctx context.Context, form PayoutForm) (*PayoutReceipt, error)
	// ChargeCard charges a card directly and returns the checkout/redirect link.
	ChargeCard(ctx context.Context, charge CardCharge) (*PaymentLink, error)
	// Transfer pushes fiat to mobile money or a bank account.
	Transfer(ctx context.Context, transfer TransferRequest) (*PayoutReceipt, error)
}

type PaymentForm struct {
	Amount        decimal.Decimal
	Currency      string
	Reference     string
	RedirectURL   string
	UserID        string
	CustomerName  string
	CustomerEmail string
}

type PaymentLink struct {
	Provider  domain.PaymentProvider
	Link      string
	Reference string
}

// PayoutDestination mirrors the provider's destination types.
type PayoutDestination string

const (
	PayoutDestinationBank        PayoutDestination = "bank_account"
	PayoutDestinationMobileMoney PayoutDestination = "mobile_money_wallet"
)

type PayoutForm struct {
	Amount      decimal.Decimal
	Currency    string
	Reference   string
	Description string
	Destination PayoutDestination
	Beneficiary Beneficiary
}

type Beneficiary struct {
	FirstName         string
	LastName          string
	AccountHolderName string
	Country           string
	Phone             string
	Email             string
	AccountNumber     string
	BankCode          string
	MobileMoneyCode   string
}

type PayoutReceipt struct {
	Provider  domain.PaymentProvider
	Reference string
}

type CardCharge struct {
	OrderID  string
	Currency string
	Amount   decimal.Decimal
	Card     CardDetails
}

type CardDetails struct {
	FirstName string
	LastName  string
	Number    string
	Expiry    string
	CVC       string
	Country   string
	Address   string
	City      string
	State     string
	Zip       string
	Email     string
}

type TransferRequest struct {
	OrderID       string
	Currency      string
	Amount        decimal.Decimal
	MobileNetwork string
	MobileNumber  string
	BankCode      string
	BankAccount   string
}

// --- Ledger ---

// LedgerGateway builds partially signed ledger transactions. Every
// returned string is a base64 wire transaction carrying the authority's
// signature and missing the user's.
type LedgerGateway interface {
	UserAccountExists(ctx context.Context, wallet solana.PublicKey) (bool, error)
	SwapAccountAddress(wallet solana.PublicKey, swapID string) (solana.PublicKey, error)

	NewUserTx(ctx context.Context, auth domain.LedgerAuthority, wallet solana.PublicKey) (string, error)
	// NewSwapTx opens the swap account; withUser prepends the user account creation.
	NewSwapTx(ctx context.Context, auth domain.LedgerAuthority, wallet solana.PublicKey, swapID string, withUser bool) (string, error)
	InitiateSwapTx(ctx context.Context, auth domain.LedgerAuthority, req InitiateSwap) (string, error)
	CompleteSwapTx(ctx context.Context, auth domain.LedgerAuthority, req CompleteSwap) (string, error)

	// EnsureTokenAccounts makes sure the authority and owner both hold token
	// accounts for every supported mint and returns the owner's.
	EnsureTokenAccounts(ctx context.Context, auth domain.LedgerAuthority, owner solana.PublicKey) (*TokenAccounts, error)
}

type TokenAccounts struct {
	USDC solana.PublicKey
	USDT solana.PublicKey
}

type InitiateSwap struct {
	UserWallet solana.PublicKey // seeds the user and swap accounts
	Signer     solana.PublicKey // token owner and fee payer
	Accounts   TokenAccounts    // signer's token accounts
	Token      domain.Token
	Amount     decimal.Decimal // whole tokens
	Kind       domain.TransactionKind
	SwapID     string
}

type CompleteSwap struct {
	UserWallet solana.PublicKey
	FiatAmount decimal.Decimal
	SwapID     string
}

// --- Market data ---

// RateFetcher reads USD-based forex rates.
type RateFetcher interface {
	Latest(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// RateCache caches rates between fetches. Get returns ok=false on a miss.
type RateCache interface {
	Get(ctx context.Context, symbol string) (decimal.Decimal, bool, error)
	Set(ctx context.Context, symbol string, rate decimal.Decimal, ttl time.Duration) error
}

// BankDirectory lists banks that accept settlement transfers.
type BankDirectory interface {
	ListBanks(ctx context.Context) ([]Bank, error)
}

type Bank struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Code      string `json:"code"`
}

// --- Notifications & webhooks ---

// Notifier publishes status changes to subscribers.
type Notifier interface {
	Publish(ctx context.Context, event domain.StatusEvent) error
}

// WebhookReplayStore remembers webhook bodies that were already processed.
type WebhookReplayStore interface {
	Seen(ctx context.Context, key string) (bool, error)
	Remember(ctx context.Context, key string, ttl time.Duration) error
}
