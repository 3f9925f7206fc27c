package domain

import (
	"strings"

	"github.com/gagliardetto/solana-go"
)

// PayoutMethod is the discriminant of PayoutInfo.
type PayoutMethod string

const (
	PayoutMethodWallet      PayoutMethod = "WALLET"
	PayoutMethodMobileMoney PayoutMethod = "MOBILE_MONEY"
	PayoutMethodBank        PayoutMethod = "BANK"
)

// PayoutInfo is the destination of the credit leg. Exactly one variant,
// the one named by Method, is set.
type PayoutInfo struct {
	Method      PayoutMethod       `json:"method"`
	Wallet      *WalletPayout      `json:"wallet,omitempty"`
	MobileMoney *MobileMoneyPayout `json:"mobile_money,omitempty"`
	Bank        *BankPayout        `json:"bank,omitempty"`
}

// WalletPayout sends tokens to a Solana wallet.
type WalletPayout struct {
	WalletAddress string `json:"wallet_address"`
}

// MobileMoneyPayout sends fiat to a mobile money number on Network.
type MobileMoneyPayout struct {
	Name    string `json:"name"`
	Number  string `json:"number"`
	Network string `json:"network"`
}

// BankPayout sends fiat to a bank account.
type BankPayout struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
}

// PayoutError describes why a PayoutInfo is unusable.
type PayoutError struct {
	Reason string
}

func (e *PayoutError) Error() string {
	return "invalid payout info: " + e.Reason
}

// Validate checks that the variant named by Method is present and
// complete and that no other variant is set.
func (p PayoutInfo) Validate() error {
	set := 0
	for _, present := range []bool{p.Wallet != nil, p.MobileMoney != nil, p.Bank != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return &PayoutError{Reason: "exactly one payout destination must be set"}
	}

	switch p.Method {
	case PayoutMethodWallet:
		if p.Wallet == nil {
			return &PayoutError{Reason: "method WALLET requires wallet"}
		}
		if _, err := solana.PublicKeyFromBase58(p.Wallet.WalletAddress); err != nil {
			return &PayoutError{Reason: "wallet_address is not a valid address"}
		}
	case PayoutMethodMobileMoney:
		m := p.MobileMoney
		if m == nil {
			return &PayoutError{Reason: "method MOBILE_MONEY requires mobile_money"}
		}
		if blank(m.Name) || blank(m.Number) || blank(m.Network) {
			return &PayoutError{Reason: "mobile_money requires name, number and network"}
		}
	case PayoutMethodBank:
		b := p.Bank
		if b == nil {
			return &PayoutError{Reason: "method BANK requires bank"}
		}
		if blank(b.AccountName) || blank(b.AccountNumber) || blank(b.BankCode) {
			return &PayoutError{Reason: "bank requires account_name, account_number and bank_code"}
		}
	default:
		return &PayoutError{Reason: "unknown payout method " + string(p.Method)}
	}
	return nil
}

// FitsKind reports whether the payout method can serve a transaction of
// kind k: tokens go to a wallet, fiat goes to mobile money or a bank.
func (p PayoutInfo) FitsKind(k TransactionKind) bool {
	switch k {
	case TransactionKindOnramp:
		return p.Method == PayoutMethodWallet
	case TransactionKindOfframp:
		return p.Method == PayoutMethodMobileMoney || p.Method == PayoutMethodBank
	}
	return false
}

// SplitName splits a holder name on the first space. A single word leaves
// last empty.
func SplitName(full string) (first, last string) {
	first, last, _ = strings.Cut(strings.TrimSpace(full), " ")
	return first, strings.TrimSpace(last)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
