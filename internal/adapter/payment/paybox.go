package payment

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ramp-gateway/config"
	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"
)

const payboxName = "paybox"

// Paybox modes.
const (
	ModeTest        = "Test"
	ModeCash        = "Cash"
	ModeMobileMoney = "MobileMoney"
	ModeCard        = "Card"
)

// Short names of mobile money operators listed among settlement accounts.
var mobileOperators = map[string]bool{
	"MTN":        true,
	"AIRTELTIGO": true,
	"VODAFONE":   true,
}

// Paybox talks to the Paybox collection and transfer APIs.
type Paybox struct {
	cfg    config.PayboxConfig
	client HTTPClient
}

// NewPaybox creates a Paybox client.
func NewPaybox(cfg config.PayboxConfig, client HTTPClient) *Paybox {
	return &Paybox{cfg: cfg, client: client}
}

type payboxChargeRequest struct {
	OrderID       string `json:"order_id"`
	Currency      string `json:"currency"`
	Amount        string `json:"amount"`
	Mode          string `json:"mode"`
	CardFirstName string `json:"card_first_name"`
	CardLastName  string `json:"card_last_name"`
	CardNumber    string `json:"card_number"`
	CardExpiry    string `json:"card_expiry"`
	CardCVC       string `json:"card_cvc"`
	CardCountry   string `json:"card_country"`
	CardAddress   string `json:"card_address"`
	CardCity      string `json:"card_city"`
	CardState     string `json:"card_state"`
	CardZip       string `json:"card_zip"`
	CardEmail     string `json:"card_email"`
}

type payboxTransferRequest struct {
	OrderID       string `json:"order_id"`
	Currency      string `json:"currency"`
	Amount        string `json:"amount"`
	Mode          string `json:"mode"`
	MobileNetwork string `json:"mobile_network,omitempty"`
	MobileNumber  string `json:"mobile_number,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
	BankAccount   string `json:"bank_account,omitempty"`
}

type payboxResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
	URL     string `json:"url"`
}

// ChargeCard starts a card collection and returns the checkout link.
func (p *Paybox) ChargeCard(ctx context.Context, charge ports.CardCharge) (*ports.PaymentLink, error) {
	c := charge.Card
	req := payboxChargeRequest{
		OrderID:       charge.OrderID,
		Currency:      charge.Currency,
		Amount:        charge.Amount.String(),
		Mode:          p.mode(ModeCard),
		CardFirstName: c.FirstName,
		CardLastName:  c.LastName,
		CardNumber:    c.Number,
		CardExpiry:    c.Expiry,
		CardCVC:       c.CVC,
		CardCountry:   c.Country,
		CardAddress:   c.Address,
		CardCity:      c.City,
		CardState:     c.State,
		CardZip:       c.Zip,
		CardEmail:     c.Email,
	}

	var resp payboxResponse
	if err := doJSON(ctx, p.client, payboxName, http.MethodPost, p.url("/pay"), p.auth(p.cfg.CollectionKey), req, &resp); err != nil {
		return nil, err
	}
	if resp.URL == "" {
		return nil, errors.New("paybox: charge response has no url")
	}

	ref := resp.Token
	if ref == "" {
		ref = charge.OrderID
	}
	return &ports.PaymentLink{Provider: domain.PaymentProviderPaybox, Link: resp.URL, Reference: ref}, nil
}

// Transfer pushes fiat to a mobile wallet or a bank account.
func (p *Paybox) Transfer(ctx context.Context, t ports.TransferRequest) (*ports.PayoutReceipt, error) {
	mode := ModeMobileMoney
	if t.MobileNumber == "" {
		mode = ModeCash
	}
	req := payboxTransferRequest{
		OrderID:       t.OrderID,
		Currency:      t.Currency,
		Amount:        t.Amount.String(),
		Mode:          p.mode(mode),
		MobileNetwork: t.MobileNetwork,
		MobileNumber:  t.MobileNumber,
		BankCode:      t.BankCode,
		BankAccount:   t.BankAccount,
	}

	var resp payboxResponse
	if err := doJSON(ctx, p.client, payboxName, http.MethodPost, p.url("/transfer"), p.auth(p.cfg.TransferKey), req, &resp); err != nil {
		return nil, err
	}

	ref := resp.Token
	if ref == "" {
		ref = t.OrderID
	}
	return &ports.PayoutReceipt{Provider: domain.PaymentProviderPaybox, Reference: ref}, nil
}

// ListBanks returns the banks accepting settlement transfers. Mobile money
// operators are left out.
func (p *Paybox) ListBanks(ctx context.Context) ([]ports.Bank, error) {
	var all []ports.Bank
	if err := doJSON(ctx, p.client, payboxName, http.MethodGet, p.url("/settlement_accounts"), p.auth(p.cfg.TransferKey), nil, &all); err != nil {
		return nil, err
	}

	banks := make([]ports.Bank, 0, len(all))
	for _, b := range all {
		if mobileOperators[strings.ToUpper(b.ShortName)] {
			continue
		}
		banks = append(banks, b)
	}
	return banks, nil
}

// mode sends Test while the account is in test mode.
func (p *Paybox) mode(op string) string {
	if strings.EqualFold(p.cfg.Mode, ModeTest) {
		return ModeTest
	}
	return op
}

func (p *Paybox) url(path string) string {
	return strings.TrimRight(p.cfg.APIURL, "/") + path
}

func (p *Paybox) auth(key string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + key}
}
