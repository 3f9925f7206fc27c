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

const fincraName = "fincra"

// Fincra talks to the Fincra checkout and disbursement APIs.
type Fincra struct {
	cfg    config.FincraConfig
	client HTTPClient
}

// NewFincra creates a Fincra client.
func NewFincra(cfg config.FincraConfig, client HTTPClient) *Fincra {
	return &Fincra{cfg: cfg, client: client}
}

type fincraCheckoutRequest struct {
	Amount         string         `json:"amount"`
	Currency       string         `json:"currency"`
	Reference      string         `json:"reference"`
	RedirectURL    string         `json:"redirectUrl,omitempty"`
	FeeBearer      string         `json:"feeBearer"`
	Metadata       fincraMetadata `json:"metadata"`
	Customer       fincraCustomer `json:"customer"`
	SuccessMessage string         `json:"successMessage"`
}

type fincraMetadata struct {
	UserID string `json:"userId"`
}

type fincraCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type fincraCheckoutResponse struct {
	Data struct {
		Link      string `json:"link"`
		Reference string `json:"reference"`
	} `json:"data"`
}

// InitiatePayment creates a hosted checkout and returns its link.
func (f *Fincra) InitiatePayment(ctx context.Context, form ports.PaymentForm) (*ports.PaymentLink, error) {
	req := fincraCheckoutRequest{
		Amount:         form.Amount.String(),
		Currency:       form.Currency,
		Reference:      form.Reference,
		RedirectURL:    form.RedirectURL,
		FeeBearer:      "business",
		Metadata:       fincraMetadata{UserID: form.UserID},
		Customer:       fincraCustomer{Name: form.CustomerName, Email: form.CustomerEmail},
		SuccessMessage: "Payment successful",
	}

	var resp fincraCheckoutResponse
	if err := doJSON(ctx, f.client, fincraName, http.MethodPost, f.url("/checkout-core/payments"), f.headers(), req, &resp); err != nil {
		return nil, err
	}
	if resp.Data.Link == "" {
		return nil, errors.New("fincra: checkout response has no link")
	}

	ref := resp.Data.Reference
	if ref == "" {
		ref = form.Reference
	}
	return &ports.PaymentLink{Provider: domain.PaymentProviderFincra, Link: resp.Data.Link, Reference: ref}, nil
}

type fincraPayoutRequest struct {
	Business            string            `json:"business"`
	SourceCurrency      string            `json:"sourceCurrency"`
	DestinationCurrency string            `json:"destinationCurrency"`
	Amount              string            `json:"amount"`
	Description         string            `json:"description"`
	PaymentDestination  string            `json:"paymentDestination"`
	CustomerReference   string            `json:"customerReference"`
	Beneficiary         fincraBeneficiary `json:"beneficiary"`
}

type fincraBeneficiary struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	AccountHolderName string `json:"accountHolderName"`
	Country           string `json:"country"`
	Phone             string `json:"phone,omitempty"`
	MobileMoneyCode   string `json:"mobileMoneyCode,omitempty"`
	AccountNumber     string `json:"accountNumber"`
	BankCode          string `json:"bankCode,omitempty"`
	Type              string `json:"type"`
	Email             string `json:"email,omitempty"`
}

type fincraPayoutResponse struct {
	Data struct {
		Reference         string `json:"reference"`
		CustomerReference string `json:"customerReference"`
	} `json:"data"`
}

// InitiatePayout sends fiat to a bank account or mobile money wallet.
func (f *Fincra) InitiatePayout(ctx context.Context, form ports.PayoutForm) (*ports.PayoutReceipt, error) {
	b := form.Beneficiary
	req := fincraPayoutRequest{
		Business:            f.cfg.BusinessID,
		SourceCurrency:      form.Currency,
		DestinationCurrency: form.Currency,
		Amount:              form.Amount.String(),
		Description:         form.Description,
		PaymentDestination:  string(form.Destination),
		CustomerReference:   form.Reference,
		Beneficiary: fincraBeneficiary{
			FirstName:         b.FirstName,
			LastName:          b.LastName,
			AccountHolderName: b.AccountHolderName,
			Country:           b.Country,
			Phone:             b.Phone,
			MobileMoneyCode:   b.MobileMoneyCode,
			AccountNumber:     b.AccountNumber,
			BankCode:          b.BankCode,
			Type:              "individual",
			Email:             b.Email,
		},
	}

	var resp fincraPayoutResponse
	if err := doJSON(ctx, f.client, fincraName, http.MethodPost, f.url("/disbursements/payouts"), f.headers(), req, &resp); err != nil {
		return nil, err
	}

	ref := resp.Data.Reference
	if ref == "" {
		ref = form.Reference
	}
	return &ports.PayoutReceipt{Provider: domain.PaymentProviderFincra, Reference: ref}, nil
}

func (f *Fincra) url(path string) string {
	return strings.TrimRight(f.cfg.APIURL, "/") + path
}

func (f *Fincra) headers() map[string]string {
	return map[string]string{
		"x-pub-key": f.cfg.PublicKey,
		"api-key":   f.cfg.SecretKey,
	}
}
