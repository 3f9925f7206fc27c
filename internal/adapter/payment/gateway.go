package payment

import (
	"context"

	"ramp-gateway/internal/core/ports"
)

// Gateway routes hosted checkouts and bank payouts to Fincra, and card
// charges and direct transfers to Paybox.
type Gateway struct {
	fincra *Fincra
	paybox *Paybox
}

var (
	_ ports.PaymentProvider = (*Gateway)(nil)
	_ ports.BankDirectory   = (*Gateway)(nil)
)

// NewGateway composes both providers.
func NewGateway(fincra *Fincra, paybox *Paybox) *Gateway {
	return &Gateway{fincra: fincra, paybox: paybox}
}

func (g *Gateway) InitiatePayment(ctx context.Context, form ports.PaymentForm) (*ports.PaymentLink, error) {
	return g.fincra.InitiatePayment(ctx, form)
}

func (g *Gateway) InitiatePayout(ctx context.Context, form ports.PayoutForm) (*ports.PayoutReceipt, error) {
	return g.fincra.InitiatePayout(ctx, form)
}

func (g *Gateway) ChargeCard(ctx context.Context, charge ports.CardCharge) (*ports.PaymentLink, error) {
	return g.paybox.ChargeCard(ctx, charge)
}

func (g *Gateway) Transfer(ctx context.Context, transfer ports.TransferRequest) (*ports.PayoutReceipt, error) {
	return g.paybox.Transfer(ctx, transfer)
}

func (g *Gateway) ListBanks(ctx context.Context) ([]ports.Bank, error) {
	return g.paybox.ListBanks(ctx)
}
