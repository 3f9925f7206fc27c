package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// RPC is the subset of the Solana JSON-RPC client the gateway uses.
// *rpc.Client satisfies it.
type RPC interface {
	GetAccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error)
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, sigs ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

var _ RPC = (*rpc.Client)(nil)

// NewClient dials nothing; solana-go opens connections lazily.
func NewClient(endpoint string) *rpc.Client {
	return rpc.New(endpoint)
}

// HealthProber is satisfied by *rpc.Client.
type HealthProber interface {
	GetHealth(ctx context.Context) (string, error)
}

// HealthCheck implements ports.HealthChecker for the Solana RPC node. A node
// that answers but is behind the cluster reports its status string as the error.
type HealthCheck struct {
	rpc     HealthProber
	timeout time.Duration
}

// NewHealthCheck bounds each health call to the RPC node by timeout.
func NewHealthCheck(prober HealthProber, timeout time.Duration) *HealthCheck {
	return &HealthCheck{rpc: prober, timeout: timeout}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	status, err := h.rpc.GetHealth(ctx)
	if err != nil {
		return err
	}
	if status != "ok" {
		return fmt.Errorf("rpc node status %q", status)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "solana-rpc"
}
