package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"ramp-gateway/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/require"
)

type fakeRPC struct {
	mu sync.Mutex

	accounts  map[solana.PublicKey]bool
	blockhash solana.Hash
	sent      []*solana.Transaction

	sendErrs     []error
	sendDelay    time.Duration
	dropCreates  bool
	statusErr    any
	blockhashErr error
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{
		accounts:  make(map[solana.PublicKey]bool),
		blockhash: solana.Hash{1, 2, 3},
	}
}

func (f *fakeRPC) GetAccountInfo(_ context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.accounts[account] {
		return nil, rpc.ErrNotFound
	}
	return &rpc.GetAccountInfoResult{Value: &rpc.Account{Owner: solana.TokenProgramID}}, nil
}

func (f *fakeRPC) GetLatestBlockhash(context.Context, rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	if f.blockhashErr != nil {
		return nil, f.blockhashErr
	}
	return &rpc.GetLatestBlockhashResult{Value: &rpc.LatestBlockhashResult{Blockhash: f.blockhash}}, nil
}

func (f *fakeRPC) SendTransactionWithOpts(_ context.Context, tx *solana.Transaction, _ rpc.TransactionOpts) (solana.Signature, error) {
	if f.sendDelay > 0 {
		time.Sleep(f.sendDelay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, tx)
	if len(f.sendErrs) > 0 {
		err := f.sendErrs[0]
		f.sendErrs = f.sendErrs[1:]
		if err != nil {
			return solana.Signature{}, err
		}
	}

	if !f.dropCreates {
		// the created token account is the second account of the create instruction
		for _, ix := range tx.Message.Instructions {
			f.accounts[tx.Message.AccountKeys[ix.Accounts[1]]] = true
		}
	}
	return solana.Signature{byte(len(f.sent))}, nil
}

func (f *fakeRPC) GetSignatureStatuses(_ context.Context, _ bool, sigs ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	out := &rpc.GetSignatureStatusesResult{}
	for range sigs {
		out.Value = append(out.Value, &rpc.SignatureStatusesResult{
			ConfirmationStatus: rpc.ConfirmationStatusConfirmed,
			Err:                f.statusErr,
		})
	}
	return out, nil
}

func (f *fakeRPC) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeRPC) markExisting(keys ...solana.PublicKey) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		f.accounts[k] = true
	}
}

func newTestAuthority(t *testing.T) domain.LedgerAuthority {
	t.Helper()
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	auth, err := domain.NewLedgerAuthority(key)
	require.NoError(t, err)
	return auth
}

func newTestProgram() Program {
	return Program{
		ID:       solana.NewWallet().PublicKey(),
		USDCMint: solana.NewWallet().PublicKey(),
		USDTMint: solana.NewWallet().PublicKey(),
	}
}
