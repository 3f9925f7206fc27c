package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ramp-gateway/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// ErrAccountNotConfirmed is returned when a creation was sent but the
// account never showed up before the confirm timeout.
var ErrAccountNotConfirmed = errors.New("token account not confirmed")

// TokenAccountResolver finds or creates associated token accounts, paid
// for by the ledger authority.
type TokenAccountResolver struct {
	rpc            RPC
	group          singleflight.Group
	rpcTimeout     time.Duration
	confirmTimeout time.Duration
	pollInterval   time.Duration
	log            zerolog.Logger
}

// NewTokenAccountResolver creates a resolver.
func NewTokenAccountResolver(client RPC, rpcTimeout, confirmTimeout time.Duration, log zerolog.Logger) *TokenAccountResolver {
	return &TokenAccountResolver{
		rpc:            client,
		rpcTimeout:     rpcTimeout,
		confirmTimeout: confirmTimeout,
		pollInterval:   500 * time.Millisecond,
		log:            log,
	}
}

// Ensure returns the owner's token account for mint, creating it when
// absent. Concurrent calls for the same account share one creation.
func (r *TokenAccountResolver) Ensure(ctx context.Context, auth domain.LedgerAuthority, owner, mint solana.PublicKey) (solana.PublicKey, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive token account: %w", err)
	}

	_, err, shared := r.group.Do(ata.String(), func() (any, error) {
		return nil, r.ensure(ctx, auth, owner, mint, ata)
	})
	if err != nil {
		return solana.PublicKey{}, err
	}
	if shared {
		r.log.Debug().Str("account", ata.String()).Msg("Token account check shared with concurrent caller")
	}
	return ata, nil
}

func (r *TokenAccountResolver) ensure(ctx context.Context, auth domain.LedgerAuthority, owner, mint, ata solana.PublicKey) error {
	exists, err := r.exists(ctx, ata)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	const attempts = 2
	for attempt := 1; attempt <= attempts; attempt++ {
		err = r.create(ctx, auth, owner, mint, ata)
		if err == nil {
			return nil
		}
		r.log.Warn().Err(err).
			Str("account", ata.String()).
			Int("attempt", attempt).
			Msg("Token account creation failed")
	}
	return err
}

func (r *TokenAccountResolver) exists(ctx context.Context, account solana.PublicKey) (bool, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.rpcTimeout)
	defer cancel()

	_, err := r.rpc.GetAccountInfo(callCtx, account)
	if errors.Is(err, rpc.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get account info: %w", err)
	}
	return true, nil
}

func (r *TokenAccountResolver) create(ctx context.Context, auth domain.LedgerAuthority, owner, mint, ata solana.PublicKey) error {
	ix, err := associatedtokenaccount.NewCreateInstruction(auth.PublicKey(), owner, mint).ValidateAndBuild()
	if err != nil {
		return fmt.Errorf("build create instruction: %w", err)
	}

	tx, err := buildTransaction(ctx, r.rpc, r.rpcTimeout, auth.PublicKey(), ix)
	if err != nil {
		return err
	}
	key := auth.PrivateKey()
	if _, err := tx.Sign(func(pk solana.PublicKey) *solana.PrivateKey {
		if pk.Equals(key.PublicKey()) {
			return &key
		}
		return nil
	}); err != nil {
		return fmt.Errorf("sign create transaction: %w", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, r.rpcTimeout)
	sig, err := r.rpc.SendTransactionWithOpts(sendCtx, tx, rpc.TransactionOpts{
		SkipPreflight:       true,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	cancel()
	if err != nil {
		if strings.Contains(err.Error(), "already in use") {
			return nil
		}
		return fmt.Errorf("send create transaction: %w", err)
	}

	r.log.Info().
		Str("account", ata.String()).
		Str("owner", owner.String()).
		Str("signature", sig.String()).
		Msg("Token account creation sent")

	return r.waitForAccount(ctx, sig, ata)
}

func (r *TokenAccountResolver) waitForAccount(ctx context.Context, sig solana.Signature, ata solana.PublicKey) error {
	waitCtx, cancel := context.WithTimeout(ctx, r.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		confirmed, err := r.confirmed(waitCtx, sig)
		if err != nil {
			return err
		}
		if confirmed {
			exists, err := r.exists(waitCtx, ata)
			if err != nil {
				return err
			}
			if exists {
				return nil
			}
		}

		select {
		case <-waitCtx.Done():
			return fmt.Errorf("%w: %s", ErrAccountNotConfirmed, ata)
		case <-ticker.C:
		}
	}
}

func (r *TokenAccountResolver) confirmed(ctx context.Context, sig solana.Signature) (bool, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.rpcTimeout)
	defer cancel()

	out, err := r.rpc.GetSignatureStatuses(callCtx, true, sig)
	if err != nil {
		if ctx.Err() != nil {
			return false, nil
		}
		return false, fmt.Errorf("get signature status: %w", err)
	}
	if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		return false, nil
	}
	status := out.Value[0]
	if status.Err != nil {
		return false, fmt.Errorf("create transaction %s failed: %v", sig, status.Err)
	}
	return status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
		status.ConfirmationStatus == rpc.ConfirmationStatusFinalized, nil
}

func buildTransaction(ctx context.Context, client RPC, timeout time.Duration, payer solana.PublicKey, ixs ...solana.Instruction) (*solana.Transaction, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	bh, err := client.GetLatestBlockhash(callCtx, rpc.CommitmentConfirmed)
	if err != nil {
		return nil, fmt.Errorf("get latest blockhash: %w", err)
	}
	if bh == nil || bh.Value == nil {
		return nil, errors.New("get latest blockhash: empty response")
	}

	tx, err := solana.NewTransaction(ixs, bh.Value.Blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return nil, fmt.Errorf("new transaction: %w", err)
	}
	return tx, nil
}
