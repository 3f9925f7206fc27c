package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ramp-gateway/config"
	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"
	"ramp-gateway/pkg/apperror"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Gateway builds the program's transactions, co-signed by the ledger
// authority and left for the user's wallet to complete.
type Gateway struct {
	rpc        RPC
	program    Program
	accounts   *TokenAccountResolver
	decimals   int32
	rpcTimeout time.Duration
	log        zerolog.Logger
}

var _ ports.LedgerGateway = (*Gateway)(nil)

// NewGateway creates a ledger gateway from config.
func NewGateway(client RPC, cfg config.LedgerConfig, log zerolog.Logger) (*Gateway, error) {
	program, err := NewProgram(cfg.ProgramID, cfg.USDCMint, cfg.USDTMint)
	if err != nil {
		return nil, err
	}
	return &Gateway{
		rpc:        client,
		program:    program,
		accounts:   NewTokenAccountResolver(client, cfg.RPCTimeout, cfg.ConfirmTimeout, log),
		decimals:   cfg.TokenDecimals,
		rpcTimeout: cfg.RPCTimeout,
		log:        log,
	}, nil
}

// UserAccountExists reports whether the wallet's program account is on chain.
func (g *Gateway) UserAccountExists(ctx context.Context, wallet solana.PublicKey) (bool, error) {
	addr, err := g.program.UserAccount(wallet)
	if err != nil {
		return false, err
	}

	callCtx, cancel := context.WithTimeout(ctx, g.rpcTimeout)
	defer cancel()

	_, err = g.rpc.GetAccountInfo(callCtx, addr)
	if errors.Is(err, rpc.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get user account: %w", err)
	}
	return true, nil
}

// SwapAccountAddress derives the swap account for a wallet and swap id.
func (g *Gateway) SwapAccountAddress(wallet solana.PublicKey, swapID string) (solana.PublicKey, error) {
	return g.program.SwapAccount(wallet, swapID)
}

// NewUserTx opens the wallet's program account.
func (g *Gateway) NewUserTx(ctx context.Context, auth domain.LedgerAuthority, wallet solana.PublicKey) (string, error) {
	userAccount, err := g.program.UserAccount(wallet)
	if err != nil {
		return "", err
	}
	ix, err := g.program.newUserInstruction(auth.PublicKey(), wallet, userAccount)
	if err != nil {
		return "", err
	}
	return g.partiallySigned(ctx, auth, wallet, ix)
}

// NewSwapTx opens a swap account, optionally preceded by the user account.
func (g *Gateway) NewSwapTx(ctx context.Context, auth domain.LedgerAuthority, wallet solana.PublicKey, swapID string, withUser bool) (string, error) {
	userAccount, err := g.program.UserAccount(wallet)
	if err != nil {
		return "", err
	}
	swapAccount, err := g.program.SwapAccount(wallet, swapID)
	if err != nil {
		return "", err
	}

	var ixs []solana.Instruction
	if withUser {
		ix, err := g.program.newUserInstruction(auth.PublicKey(), wallet, userAccount)
		if err != nil {
			return "", err
		}
		ixs = append(ixs, ix)
	}
	ix, err := g.program.newSwapInstruction(auth.PublicKey(), wallet, userAccount, swapAccount, swapID)
	if err != nil {
		return "", err
	}
	ixs = append(ixs, ix)

	return g.partiallySigned(ctx, auth, wallet, ixs...)
}

// InitiateSwapTx moves tokens between the signer and the program vaults.
func (g *Gateway) InitiateSwapTx(ctx context.Context, auth domain.LedgerAuthority, req ports.InitiateSwap) (string, error) {
	token, err := tokenArg(req.Token)
	if err != nil {
		return "", err
	}
	kind, err := kindArg(req.Kind)
	if err != nil {
		return "", err
	}
	amount, err := BaseUnits(req.Amount, g.decimals)
	if err != nil {
		return "", err
	}

	userAccount, err := g.program.UserAccount(req.UserWallet)
	if err != nil {
		return "", err
	}
	swapAccount, err := g.program.SwapAccount(req.UserWallet, req.SwapID)
	if err != nil {
		return "", err
	}
	usdcVault, usdtVault, err := g.program.Vaults()
	if err != nil {
		return "", err
	}

	ix, err := g.program.initiateSwapInstruction(initiateSwapAccounts{
		Admin:       auth.PublicKey(),
		Signer:      req.Signer,
		SignerUSDC:  req.Accounts.USDC,
		SignerUSDT:  req.Accounts.USDT,
		UserAccount: userAccount,
		SwapAccount: swapAccount,
		USDCVault:   usdcVault,
		USDTVault:   usdtVault,
	}, initiateSwapArgs{
		Token:  token,
		Amount: amount,
		Fiat:   fiatArgGHS,
		Kind:   kind,
		SwapID: req.SwapID,
	})
	if err != nil {
		return "", err
	}
	return g.partiallySigned(ctx, auth, req.Signer, ix)
}

// CompleteSwapTx marks the swap finished on chain.
func (g *Gateway) CompleteSwapTx(ctx context.Context, auth domain.LedgerAuthority, req ports.CompleteSwap) (string, error) {
	fiat, err := BaseUnits(req.FiatAmount, 0)
	if err != nil {
		return "", err
	}
	userAccount, err := g.program.UserAccount(req.UserWallet)
	if err != nil {
		return "", err
	}
	swapAccount, err := g.program.SwapAccount(req.UserWallet, req.SwapID)
	if err != nil {
		return "", err
	}

	ix, err := g.program.completeSwapInstruction(auth.PublicKey(), req.UserWallet, userAccount, swapAccount, completeSwapArgs{
		Success:    true,
		FiatAmount: fiat,
		SwapID:     req.SwapID,
	})
	if err != nil {
		return "", err
	}
	return g.partiallySigned(ctx, auth, req.UserWallet, ix)
}

// EnsureTokenAccounts creates any missing token accounts for the authority
// and owner across both mints, in parallel.
func (g *Gateway) EnsureTokenAccounts(ctx context.Context, auth domain.LedgerAuthority, owner solana.PublicKey) (*ports.TokenAccounts, error) {
	var out ports.TokenAccounts
	eg, egCtx := errgroup.WithContext(ctx)

	for _, holder := range []solana.PublicKey{auth.PublicKey(), owner} {
		for _, mint := range g.program.Mints() {
			eg.Go(func() error {
				ata, err := g.accounts.Ensure(egCtx, auth, holder, mint)
				if err != nil {
					return err
				}
				if holder.Equals(owner) {
					// each goroutine writes a distinct field
					if mint.Equals(g.program.USDCMint) {
						out.USDC = ata
					} else {
						out.USDT = ata
					}
				}
				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, apperror.ErrTokenAccountCreationFailed(err)
	}
	return &out, nil
}

func (g *Gateway) partiallySigned(ctx context.Context, auth domain.LedgerAuthority, feePayer solana.PublicKey, ixs ...solana.Instruction) (string, error) {
	tx, err := buildTransaction(ctx, g.rpc, g.rpcTimeout, feePayer, ixs...)
	if err != nil {
		return "", err
	}

	key := auth.PrivateKey()
	if _, err := tx.PartialSign(func(pk solana.PublicKey) *solana.PrivateKey {
		if pk.Equals(key.PublicKey()) {
			return &key
		}
		return nil
	}); err != nil {
		return "", fmt.Errorf("partial sign: %w", err)
	}

	encoded, err := tx.ToBase64()
	if err != nil {
		return "", fmt.Errorf("serialize transaction: %w", err)
	}
	return encoded, nil
}

// BaseUnits converts a whole-unit amount into the integer the program
// expects, truncating anything below the smallest unit.
func BaseUnits(amount decimal.Decimal, decimals int32) (uint64, error) {
	units := amount.Shift(decimals).Truncate(0)
	if !units.IsPositive() {
		return 0, fmt.Errorf("amount %s is not positive", amount)
	}
	n := units.BigInt()
	if !n.IsUint64() {
		return 0, fmt.Errorf("amount %s overflows u64", amount)
	}
	return n.Uint64(), nil
}
