package ledger

import (
	"fmt"

	"ramp-gateway/internal/core/domain"

	"github.com/gagliardetto/solana-go"
)

const (
	seedUserAccount = "user-account"
	seedSwapAccount = "swap-account"
	seedUSDCVault   = "usdc-vault"
	seedUSDTVault   = "usdt-vault"
)

// Program holds the on-chain program id and the stablecoin mints it trades.
type Program struct {
	ID       solana.PublicKey
	USDCMint solana.PublicKey
	USDTMint solana.PublicKey
}

// NewProgram parses base58 addresses.
func NewProgram(programID, usdcMint, usdtMint string) (Program, error) {
	id, err := solana.PublicKeyFromBase58(programID)
	if err != nil {
		return Program{}, fmt.Errorf("parse program id: %w", err)
	}
	usdc, err := solana.PublicKeyFromBase58(usdcMint)
	if err != nil {
		return Program{}, fmt.Errorf("parse usdc mint: %w", err)
	}
	usdt, err := solana.PublicKeyFromBase58(usdtMint)
	if err != nil {
		return Program{}, fmt.Errorf("parse usdt mint: %w", err)
	}
	return Program{ID: id, USDCMint: usdc, USDTMint: usdt}, nil
}

// UserAccount derives the per-wallet program account.
func (p Program) UserAccount(wallet solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress([][]byte{
		[]byte(seedUserAccount),
		wallet.Bytes(),
	}, p.ID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive user account: %w", err)
	}
	return addr, nil
}

// SwapAccount derives the account recording one swap.
func (p Program) SwapAccount(wallet solana.PublicKey, swapID string) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress([][]byte{
		[]byte(seedSwapAccount),
		wallet.Bytes(),
		[]byte(swapID),
	}, p.ID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive swap account: %w", err)
	}
	return addr, nil
}

// Vaults derives the program's USDC and USDT vaults.
func (p Program) Vaults() (usdc, usdt solana.PublicKey, err error) {
	usdc, _, err = solana.FindProgramAddress([][]byte{[]byte(seedUSDCVault), p.USDCMint.Bytes()}, p.ID)
	if err != nil {
		return usdc, usdt, fmt.Errorf("derive usdc vault: %w", err)
	}
	usdt, _, err = solana.FindProgramAddress([][]byte{[]byte(seedUSDTVault), p.USDTMint.Bytes()}, p.ID)
	if err != nil {
		return usdc, usdt, fmt.Errorf("derive usdt vault: %w", err)
	}
	return usdc, usdt, nil
}

// Mint returns the mint of a supported token.
func (p Program) Mint(token domain.Token) (solana.PublicKey, error) {
	switch token {
	case domain.TokenUSDC:
		return p.USDCMint, nil
	case domain.TokenUSDT:
		return p.USDTMint, nil
	default:
		return solana.PublicKey{}, fmt.Errorf("unsupported token %q", token)
	}
}

// Mints lists every supported mint.
func (p Program) Mints() []solana.PublicKey {
	return []solana.PublicKey{p.USDCMint, p.USDTMint}
}
