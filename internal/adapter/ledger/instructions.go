package ledger

import (
	"crypto/sha256"
	"fmt"

	"ramp-gateway/internal/core/domain"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Argument enums, in the order the program declares them.
const (
	tokenArgUSDC uint8 = 0
	tokenArgUSDT uint8 = 1

	fiatArgGHS uint8 = 0

	kindArgOnramp  uint8 = 0
	kindArgOfframp uint8 = 1
)

// discriminator is the 8-byte method selector Anchor prefixes to
// instruction data.
func discriminator(method string) [8]byte {
	sum := sha256.Sum256([]byte("global:" + method))
	var d [8]byte
	copy(d[:], sum[:8])
	return d
}

func instructionData(method string, args any) ([]byte, error) {
	d := discriminator(method)
	if args == nil {
		return d[:], nil
	}
	encoded, err := bin.MarshalBorsh(args)
	if err != nil {
		return nil, fmt.Errorf("encode %s args: %w", method, err)
	}
	return append(d[:], encoded...), nil
}

type newSwapArgs struct {
	SwapID string
}

type initiateSwapArgs struct {
	Token  uint8
	Amount uint64
	Fiat   uint8
	Kind   uint8
	SwapID string
}

type completeSwapArgs struct {
	Success    bool
	FiatAmount uint64
	SwapID     string
}

func (p Program) newUserInstruction(admin, wallet, userAccount solana.PublicKey) (solana.Instruction, error) {
	data, err := instructionData("new_user", nil)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(p.ID, solana.AccountMetaSlice{
		solana.Meta(admin).SIGNER(),
		solana.Meta(userAccount).WRITE(),
		solana.Meta(wallet).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

func (p Program) newSwapInstruction(admin, wallet, userAccount, swapAccount solana.PublicKey, swapID string) (solana.Instruction, error) {
	data, err := instructionData("new_swap", &newSwapArgs{SwapID: swapID})
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(p.ID, solana.AccountMetaSlice{
		solana.Meta(admin).SIGNER(),
		solana.Meta(userAccount).WRITE(),
		solana.Meta(swapAccount).WRITE(),
		solana.Meta(wallet).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

type initiateSwapAccounts struct {
	Admin       solana.PublicKey
	Signer      solana.PublicKey
	SignerUSDC  solana.PublicKey
	SignerUSDT  solana.PublicKey
	UserAccount solana.PublicKey
	SwapAccount solana.PublicKey
	USDCVault   solana.PublicKey
	USDTVault   solana.PublicKey
}

func (p Program) initiateSwapInstruction(acc initiateSwapAccounts, args initiateSwapArgs) (solana.Instruction, error) {
	data, err := instructionData("initiate_swap", &args)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(p.ID, solana.AccountMetaSlice{
		solana.Meta(acc.Admin).SIGNER(),
		solana.Meta(acc.Signer).WRITE().SIGNER(),
		solana.Meta(acc.SignerUSDC).WRITE(),
		solana.Meta(acc.SignerUSDT).WRITE(),
		solana.Meta(acc.UserAccount).WRITE(),
		solana.Meta(acc.SwapAccount).WRITE(),
		solana.Meta(p.USDCMint),
		solana.Meta(p.USDTMint),
		solana.Meta(acc.USDCVault).WRITE(),
		solana.Meta(acc.USDTVault).WRITE(),
		solana.Meta(solana.SysVarClockPubkey),
		solana.Meta(solana.TokenProgramID),
	}, data), nil
}

func (p Program) completeSwapInstruction(admin, wallet, userAccount, swapAccount solana.PublicKey, args completeSwapArgs) (solana.Instruction, error) {
	data, err := instructionData("complete_swap", &args)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(p.ID, solana.AccountMetaSlice{
		solana.Meta(admin).SIGNER(),
		solana.Meta(wallet).WRITE().SIGNER(),
		solana.Meta(userAccount).WRITE(),
		solana.Meta(swapAccount).WRITE(),
		solana.Meta(solana.SysVarClockPubkey),
	}, data), nil
}

func tokenArg(t domain.Token) (uint8, error) {
	switch t {
	case domain.TokenUSDC:
		return tokenArgUSDC, nil
	case domain.TokenUSDT:
		return tokenArgUSDT, nil
	default:
		return 0, fmt.Errorf("unsupported token %q", t)
	}
}

func kindArg(k domain.TransactionKind) (uint8, error) {
	switch k {
	case domain.TransactionKindOnramp:
		return kindArgOnramp, nil
	case domain.TransactionKindOfframp:
		return kindArgOfframp, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind %q", k)
	}
}
