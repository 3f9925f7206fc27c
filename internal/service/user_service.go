package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"
	"ramp-gateway/pkg/apperror"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type userService struct {
	userRepo ports.UserRepository
	log      zerolog.Logger
}

// NewUserService creates the user collaborator service.
func NewUserService(userRepo ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{userRepo: userRepo, log: log}
}

func (s *userService) Signup(ctx context.Context, req ports.SignupRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" {
		return nil, apperror.Validation("username and email are required")
	}

	var wallet *string
	if req.WalletAddress != nil && strings.TrimSpace(*req.WalletAddress) != "" {
		addr, err := parseWallet(*req.WalletAddress)
		if err != nil {
			return nil, err
		}
		wallet = &addr
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.New(),
		Username:       username,
		Email:          strings.ToLower(email),
		WalletAddress:  wallet,
		KYCFields:      req.KYCFields,
		PaymentDetails: req.PaymentDetails,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create user: %w", err))
	}

	s.log.Info().
		Str("user_id", user.ID.String()).
		Bool("wallet_linked", user.HasWallet()).
		Msg("user signed up")
	return user, nil
}

func (s *userService) LinkWallet(ctx context.Context, id uuid.UUID, walletAddress string) (*domain.User, error) {
	addr, err := parseWallet(walletAddress)
	if err != nil {
		return nil, err
	}

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.LinkWallet(ctx, id, addr); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("link wallet: %w", err))
	}
	user.WalletAddress = &addr
	user.UpdatedAt = time.Now().UTC()

	s.log.Info().
		Str("user_id", id.String()).
		Str("wallet", addr).
		Msg("wallet linked")
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}
	return user, nil
}

// parseWallet returns the canonical base58 form of a ledger address.
func parseWallet(raw string) (string, error) {
	pk, err := solana.PublicKeyFromBase58(strings.TrimSpace(raw))
	if err != nil {
		return "", apperror.Validation("wallet_address is not a valid address")
	}
	return pk.String(), nil
}
