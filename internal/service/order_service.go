package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"
	"ramp-gateway/pkg/apperror"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// minFiatAmount is one whole fiat unit. The swap is closed on chain with the
// fiat amount in whole units, so anything smaller cannot complete.
var minFiatAmount = decimal.NewFromInt(1)

// OrderServiceImpl implements ports.OrderService. Every status change is a
// compare-and-swap on the stored status, so concurrent requests for the
// same transaction cannot both win.
type OrderServiceImpl struct {
	txRepo     ports.TransactionRepository
	userRepo   ports.UserRepository
	ledger     ports.LedgerGateway
	payments   ports.PaymentProvider
	notifier   ports.Notifier
	transactor ports.DBTransactor
	authority  domain.LedgerAuthority
	clientURL  string
	log        zerolog.Logger
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(
	txRepo ports.TransactionRepository,
	userRepo ports.UserRepository,
	ledger ports.LedgerGateway,
	payments ports.PaymentProvider,
	notifier ports.Notifier,
	transactor ports.DBTransactor,
	authority domain.LedgerAuthority,
	clientURL string,
	log zerolog.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		txRepo:     txRepo,
		userRepo:   userRepo,
		ledger:     ledger,
		payments:   payments,
		notifier:   notifier,
		transactor: transactor,
		authority:  authority,
		clientURL:  clientURL,
		log:        log,
	}
}

// Create validates the order, prepares the swap account transaction and
// stores the record as INITIATED.
func (s *OrderServiceImpl) Create(ctx context.Context, req ports.CreateOrderRequest) (*ports.CreateOrderResult, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	user, wallet, err := s.userWallet(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	swapID := domain.SwapIDFor(id)

	exists, err := s.ledger.UserAccountExists(ctx, wallet)
	if err != nil {
		return nil, ledgerError(err)
	}
	serialized, err := s.ledger.NewSwapTx(ctx, s.authority, wallet, swapID, !exists)
	if err != nil {
		return nil, ledgerError(err)
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:          id,
		UserID:      user.ID,
		Kind:        req.Kind,
		Status:      domain.TransactionStatusInitiated,
		Token:       req.Token,
		Fiat:        strings.ToUpper(req.Fiat),
		Country:     strings.ToUpper(req.Country),
		FiatAmount:  req.FiatAmount,
		TokenAmount: req.TokenAmount,
		FiatRate:    req.FiatRate,
		TokenRate:   req.TokenRate,
		PayoutInfo:  req.PayoutInfo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.txRepo.Create(ctx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("user_id", user.ID.String()).
		Str("kind", string(txn.Kind)).
		Bool("new_user_account", !exists).
		Msg("transaction created")

	return &ports.CreateOrderResult{Transaction: txn, SerializedTransaction: serialized}, nil
}

func validateCreate(req ports.CreateOrderRequest) error {
	if !req.Kind.IsValid() {
		return apperror.Validation("kind must be ONRAMP or OFFRAMP")
	}
	if !req.Token.IsSupported() {
		return apperror.ErrUnsupportedToken()
	}
	if !req.FiatAmount.IsPositive() || !req.TokenAmount.IsPositive() {
		return apperror.Validation("amounts must be positive")
	}
	if req.FiatAmount.LessThan(minFiatAmount) {
		return apperror.Validation("fiat_amount must be at least 1")
	}
	if !req.FiatRate.IsPositive() || !req.TokenRate.IsPositive() {
		return apperror.Validation("rates must be positive")
	}
	if strings.TrimSpace(req.Fiat) == "" {
		return apperror.Validation("fiat is required")
	}
	if err := req.PayoutInfo.Validate(); err != nil {
		return apperror.ErrInvalidPayout(err.Error())
	}
	if !req.PayoutInfo.FitsKind(req.Kind) {
		return apperror.ErrInvalidPayout(fmt.Sprintf("payout method %s cannot serve %s", req.PayoutInfo.Method, req.Kind))
	}
	return nil
}

// Debit moves INITIATED to DEBITING and starts collecting from the user:
// a fiat charge for ONRAMP, a token transfer into the vault for OFFRAMP.
func (s *OrderServiceImpl) Debit(ctx context.Context, req ports.DebitRequest) (*ports.DebitResult, error) {
	txn, err := s.loadOwned(ctx, req.UserID, req.TxID)
	if err != nil {
		return nil, err
	}
	if !txn.Status.CanTransitionTo(domain.TransactionStatusDebiting) {
		return nil, apperror.ErrInvalidStateTransition(string(txn.Status), string(domain.TransactionStatusDebiting))
	}
	if !txn.Token.IsSupported() {
		return nil, apperror.ErrUnsupportedToken()
	}

	user, wallet, err := s.userWallet(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	update := domain.StatusUpdate{}
	if req.BlockchainTxID != "" {
		update.TransactionHash = &req.BlockchainTxID
	}
	txn, err = s.transition(ctx, txn, domain.TransactionStatusDebiting, update)
	if err != nil {
		return nil, err
	}

	switch txn.Kind {
	case domain.TransactionKindOnramp:
		link, err := s.collectFiat(ctx, txn, user, req.Card)
		if err != nil {
			s.log.Error().Err(err).Str("tx_id", txn.ID.String()).Msg("payment initiation failed")
			return nil, apperror.ErrPaymentInitiationFailed(err)
		}
		s.recordReference(ctx, txn, link.Provider, link.Reference)
		return &ports.DebitResult{Transaction: txn, PaymentLink: link.Link}, nil

	default:
		accounts, err := s.ledger.EnsureTokenAccounts(ctx, s.authority, wallet)
		if err != nil {
			return nil, ledgerError(err)
		}
		serialized, err := s.ledger.InitiateSwapTx(ctx, s.authority, ports.InitiateSwap{
			UserWallet: wallet,
			Signer:     wallet,
			Accounts:   *accounts,
			Token:      txn.Token,
			Amount:     txn.TokenAmount,
			Kind:       domain.TransactionKindOfframp,
			SwapID:     txn.SwapID(),
		})
		if err != nil {
			return nil, ledgerError(err)
		}
		return &ports.DebitResult{Transaction: txn, SerializedTransaction: serialized}, nil
	}
}

func (s *OrderServiceImpl) collectFiat(ctx context.Context, txn *domain.Transaction, user *domain.User, card *ports.CardDetails) (*ports.PaymentLink, error) {
	if card != nil {
		return s.payments.ChargeCard(ctx, ports.CardCharge{
			OrderID:  txn.ID.String(),
			Currency: txn.Fiat,
			Amount:   txn.FiatAmount,
			Card:     *card,
		})
	}
	return s.payments.InitiatePayment(ctx, ports.PaymentForm{
		Amount:        txn.FiatAmount,
		Currency:      txn.Fiat,
		Reference:     txn.ID.String(),
		RedirectURL:   s.clientURL,
		UserID:        user.ID.String(),
		CustomerName:  user.Username,
		CustomerEmail: user.Email,
	})
}

// Credit moves DEBITED to SETTLING and starts paying the user out: tokens
// to the payout wallet for ONRAMP, fiat to mobile money or a bank for OFFRAMP.
func (s *OrderServiceImpl) Credit(ctx context.Context, userID, txID uuid.UUID) (*ports.CreditResult, error) {
	txn, err := s.loadOwned(ctx, userID, txID)
	if err != nil {
		return nil, err
	}
	if !txn.Status.CanTransitionTo(domain.TransactionStatusSettling) {
		return nil, apperror.ErrInvalidStateTransition(string(txn.Status), string(domain.TransactionStatusSettling))
	}
	if err := txn.PayoutInfo.Validate(); err != nil {
		return nil, apperror.ErrInvalidPayout(err.Error())
	}
	if !txn.PayoutInfo.FitsKind(txn.Kind) {
		return nil, apperror.ErrInvalidPayout(fmt.Sprintf("payout method %s cannot serve %s", txn.PayoutInfo.Method, txn.Kind))
	}

	user, wallet, err := s.userWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	txn, err = s.transition(ctx, txn, domain.TransactionStatusSettling, domain.StatusUpdate{})
	if err != nil {
		return nil, err
	}

	if txn.Kind == domain.TransactionKindOnramp {
		// Validate guarantees a parseable address.
		payoutWallet := solana.MustPublicKeyFromBase58(txn.PayoutInfo.Wallet.WalletAddress)

		accounts, err := s.ledger.EnsureTokenAccounts(ctx, s.authority, payoutWallet)
		if err != nil {
			return nil, ledgerError(err)
		}
		serialized, err := s.ledger.InitiateSwapTx(ctx, s.authority, ports.InitiateSwap{
			UserWallet: wallet,
			Signer:     payoutWallet,
			Accounts:   *accounts,
			Token:      txn.Token,
			Amount:     txn.TokenAmount,
			Kind:       domain.TransactionKindOnramp,
			SwapID:     txn.SwapID(),
		})
		if err != nil {
			return nil, ledgerError(err)
		}
		return &ports.CreditResult{Transaction: txn, SerializedTransaction: serialized}, nil
	}

	receipt, err := s.payOut(ctx, txn, user)
	if err != nil {
		s.log.Error().Err(err).Str("tx_id", txn.ID.String()).Msg("payout failed")
		return nil, apperror.ErrPayoutFailed(err)
	}
	s.recordReference(ctx, txn, receipt.Provider, receipt.Reference)

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("provider", string(receipt.Provider)).
		Msg("payout initiated")

	return &ports.CreditResult{Transaction: txn, PayoutReference: receipt.Reference}, nil
}

func (s *OrderServiceImpl) payOut(ctx context.Context, txn *domain.Transaction, user *domain.User) (*ports.PayoutReceipt, error) {
	switch txn.PayoutInfo.Method {
	case domain.PayoutMethodMobileMoney:
		m := txn.PayoutInfo.MobileMoney
		return s.payments.Transfer(ctx, ports.TransferRequest{
			OrderID:       txn.ID.String(),
			Currency:      txn.Fiat,
			Amount:        txn.FiatAmount,
			MobileNetwork: m.Network,
			MobileNumber:  m.Number,
		})
	case domain.PayoutMethodBank:
		b := txn.PayoutInfo.Bank
		first, last := domain.SplitName(b.AccountName)
		return s.payments.InitiatePayout(ctx, ports.PayoutForm{
			Amount:      txn.FiatAmount,
			Currency:    txn.Fiat,
			Reference:   txn.ID.String(),
			Description: "Payout",
			Destination: ports.PayoutDestinationBank,
			Beneficiary: ports.Beneficiary{
				FirstName:         first,
				LastName:          last,
				AccountHolderName: b.AccountName,
				Country:           txn.Country,
				Email:             user.Email,
				AccountNumber:     b.AccountNumber,
				BankCode:          b.BankCode,
			},
		})
	default:
		return nil, fmt.Errorf("no fiat payout for method %s", txn.PayoutInfo.Method)
	}
}

// Complete returns the transaction that closes the swap on chain.
func (s *OrderServiceImpl) Complete(ctx context.Context, userID, txID uuid.UUID) (*ports.LedgerTxResult, error) {
	txn, err := s.loadOwned(ctx, userID, txID)
	if err != nil {
		return nil, err
	}
	if txn.Status != domain.TransactionStatusSettled {
		return nil, apperror.ErrInvalidStateTransition(string(txn.Status), "COMPLETE")
	}

	_, wallet, err := s.userWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	serialized, err := s.ledger.CompleteSwapTx(ctx, s.authority, ports.CompleteSwap{
		UserWallet: wallet,
		FiatAmount: txn.FiatAmount,
		SwapID:     txn.SwapID(),
	})
	if err != nil {
		return nil, ledgerError(err)
	}
	return &ports.LedgerTxResult{SerializedTransaction: serialized}, nil
}

// UpdateStatus is the administrative override. It sets any valid status
// regardless of the transition graph, under a row lock.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, txID, userID uuid.UUID, status string) (*domain.Transaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn, err := s.txRepo.GetByIDForUpdate(ctx, dbTx, txID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("Transaction")
	}
	if !txn.BelongsTo(userID) {
		s.warnOwnership(txn, userID)
		return nil, apperror.ErrOwnershipMismatch()
	}

	next, ok := domain.ParseTransactionStatus(status)
	if !ok {
		return nil, apperror.ErrInvalidStatus()
	}

	if err := s.txRepo.UpdateStatus(ctx, dbTx, txID, next); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update status: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	previous := txn.Status
	txn.Status = next
	txn.UpdatedAt = time.Now().UTC()

	s.log.Warn().
		Str("tx_id", txn.ID.String()).
		Str("user_id", userID.String()).
		Str("from", string(previous)).
		Str("to", string(next)).
		Msg("transaction status overridden")

	s.notify(ctx, txn)
	return txn, nil
}

// Fail moves a non-terminal transaction to FAILED.
func (s *OrderServiceImpl) Fail(ctx context.Context, txID, userID uuid.UUID, reason string) (*domain.Transaction, error) {
	txn, err := s.loadOwned(ctx, userID, txID)
	if err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "unspecified"
	}
	txn, err = s.transition(ctx, txn, domain.TransactionStatusFailed, domain.StatusUpdate{ErrorReason: &reason})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("reason", reason).
		Msg("transaction failed")
	return txn, nil
}

// GetByID returns a transaction.
func (s *OrderServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	txn, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("Transaction")
	}
	return txn, nil
}

// ListByUser returns the user's transactions, newest first.
func (s *OrderServiceImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}

	txns, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

// NewUserAccountTx returns the transaction opening the user's program account.
func (s *OrderServiceImpl) NewUserAccountTx(ctx context.Context, userID uuid.UUID) (*ports.LedgerTxResult, error) {
	_, wallet, err := s.userWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	serialized, err := s.ledger.NewUserTx(ctx, s.authority, wallet)
	if err != nil {
		return nil, ledgerError(err)
	}
	return &ports.LedgerTxResult{SerializedTransaction: serialized}, nil
}

// --- helpers ---

func (s *OrderServiceImpl) loadOwned(ctx context.Context, userID, txID uuid.UUID) (*domain.Transaction, error) {
	txn, err := s.txRepo.GetByID(ctx, txID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("Transaction")
	}
	if !txn.BelongsTo(userID) {
		s.warnOwnership(txn, userID)
		return nil, apperror.ErrOwnershipMismatch()
	}
	return txn, nil
}

func (s *OrderServiceImpl) warnOwnership(txn *domain.Transaction, userID uuid.UUID) {
	s.log.Warn().
		Str("tx_id", txn.ID.String()).
		Str("user_id", userID.String()).
		Str("owner_id", txn.UserID.String()).
		Msg("transaction accessed by non-owner")
}

func (s *OrderServiceImpl) userWallet(ctx context.Context, userID uuid.UUID) (*domain.User, solana.PublicKey, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, solana.PublicKey{}, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return nil, solana.PublicKey{}, apperror.ErrNotFound("User")
	}
	if !user.HasWallet() {
		return nil, solana.PublicKey{}, apperror.ErrWalletNotLinked()
	}
	wallet, err := solana.PublicKeyFromBase58(*user.WalletAddress)
	if err != nil {
		return nil, solana.PublicKey{}, apperror.InternalError(fmt.Errorf("stored wallet address: %w", err))
	}
	return user, wallet, nil
}

// transition applies a guarded status change. The record is untouched
// when the step is illegal or another request changed it first.
func (s *OrderServiceImpl) transition(ctx context.Context, txn *domain.Transaction, next domain.TransactionStatus, update domain.StatusUpdate) (*domain.Transaction, error) {
	if !txn.Status.CanTransitionTo(next) {
		return nil, apperror.ErrInvalidStateTransition(string(txn.Status), string(next))
	}

	update.Status = next
	updated, err := s.txRepo.CompareAndSetStatus(ctx, txn.ID, txn.Status, update)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update status: %w", err))
	}
	if updated == nil {
		s.log.Warn().
			Str("tx_id", txn.ID.String()).
			Str("expected", string(txn.Status)).
			Str("next", string(next)).
			Msg("status changed concurrently")
		return nil, apperror.ErrConcurrentModification()
	}

	s.notify(ctx, updated)
	return updated, nil
}

func (s *OrderServiceImpl) recordReference(ctx context.Context, txn *domain.Transaction, provider domain.PaymentProvider, reference string) {
	if err := s.txRepo.SetPaymentReference(ctx, txn.ID, provider, reference); err != nil {
		s.log.Error().Err(err).
			Str("tx_id", txn.ID.String()).
			Str("provider", string(provider)).
			Str("reference", reference).
			Msg("failed to record payment reference")
		return
	}
	txn.PaymentProvider = &provider
	txn.FiatTransactionID = &reference
}

func (s *OrderServiceImpl) notify(ctx context.Context, txn *domain.Transaction) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, domain.NewStatusEvent(txn)); err != nil {
		s.log.Warn().Err(err).Str("tx_id", txn.ID.String()).Msg("status notification failed")
	}
}

// ledgerError keeps typed errors from the ledger adapter and wraps the rest.
func ledgerError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.ErrLedgerFailure(err)
}
