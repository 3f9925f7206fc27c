package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const txColumnList = `id, user_id, kind, status, token, fiat, country,
		fiat_amount, token_amount, fiat_rate, token_rate,
		transaction_hash, fiat_transaction_id, payment_provider, payout_info_enc, error_reason,
		created_at, updated_at, settled_date`

// TransactionRepo implements ports.TransactionRepository.
// Payout details are sealed with the encryption service before they reach
// the database.
type TransactionRepo struct {
	pool   Pool
	encSvc ports.EncryptionService
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool, encSvc ports.EncryptionService) *TransactionRepo {
	return &TransactionRepo{pool: pool, encSvc: encSvc}
}

// Create inserts a new transaction.
func (r *TransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	payout, err := r.sealPayout(t.PayoutInfo)
	if err != nil {
		return err
	}

	query := `INSERT INTO transactions (` + txColumnList + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err = r.pool.Exec(ctx, query,
		t.ID, t.UserID, t.Kind, t.Status, t.Token, t.Fiat, t.Country,
		t.FiatAmount, t.TokenAmount, t.FiatRate, t.TokenRate,
		t.TransactionHash, t.FiatTransactionID, t.PaymentProvider, payout, t.ErrorReason,
		t.CreatedAt, t.UpdatedAt, t.SettledDate,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction by UUID.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + txColumnList + ` FROM transactions WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a transaction with a row lock.
// This MUST be called within a transaction.
func (r *TransactionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + txColumnList + ` FROM transactions WHERE id = $1 FOR UPDATE`
	return r.scanOne(tx.QueryRow(ctx, query, id))
}

// ListByUser returns a user's transactions, newest first.
func (r *TransactionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	query := `SELECT ` + txColumnList + ` FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, nil
}

// CompareAndSetStatus moves the row to update.Status only if it is still in
// expected. Rate columns are never part of the SET list.
func (r *TransactionRepo) CompareAndSetStatus(ctx context.Context, id uuid.UUID, expected domain.TransactionStatus, update domain.StatusUpdate) (*domain.Transaction, error) {
	query := `UPDATE transactions SET
		status = $3,
		transaction_hash = COALESCE($4, transaction_hash),
		fiat_transaction_id = COALESCE($5, fiat_transaction_id),
		payment_provider = COALESCE($6, payment_provider),
		error_reason = COALESCE($7, error_reason),
		settled_date = COALESCE($8, settled_date),
		updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + txColumnList

	return r.scanOne(r.pool.QueryRow(ctx, query,
		id, expected, update.Status,
		update.TransactionHash, update.FiatTransactionID, update.PaymentProvider,
		update.ErrorReason, update.SettledDate,
	))
}

// SetPaymentReference stores the provider reference of a charge or payout.
func (r *TransactionRepo) SetPaymentReference(ctx context.Context, id uuid.UUID, provider domain.PaymentProvider, reference string) error {
	query := `UPDATE transactions SET payment_provider = $2, fiat_transaction_id = $3, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, provider, reference)
	if err != nil {
		return fmt.Errorf("set payment reference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

// UpdateStatus overwrites the status within a database transaction.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error {
	query := `UPDATE transactions SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *TransactionRepo) scanOne(row pgx.Row) (*domain.Transaction, error) {
	t, err := r.scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return t, nil
}

func (r *TransactionRepo) scan(row rowScanner) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	var payout string
	err := row.Scan(
		&t.ID, &t.UserID, &t.Kind, &t.Status, &t.Token, &t.Fiat, &t.Country,
		&t.FiatAmount, &t.TokenAmount, &t.FiatRate, &t.TokenRate,
		&t.TransactionHash, &t.FiatTransactionID, &t.PaymentProvider, &payout, &t.ErrorReason,
		&t.CreatedAt, &t.UpdatedAt, &t.SettledDate,
	)
	if err != nil {
		return nil, err
	}
	if t.PayoutInfo, err = r.openPayout(payout); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TransactionRepo) sealPayout(info domain.PayoutInfo) (string, error) {
	raw, err := json.Marshal(info)
	if err != nil {
		return "", fmt.Errorf("marshal payout info: %w", err)
	}
	sealed, err := r.encSvc.Encrypt(string(raw))
	if err != nil {
		return "", fmt.Errorf("encrypt payout info: %w", err)
	}
	return sealed, nil
}

func (r *TransactionRepo) openPayout(sealed string) (domain.PayoutInfo, error) {
	var info domain.PayoutInfo
	if sealed == "" {
		return info, nil
	}
	raw, err := r.encSvc.Decrypt(sealed)
	if err != nil {
		return info, fmt.Errorf("decrypt payout info: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return info, fmt.Errorf("unmarshal payout info: %w", err)
	}
	return info, nil
}
