package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"
	"ramp-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	webhookReplayTTL     = 24 * time.Hour
	webhookStatusSuccess = "success"
)

// WebhookSecrets are the HMAC keys each provider signs its callbacks with.
// An empty key rejects every callback from that provider.
type WebhookSecrets struct {
	Fincra string
	Paybox string
}

// providerCallback is a provider notification reduced to what moves a
// transaction forward.
type providerCallback struct {
	provider   domain.PaymentProvider
	event      string
	reference  string
	status     string
	providerID string
}

// fincraWebhook is the callback body posted by Fincra for charges and payouts.
type fincraWebhook struct {
	Event string `json:"event"`
	Data  struct {
		ID                json.RawMessage `json:"id"`
		Reference         string          `json:"reference"`
		CustomerReference string          `json:"customerReference"`
		Status            string          `json:"status"`
	} `json:"data"`
}

func decodeFincra(body []byte) (providerCallback, error) {
	var w fincraWebhook
	if err := json.Unmarshal(body, &w); err != nil {
		return providerCallback{}, err
	}
	ref := w.Data.Reference
	if ref == "" {
		ref = w.Data.CustomerReference
	}
	return providerCallback{
		provider:   domain.PaymentProviderFincra,
		event:      w.Event,
		reference:  ref,
		status:     w.Data.Status,
		providerID: rawID(w.Data.ID),
	}, nil
}

// payboxWebhook is the callback Paybox posts for card charges and transfers.
// order_id echoes the transaction id sent with the request.
type payboxWebhook struct {
	OrderID       string          `json:"order_id"`
	Status        string          `json:"status"`
	Mode          string          `json:"mode"`
	Token         string          `json:"token"`
	TransactionID json.RawMessage `json:"transaction_id"`
}

func decodePaybox(body []byte) (providerCallback, error) {
	var w payboxWebhook
	if err := json.Unmarshal(body, &w); err != nil {
		return providerCallback{}, err
	}
	id := rawID(w.TransactionID)
	if id == "" {
		id = w.Token
	}
	return providerCallback{
		provider:   domain.PaymentProviderPaybox,
		event:      w.Mode,
		reference:  w.OrderID,
		status:     w.Status,
		providerID: id,
	}, nil
}

// rawID returns a provider id sent either as a number or a string.
func rawID(raw json.RawMessage) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return trimmed
}

// WebhookReconcilerImpl implements ports.WebhookReconciler.
type WebhookReconcilerImpl struct {
	txRepo   ports.TransactionRepository
	sigSvc   ports.SignatureService
	replay   ports.WebhookReplayStore
	notifier ports.Notifier
	secrets  WebhookSecrets
	log      zerolog.Logger
}

// NewWebhookReconciler creates a new WebhookReconcilerImpl. replay may be nil.
func NewWebhookReconciler(
	txRepo ports.TransactionRepository,
	sigSvc ports.SignatureService,
	replay ports.WebhookReplayStore,
	notifier ports.Notifier,
	secrets WebhookSecrets,
	log zerolog.Logger,
) *WebhookReconcilerImpl {
	return &WebhookReconcilerImpl{
		txRepo:   txRepo,
		sigSvc:   sigSvc,
		replay:   replay,
		notifier: notifier,
		secrets:  secrets,
		log:      log,
	}
}

// HandleFincra verifies and applies a Fincra callback. Anything that does
// not advance a transaction is acknowledged without changes.
func (r *WebhookReconcilerImpl) HandleFincra(ctx context.Context, body []byte, signature string) error {
	return r.handle(ctx, r.secrets.Fincra, body, signature, decodeFincra)
}

// HandlePaybox verifies and applies a Paybox callback for a card charge or a
// mobile money transfer.
func (r *WebhookReconcilerImpl) HandlePaybox(ctx context.Context, body []byte, signature string) error {
	return r.handle(ctx, r.secrets.Paybox, body, signature, decodePaybox)
}

func (r *WebhookReconcilerImpl) handle(
	ctx context.Context,
	secret string,
	body []byte,
	signature string,
	decode func([]byte) (providerCallback, error),
) error {
	if secret == "" || !r.sigSvc.Verify(secret, body, signature) {
		r.log.Warn().Msg("webhook signature mismatch")
		return apperror.ErrInvalidSignature()
	}

	key := replayKey(body)
	if r.seen(ctx, key) {
		r.log.Debug().Str("replay_key", key).Msg("webhook already processed")
		return nil
	}

	hook, err := decode(body)
	if err != nil {
		return apperror.Validation("malformed webhook body")
	}

	if err := r.apply(ctx, hook); err != nil {
		return err
	}
	r.remember(ctx, key)
	return nil
}

func (r *WebhookReconcilerImpl) apply(ctx context.Context, hook providerCallback) error {
	ref := hook.reference
	log := r.log.With().
		Str("provider", string(hook.provider)).
		Str("event", hook.event).
		Str("reference", ref).
		Str("status", hook.status).
		Logger()

	id, err := uuid.Parse(ref)
	if err != nil {
		log.Info().Msg("webhook reference is not a transaction id, ignoring")
		return nil
	}

	txn, err := r.txRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get transaction: %w", err))
	}
	if txn == nil {
		log.Info().Msg("webhook for unknown transaction, ignoring")
		return nil
	}
	if !strings.EqualFold(hook.status, webhookStatusSuccess) {
		log.Info().Str("tx_status", string(txn.Status)).Msg("webhook status is not success, ignoring")
		return nil
	}

	var update domain.StatusUpdate
	switch txn.Status {
	case domain.TransactionStatusDebiting:
		update.Status = domain.TransactionStatusDebited
		provider := hook.provider
		update.PaymentProvider = &provider
		if pid := hook.providerID; pid != "" {
			update.FiatTransactionID = &pid
		}
	case domain.TransactionStatusSettling:
		update.Status = domain.TransactionStatusSettled
		now := time.Now().UTC()
		update.SettledDate = &now
	default:
		log.Info().Str("tx_status", string(txn.Status)).Msg("webhook does not apply to current status, ignoring")
		return nil
	}

	updated, err := r.txRepo.CompareAndSetStatus(ctx, txn.ID, txn.Status, update)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("update status: %w", err))
	}
	if updated == nil {
		log.Info().Str("tx_id", txn.ID.String()).Msg("transaction advanced concurrently, ignoring webhook")
		return nil
	}

	log.Info().
		Str("tx_id", updated.ID.String()).
		Str("from", string(txn.Status)).
		Str("to", string(updated.Status)).
		Msg("transaction reconciled")

	if r.notifier != nil {
		if err := r.notifier.Publish(ctx, domain.NewStatusEvent(updated)); err != nil {
			log.Warn().Err(err).Str("tx_id", updated.ID.String()).Msg("status notification failed")
		}
	}
	return nil
}

func (r *WebhookReconcilerImpl) seen(ctx context.Context, key string) bool {
	if r.replay == nil {
		return false
	}
	ok, err := r.replay.Seen(ctx, key)
	if err != nil {
		r.log.Warn().Err(err).Msg("webhook replay lookup failed")
		return false
	}
	return ok
}

func (r *WebhookReconcilerImpl) remember(ctx context.Context, key string) {
	if r.replay == nil {
		return
	}
	if err := r.replay.Remember(ctx, key, webhookReplayTTL); err != nil {
		r.log.Warn().Err(err).Msg("webhook replay record failed")
	}
}

func replayKey(body []byte) string {
	sum := sha256.Sum256(body)
	return "webhook:" + hex.EncodeToString(sum[:])
}
