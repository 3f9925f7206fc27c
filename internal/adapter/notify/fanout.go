package notify

import (
	"context"

	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// Fanout publishes to every sink. Sink failures are logged, never returned.
type Fanout struct {
	sinks []ports.Notifier
	log   zerolog.Logger
}

var _ ports.Notifier = (*Fanout)(nil)

// NewFanout creates a Fanout over sinks.
func NewFanout(log zerolog.Logger, sinks ...ports.Notifier) *Fanout {
	return &Fanout{sinks: sinks, log: log}
}

// Publish sends event to every sink and always returns nil.
func (f *Fanout) Publish(ctx context.Context, event domain.StatusEvent) error {
	for _, sink := range f.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			f.log.Error().Err(err).
				Str("tx_id", event.TransactionID.String()).
				Str("status", string(event.Status)).
				Msg("Failed to publish status event")
		}
	}
	return nil
}
