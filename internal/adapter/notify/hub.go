package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// allUsers is the registration key of subscribers without a user filter.
const allUsers = ""

// Hub fans status events out to websocket subscribers. Delivery is
// best effort: a subscriber whose buffer is full misses the event.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
	log     zerolog.Logger
}

var _ ports.Notifier = (*Hub)(nil)

// NewHub creates an empty hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
		log:     log,
	}
}

// Register subscribes client to userID's status events.
func (h *Hub) Register(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]struct{})
	}
	h.clients[userID][client] = struct{}{}
}

// Unregister drops client and forgets userID once no clients remain.
func (h *Hub) Unregister(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		return
	}
	delete(h.clients[userID], client)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// Subscribers counts registered clients.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

// Publish sends the event to the owner's subscribers and to unfiltered ones.
func (h *Hub) Publish(_ context.Context, event domain.StatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode status event: %w", err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	dropped := 0
	for _, key := range []string{event.UserID.String(), allUsers} {
		for client := range h.clients[key] {
			select {
			case client.send <- payload:
			default:
				dropped++
			}
		}
	}
	if dropped > 0 {
		h.log.Warn().
			Str("tx_id", event.TransactionID.String()).
			Int("dropped", dropped).
			Msg("Slow subscribers missed status event")
	}
	return nil
}
