package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event types delivered over the SSE stream.
const (
	EventBudgetAlert    = "budget_alert"
	EventBudgetExceeded = "budget_exceeded"
	EventBudgetRenewed  = "budget_renewed"
)

type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// BudgetAlertData is the payload of threshold and exceeded events.
type BudgetAlertData struct {
	BudgetID   uuid.UUID `json:"budget_id"`
	BudgetName string    `json:"budget_name"`
	Category   string    `json:"category"`
	Threshold  int       `json:"threshold,omitempty"`
	Spent      float64   `json:"spent"`
	Amount     float64   `json:"amount"`
	Progress   float64   `json:"progress"`
}

type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[chan Event]struct{}
}

// NewHub creates the SSE subscription hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]map[chan Event]struct{}),
	}
}

// Subscribe registers a listener for a user and returns the channel plus
// an unsubscribe function.
func (h *Hub) Subscribe(userID uuid.UUID) (<-chan Event, func()) {
	ch := make(chan Event, 10)

	h.mu.Lock()
	defer h.mu.Unlock()

	userSubs, ok := h.subscribers[userID]
	if !ok {
		userSubs = make(map[chan Event]struct{})
		h.subscribers[userID] = userSubs
	}
	userSubs[ch] = struct{}{}

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if subs, exists := h.subscribers[userID]; exists {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(h.subscribers, userID)
			}
		}
		close(ch)
	}
}

// Publish delivers an event to all subscribers of a user. Slow
// subscribers are skipped rather than blocked on.
func (h *Hub) Publish(userID uuid.UUID, event Event) {
	event.Timestamp = time.Now().UTC()

	h.mu.RLock()
	defer h.mu.RUnlock()

	subs, ok := h.subscribers[userID]
	if !ok {
		return
	}

	for ch := range subs {
		select {
		case ch <- event:
		default:
		}
	}
}
