package cache

import (
	"sync"
	"time"
)

// ActivityEvent is one item in a user's live feed: a record they just
// logged, reduced to what the dashboard needs to render it.
type ActivityEvent struct {
	UserID     string    `json:"user_id"`
	Kind       string    `json:"kind"` // workout, meal, weight, feedback
	RefID      string    `json:"ref_id"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ActivityCache keeps the most recent events per user in memory. It is
// best-effort feed state, not a persistence layer: it starts empty on boot
// and is bounded per user.
type ActivityCache struct {
	mu       sync.RWMutex
	events   map[string][]ActivityEvent // map[userID][]events, oldest first
	capacity int
}

func NewActivityCache(capacity int) *ActivityCache {
	if capacity <= 0 {
		capacity = 50
	}
	return &ActivityCache{
		events:   make(map[string][]ActivityEvent),
		capacity: capacity,
	}
}

// Add appends an event to the user's ring, evicting the oldest entry once
// the per-user capacity is reached.
func (ac *ActivityCache) Add(event ActivityEvent) {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	buf := append(ac.events[event.UserID], event)
	if len(buf) > ac.capacity {
		buf = buf[len(buf)-ac.capacity:]
	}
	ac.events[event.UserID] = buf
}

// Recent returns a copy of the user's buffered events, oldest first.
func (ac *ActivityCache) Recent(userID string) []ActivityEvent {
	ac.mu.RLock()
	defer ac.mu.RUnlock()

	buf := ac.events[userID]
	out := make([]ActivityEvent, len(buf))
	copy(out, buf)
	return out
}

// Stats returns statistics about the current buffer contents.
func (ac *ActivityCache) Stats() map[string]interface{} {
	ac.mu.RLock()
	defer ac.mu.RUnlock()

	totalEvents := 0
	for _, buf := range ac.events {
		totalEvents += len(buf)
	}

	return map[string]interface{}{
		"total_users":  len(ac.events),
		"total_events": totalEvents,
		"capacity":     ac.capacity,
	}
}

// Clear drops a user's buffered events, e.g. after account deletion.
func (ac *ActivityCache) Clear(userID string) {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	delete(ac.events, userID)
}
