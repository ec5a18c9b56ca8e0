package services

import (
	"encoding/json"
	"log"
	"time"

	"fitness-server/cache"
	"fitness-server/ws"
)

// ActivityFeed records tracker events and mirrors them to the owner's open
// websocket. Delivery is best-effort: a closed or absent socket is not an
// error, the event stays in the buffer either way.
type ActivityFeed struct {
	cache   *cache.ActivityCache
	manager *ws.Manager
}

func NewActivityFeed(manager *ws.Manager, capacity int) *ActivityFeed {
	return &ActivityFeed{
		cache:   cache.NewActivityCache(capacity),
		manager: manager,
	}
}

// Record buffers an event and pushes it to the user's feed socket.
func (af *ActivityFeed) Record(userID, kind, refID, summary string) {
	event := cache.ActivityEvent{
		UserID:     userID,
		Kind:       kind,
		RefID:      refID,
		Summary:    summary,
		OccurredAt: time.Now().UTC(),
	}
	af.cache.Add(event)

	if !af.manager.IsConnected(userID) {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling activity event: %v", err)
		return
	}
	if err := af.manager.SendToUser(userID, payload); err != nil {
		log.Printf("Error pushing activity event to user %s: %v", userID, err)
	}
}

// Recent returns the user's buffered events, oldest first.
func (af *ActivityFeed) Recent(userID string) []cache.ActivityEvent {
	return af.cache.Recent(userID)
}

// Stats returns buffer statistics.
func (af *ActivityFeed) Stats() map[string]interface{} {
	return af.cache.Stats()
}

// Forget drops a user's buffered events.
func (af *ActivityFeed) Forget(userID string) {
	af.cache.Clear(userID)
}

// Disconnect drops a user's buffered events and closes their feed socket.
// Called when the account is deleted.
func (af *ActivityFeed) Disconnect(userID string) {
	af.cache.Clear(userID)
	af.manager.Unregister(userID)
}
