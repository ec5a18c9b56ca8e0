package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActivityCache_AddAndRecent(t *testing.T) {
	t.Parallel()

	ac := NewActivityCache(10)
	ac.Add(ActivityEvent{UserID: "u1", Kind: "workout", RefID: "w1", Summary: "first", OccurredAt: time.Now()})
	ac.Add(ActivityEvent{UserID: "u1", Kind: "meal", RefID: "m1", Summary: "second", OccurredAt: time.Now()})
	ac.Add(ActivityEvent{UserID: "u2", Kind: "weight", RefID: "g1", Summary: "other user", OccurredAt: time.Now()})

	events := ac.Recent("u1")
	assert.Len(t, events, 2)
	assert.Equal(t, "first", events[0].Summary)
	assert.Equal(t, "second", events[1].Summary)

	assert.Len(t, ac.Recent("u2"), 1)
	assert.Empty(t, ac.Recent("nobody"))
}

func TestActivityCache_EvictsOldestAtCapacity(t *testing.T) {
	t.Parallel()

	ac := NewActivityCache(3)
	for i := 0; i < 5; i++ {
		ac.Add(ActivityEvent{UserID: "u1", Kind: "workout", Summary: fmt.Sprintf("e%d", i)})
	}

	events := ac.Recent("u1")
	assert.Len(t, events, 3)
	assert.Equal(t, "e2", events[0].Summary)
	assert.Equal(t, "e4", events[2].Summary)
}

func TestActivityCache_Stats(t *testing.T) {
	t.Parallel()

	ac := NewActivityCache(50)
	ac.Add(ActivityEvent{UserID: "u1"})
	ac.Add(ActivityEvent{UserID: "u1"})
	ac.Add(ActivityEvent{UserID: "u2"})

	stats := ac.Stats()
	assert.Equal(t, 2, stats["total_users"])
	assert.Equal(t, 3, stats["total_events"])
	assert.Equal(t, 50, stats["capacity"])
}

func TestActivityCache_Clear(t *testing.T) {
	t.Parallel()

	ac := NewActivityCache(10)
	ac.Add(ActivityEvent{UserID: "u1"})
	ac.Clear("u1")
	assert.Empty(t, ac.Recent("u1"))
}
