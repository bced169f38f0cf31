package slotfeed

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"venuebook/models"
)

// fakeFeed hands out one buffered channel per key and keeps it so tests can
// push into old subscriptions after the merger moved on.
type fakeFeed struct {
	mu    sync.Mutex
	chans map[Key]chan Push
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{chans: make(map[Key]chan Push)}
}

func (f *fakeFeed) Subscribe(ctx context.Context, key Key) (<-chan Push, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan Push, 8)
	f.chans[key] = ch
	return ch, nil
}

func (f *fakeFeed) push(key Key, slots []models.TimeSlot) {
	f.mu.Lock()
	ch := f.chans[key]
	f.mu.Unlock()
	ch <- Push{Key: key, Slots: slots}
}

func (f *fakeFeed) pushTagged(subscribedKey, taggedKey Key, slots []models.TimeSlot) {
	f.mu.Lock()
	ch := f.chans[subscribedKey]
	f.mu.Unlock()
	ch <- Push{Key: taggedKey, Slots: slots}
}

type recordedUpdate struct {
	key   Key
	slots []models.TimeSlot
	ok    bool
}

func collect(m *Merger) chan recordedUpdate {
	updates := make(chan recordedUpdate, 16)
	m.OnUpdate(func(key Key, slots []models.TimeSlot, ok bool) {
		updates <- recordedUpdate{key: key, slots: slots, ok: ok}
	})
	return updates
}

func waitUpdate(t *testing.T, updates chan recordedUpdate) recordedUpdate {
	t.Helper()
	select {
	case u := <-updates:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
		return recordedUpdate{}
	}
}

func assertNoUpdate(t *testing.T, updates chan recordedUpdate) {
	t.Helper()
	select {
	case u := <-updates:
		t.Fatalf("unexpected update for %v", u.key)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMergerDeliversPushesInArrivalOrder(t *testing.T) {
	feed := newFakeFeed()
	m := NewMerger(feed, nil, zap.NewNop())
	updates := collect(m)
	key := Key{PackageID: "p1", Date: "2025-06-06"}

	if err := m.Connect(key); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer m.Close()

	feed.push(key, []models.TimeSlot{{Start: 540, End: 600}})
	feed.push(key, []models.TimeSlot{{Start: 600, End: 660}})

	first := waitUpdate(t, updates)
	second := waitUpdate(t, updates)
	if first.slots[0].Start != 540 || second.slots[0].Start != 600 {
		t.Fatalf("pushes out of order: %v then %v", first.slots, second.slots)
	}
}

func TestMergerDiscardsLatePushFromSupersededKey(t *testing.T) {
	feed := newFakeFeed()
	m := NewMerger(feed, nil, zap.NewNop())
	updates := collect(m)
	old := Key{PackageID: "p1", Date: "2025-06-06"}
	next := Key{PackageID: "p2", Date: "2025-06-09"}

	if err := m.Connect(old); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if err := m.Connect(next); err != nil {
		t.Fatalf("reconnect failed: %v", err)
	}
	defer m.Close()

	// A push for the closed (p1, d1) stream arrives late; it must not
	// reach the callback.
	feed.push(old, []models.TimeSlot{{Start: 540, End: 600}})
	feed.push(next, []models.TimeSlot{{Start: 720, End: 780}})

	got := waitUpdate(t, updates)
	if got.key != next {
		t.Fatalf("expected update for %v, got %v", next, got.key)
	}
	assertNoUpdate(t, updates)
}

func TestMergerDiscardsMistaggedPush(t *testing.T) {
	feed := newFakeFeed()
	m := NewMerger(feed, nil, zap.NewNop())
	updates := collect(m)
	key := Key{PackageID: "p1", Date: "2025-06-06"}

	if err := m.Connect(key); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer m.Close()

	feed.pushTagged(key, Key{PackageID: "p9", Date: "2025-06-06"}, []models.TimeSlot{{Start: 540, End: 600}})
	assertNoUpdate(t, updates)
}

func TestMergerNoCallbackAfterClose(t *testing.T) {
	feed := newFakeFeed()
	m := NewMerger(feed, nil, zap.NewNop())
	updates := collect(m)
	key := Key{PackageID: "p1", Date: "2025-06-06"}

	if err := m.Connect(key); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	m.Close()

	feed.push(key, []models.TimeSlot{{Start: 540, End: 600}})
	assertNoUpdate(t, updates)
}

func TestMergerAppliesFilterToEachPush(t *testing.T) {
	feed := newFakeFeed()
	filter := func(key Key, slots []models.TimeSlot) []models.TimeSlot {
		var kept []models.TimeSlot
		for _, s := range slots {
			if s.Start >= 600 {
				kept = append(kept, s)
			}
		}
		return kept
	}
	m := NewMerger(feed, filter, zap.NewNop())
	updates := collect(m)
	key := Key{PackageID: "p1", Date: "2025-06-06"}

	if err := m.Connect(key); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer m.Close()

	feed.push(key, []models.TimeSlot{{Start: 540, End: 600}, {Start: 600, End: 660}})

	got := waitUpdate(t, updates)
	if len(got.slots) != 1 || got.slots[0].Start != 600 {
		t.Fatalf("filter not applied: %v", got.slots)
	}
}

func TestMergerFeedClosureMeansSlotsUnknown(t *testing.T) {
	feed := newFakeFeed()
	m := NewMerger(feed, nil, zap.NewNop())
	updates := collect(m)
	key := Key{PackageID: "p1", Date: "2025-06-06"}

	if err := m.Connect(key); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer m.Close()

	feed.mu.Lock()
	close(feed.chans[key])
	feed.mu.Unlock()

	got := waitUpdate(t, updates)
	if got.ok {
		t.Fatal("feed closure must surface as slots-unknown")
	}
	if got.slots != nil {
		t.Fatalf("no slots may be offered after feed failure, got %v", got.slots)
	}
}
