package slotfeed

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"venuebook/models"
)

// FilterFunc post-processes the raw slots of an accepted push before it
// reaches the update callback (the availability filter, in practice).
type FilterFunc func(key Key, slots []models.TimeSlot) []models.TimeSlot

// UpdateFunc receives the filtered slot list for the current key. A nil slot
// list with ok=false means the stream ended without a snapshot ("slots
// unknown"); the date stays selectable and the caller may reconnect.
type UpdateFunc func(key Key, slots []models.TimeSlot, ok bool)

// Merger holds at most one live subscription to a SlotFeed. Connect tears
// down the previous key synchronously before opening the next, so a push
// from a superseded (package, date) pair can never overwrite newer state.
// Within one subscription pushes apply in arrival order, last write wins.
type Merger struct {
	feed   SlotFeed
	filter FilterFunc
	logger *zap.Logger

	mu       sync.Mutex
	gen      int
	key      Key
	cancel   context.CancelFunc
	onUpdate UpdateFunc
}

// NewMerger constructs a merger over the given feed. filter may be nil.
func NewMerger(feed SlotFeed, filter FilterFunc, logger *zap.Logger) *Merger {
	return &Merger{feed: feed, filter: filter, logger: logger}
}

// OnUpdate registers the callback invoked for each accepted push.
func (m *Merger) OnUpdate(cb UpdateFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onUpdate = cb
}

// Connect switches the merger to a new key. Any prior subscription is
// cancelled before the new one opens; after Connect returns, no callback for
// the old key will run.
func (m *Merger) Connect(key Key) error {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.gen++
	gen := m.gen
	m.key = key
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.mu.Unlock()

	ch, err := m.feed.Subscribe(ctx, key)
	if err != nil {
		cancel()
		m.logger.Warn("slot feed subscribe failed",
			zap.String("packageID", key.PackageID), zap.String("date", key.Date), zap.Error(err))
		m.notifyUnknown(gen, key)
		return err
	}

	go m.pump(ctx, gen, key, ch)
	return nil
}

// Close tears down the active subscription, if any. No callback runs after
// Close returns.
func (m *Merger) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.gen++
}

func (m *Merger) pump(ctx context.Context, gen int, key Key, ch <-chan Push) {
	for {
		select {
		case <-ctx.Done():
			return
		case push, ok := <-ch:
			if !ok {
				// Feed ended without cancellation: slots are unknown for
				// this key until a reconnect succeeds.
				m.notifyUnknown(gen, key)
				return
			}
			if push.Key != key {
				m.logger.Debug("discarding slot push for stale key",
					zap.String("pushPackageID", push.Key.PackageID), zap.String("pushDate", push.Key.Date))
				continue
			}
			m.deliver(gen, push)
		}
	}
}

// deliver applies one push under the lock. The generation check closes the
// race between an in-flight push and a concurrent Connect/Close: anything
// from a superseded subscription is dropped here.
func (m *Merger) deliver(gen int, push Push) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return
	}
	slots := push.Slots
	if m.filter != nil {
		slots = m.filter(push.Key, slots)
	}
	if m.onUpdate != nil {
		m.onUpdate(push.Key, slots, true)
	}
}

func (m *Merger) notifyUnknown(gen int, key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		return
	}
	if m.onUpdate != nil {
		m.onUpdate(key, nil, false)
	}
}
