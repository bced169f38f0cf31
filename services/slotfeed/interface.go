package slotfeed

import (
	"context"

	"venuebook/models"
)

// Key identifies one live slot stream: a (package, date) pair.
type Key struct {
	PackageID string
	Date      string // "2006-01-02"
}

// Push is one delivery from a slot feed, tagged with the key it was
// published under.
type Push struct {
	Key   Key
	Slots []models.TimeSlot
}

// SlotFeed is a push-style source of room-availability-derived slots. The
// returned channel is closed when ctx is cancelled or the feed fails; a
// closed channel means "slots unknown" for the key, never an empty slot list.
type SlotFeed interface {
	Subscribe(ctx context.Context, key Key) (<-chan Push, error)
}
