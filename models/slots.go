package models

// TimeSlot is one bookable window on a date, as emitted by the room feed.
// Start and End are minutes from midnight (e.g., 420 for 7:00 AM). Only the
// latest snapshot per (package, date) is kept; individual slots are never
// mutated here.
type TimeSlot struct {
	ID     string `bson:"id,omitempty" json:"id,omitempty"`
	Start  int    `bson:"start" json:"start"`
	End    int    `bson:"end" json:"end"`
	RoomID string `bson:"roomId,omitempty" json:"roomId,omitempty"` // empty until the feed assigns a room
	Date   string `bson:"date,omitempty" json:"date,omitempty"`     // e.g., "2025-02-25"
}

// SlotPush is one message from the live room-availability feed, tagged with
// the (package, date) key it was published for so stale pushes can be
// discarded by the consumer.
type SlotPush struct {
	PackageID      string     `json:"packageId"`
	Date           string     `json:"date"`
	AvailableSlots []TimeSlot `json:"availableSlots"`
}
