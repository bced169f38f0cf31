package models

// Recurrence rule types.
const (
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

// RecurrenceRule describes one recurring availability pattern owned by a package.
// For "weekly", DayConfig holds lowercase full weekday names. For "monthly",
// each entry is a "<weekday>-<ordinal>" token with ordinal one of
// first/second/third/fourth/last. A package may carry several active rules;
// a date is available when any of them matches.
type RecurrenceRule struct {
	Type      string   `bson:"type" json:"type"`
	DayConfig []string `bson:"dayConfig" json:"dayConfig"`
	IsActive  bool     `bson:"isActive" json:"isActive"`
	Priority  int      `bson:"priority" json:"priority"`
}

// BookingWindow bounds how far ahead and how soon a package can be booked.
// A nil MaxDaysAhead means the location-wide ceiling applies (730 days).
type BookingWindow struct {
	MaxDaysAhead   *int    `bson:"maxDaysAhead,omitempty" json:"maxDaysAhead,omitempty"`
	MinNoticeHours float64 `bson:"minNoticeHours" json:"minNoticeHours"`
}

// BreakWindow is an informational recurring break shown on the calendar.
// It never blocks booking; it only produces the "break" note on matching days.
type BreakWindow struct {
	Days  []string `bson:"days,omitempty" json:"days,omitempty"` // lowercase weekday names; empty = every day
	Start int      `bson:"start" json:"start"`                   // minutes from midnight
	End   int      `bson:"end" json:"end"`
	Label string   `bson:"label,omitempty" json:"label,omitempty"`
}

// Package is a bookable offering at a location.
type Package struct {
	ID         string           `bson:"id" json:"id"`
	LocationID string           `bson:"locationId" json:"locationId"`
	Name       string           `bson:"name" json:"name"`
	Rules      []RecurrenceRule `bson:"rules" json:"rules"`
	Window     *BookingWindow   `bson:"window,omitempty" json:"window,omitempty"` // nil = use location default
	Breaks     []BreakWindow    `bson:"breaks,omitempty" json:"breaks,omitempty"`
	Active     bool             `bson:"active" json:"active"`
}

// Location groups packages and carries the fallback booking window.
type Location struct {
	ID            string        `bson:"id" json:"id"`
	Name          string        `bson:"name" json:"name"`
	DefaultWindow BookingWindow `bson:"defaultWindow" json:"defaultWindow"`
}
