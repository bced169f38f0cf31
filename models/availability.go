package models

// DayState classifies a calendar date for display. States are mutually
// exclusive; the classifier applies them in a fixed precedence order.
type DayState int

const (
	DayPast DayState = iota
	DayFullClosure
	DaySelected
	DayPartialClosure
	DayBreakNoted
	DayAvailable
	DayUnavailable
)

func (s DayState) String() string {
	switch s {
	case DayPast:
		return "past"
	case DayFullClosure:
		return "fullClosure"
	case DaySelected:
		return "selected"
	case DayPartialClosure:
		return "partialClosure"
	case DayBreakNoted:
		return "breakNoted"
	case DayAvailable:
		return "available"
	default:
		return "unavailable"
	}
}

// MarshalJSON renders the state as its display name.
func (s DayState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// CalendarDay is one classified cell of the calendar grid.
type CalendarDay struct {
	Date   string   `json:"date"`
	State  DayState `json:"state"`
	Reason string   `json:"reason,omitempty"` // closure or break note, when one applies
}

// AvailabilityResult is the derived bookable state for one package. It is
// computed per request and never stored.
type AvailabilityResult struct {
	PackageID         string                    `json:"packageId"`
	BookableDates     []string                  `json:"bookableDates"`
	FullClosureDates  []string                  `json:"fullClosureDates"`
	PartialClosures   map[string]DayOffInstance `json:"partialClosures,omitempty"`
	AvailabilityError string                    `json:"availabilityError,omitempty"`
}

// SlotListResult carries the filtered slots for a chosen date. When the slot
// source failed, Slots is empty and AvailabilityError says why; the date
// itself stays selectable so the caller can retry.
type SlotListResult struct {
	PackageID         string     `json:"packageId"`
	Date              string     `json:"date"`
	Slots             []TimeSlot `json:"slots"`
	AvailabilityError string     `json:"availabilityError,omitempty"`
}
