package models

import "time"

// DayOffRecord is a raw closure entry for a location, as stored. Times are
// "HH:MM" strings and the date is "2006-01-02"; both are parsed when the
// record is expanded into concrete instances.
//
// TimeStart present means "closes from this time onward"; TimeEnd present
// means "does not open until this time"; both empty is a full-day closure.
// An empty PackageScope applies location-wide.
type DayOffRecord struct {
	ID                string   `bson:"id" json:"id"`
	LocationID        string   `bson:"locationId" json:"locationId"`
	Date              string   `bson:"date" json:"date"`
	RecurringAnnually bool     `bson:"recurringAnnually" json:"recurringAnnually"`
	TimeStart         string   `bson:"timeStart,omitempty" json:"timeStart,omitempty"`
	TimeEnd           string   `bson:"timeEnd,omitempty" json:"timeEnd,omitempty"`
	PackageScope      []string `bson:"packageScope,omitempty" json:"packageScope,omitempty"`
	RoomScope         []string `bson:"roomScope,omitempty" json:"roomScope,omitempty"`
	Reason            string   `bson:"reason,omitempty" json:"reason,omitempty"`
}

// DayOffInstance is one concrete occurrence of a DayOffRecord within the
// expansion horizon. StartMin/EndMin are minutes from midnight, -1 when the
// record had no time bound on that side.
type DayOffInstance struct {
	Date         time.Time
	StartMin     int
	EndMin       int
	PackageScope []string
	RoomScope    []string
	Reason       string
}

// IsFullClosure reports whether this instance removes its date from the
// calendar entirely: no time window and no package/room scope. Anything
// narrower only filters slots on matching dates.
func (d DayOffInstance) IsFullClosure() bool {
	return d.StartMin < 0 && d.EndMin < 0 && len(d.PackageScope) == 0 && len(d.RoomScope) == 0
}

// AppliesToPackage reports whether this instance restricts the given package.
// An empty scope is location-wide and restricts every package.
func (d DayOffInstance) AppliesToPackage(packageID string) bool {
	if len(d.PackageScope) == 0 {
		return true
	}
	for _, id := range d.PackageScope {
		if id == packageID {
			return true
		}
	}
	return false
}
