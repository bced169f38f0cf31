package availability

import (
	"context"

	"github.com/go-redis/redis/v8"

	dayoffRepo "venuebook/database/repository/dayoff"
	pkgRepo "venuebook/database/repository/pkgs"
	slotRepo "venuebook/database/repository/slots"
	"venuebook/models"
)

// CalendarViewRequest asks for one classified month of a package's calendar.
type CalendarViewRequest struct {
	LocationID string
	PackageID  string
	Month      string // "2006-01"
	Selected   string // optional chosen date
	KeepDate   string // optional confirmed-booking date to keep visible (edited bookings)
}

// Service computes bookable dates, filtered slots and classified calendar
// views for packages. Everything is derived per call; nothing is mutated.
type Service interface {
	GetBookableDates(ctx context.Context, locationID, packageID string) (*models.AvailabilityResult, error)
	GetSlotsForDate(ctx context.Context, locationID, packageID, date string) (*models.SlotListResult, error)
	GetCalendarView(ctx context.Context, req CalendarViewRequest) ([]models.CalendarDay, error)
	InvalidateCalendar(ctx context.Context, locationID string) error
}

// DefaultService is the production implementation over the Mongo
// repositories, with a short-TTL Redis cache on resolved calendars.
type DefaultService struct {
	PackageRepo pkgRepo.PackageRepository
	DayOffRepo  dayoffRepo.DayOffRepository
	SlotRepo    slotRepo.SlotRepository
	Cache       *redis.Client
}
