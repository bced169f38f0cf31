// File: database/repository/slots/interface.go
package slotRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"venuebook/database"
	"venuebook/models"
)

// SlotRepository is the pull-path slot source: the last snapshot the room
// feed wrote for each (package, date). The live push path bypasses it.
type SlotRepository interface {
	GetAvailableSlots(ctx context.Context, packageID, date string) ([]models.TimeSlot, error)
	ReplaceForDate(ctx context.Context, packageID, date string, slots []models.TimeSlot) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	db := database.MongoClient.Database("venuebook")
	return &mongoSlotRepo{
		coll: db.Collection("slots"),
	}
}
