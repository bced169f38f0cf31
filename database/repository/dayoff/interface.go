// File: database/repository/dayoff/interface.go
package dayoffRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"venuebook/database"
	"venuebook/models"
)

type DayOffRepository interface {
	Create(ctx context.Context, rec models.DayOffRecord) (string, error)
	GetByID(ctx context.Context, dayOffID string) (*models.DayOffRecord, error)
	ListByLocation(ctx context.Context, locationID string) ([]models.DayOffRecord, error)
	DeleteByID(ctx context.Context, locationID, dayOffID string) error
}

type mongoDayOffRepo struct {
	coll *mongo.Collection
}

// NewMongoDayOffRepo constructs a new MongoDB DayOffRepository.
func NewMongoDayOffRepo() DayOffRepository {
	db := database.MongoClient.Database("venuebook")
	return &mongoDayOffRepo{
		coll: db.Collection("dayoffs"),
	}
}
