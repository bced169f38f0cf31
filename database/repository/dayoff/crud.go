// File: database/repository/dayoff/crud.go
package dayoffRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"venuebook/models"
)

func (r *mongoDayOffRepo) Create(ctx context.Context, rec models.DayOffRecord) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return "", fmt.Errorf("failed to insert day-off: %w", err)
	}
	return rec.ID, nil
}

func (r *mongoDayOffRepo) GetByID(ctx context.Context, dayOffID string) (*models.DayOffRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.DayOffRecord
	err := r.coll.FindOne(ctx, bson.M{"id": dayOffID}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("day-off %s not found", dayOffID)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *mongoDayOffRepo) ListByLocation(ctx context.Context, locationID string) ([]models.DayOffRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"locationId": locationID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []models.DayOffRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *mongoDayOffRepo) DeleteByID(ctx context.Context, locationID, dayOffID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": dayOffID, "locationId": locationID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
