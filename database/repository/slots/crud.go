// File: database/repository/slots/crud.go
package slotRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"venuebook/models"
)

type slotDocument struct {
	PackageID string            `bson:"packageId"`
	Date      string            `bson:"date"`
	Slots     []models.TimeSlot `bson:"slots"`
	UpdatedAt time.Time         `bson:"updatedAt"`
}

func (r *mongoSlotRepo) GetAvailableSlots(ctx context.Context, packageID, date string) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc slotDocument
	err := r.coll.FindOne(ctx, bson.M{"packageId": packageID, "date": date}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return doc.Slots, nil
}

func (r *mongoSlotRepo) ReplaceForDate(ctx context.Context, packageID, date string, slots []models.TimeSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for i := range slots {
		if slots[i].ID == "" {
			slots[i].ID = uuid.New().String()
		}
		slots[i].Date = date
	}

	filter := bson.M{"packageId": packageID, "date": date}
	update := bson.M{"$set": slotDocument{
		PackageID: packageID,
		Date:      date,
		Slots:     slots,
		UpdatedAt: time.Now(),
	}}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
