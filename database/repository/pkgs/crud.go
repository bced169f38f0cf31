// File: database/repository/pkgs/crud.go
package pkgRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"venuebook/models"
)

func (r *mongoPackageRepo) Create(ctx context.Context, pkg models.Package) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if pkg.ID == "" {
		pkg.ID = uuid.New().String()
	}
	if _, err := r.packages.InsertOne(ctx, pkg); err != nil {
		return "", fmt.Errorf("failed to insert package: %w", err)
	}
	return pkg.ID, nil
}

func (r *mongoPackageRepo) GetByID(ctx context.Context, packageID string) (*models.Package, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pkg models.Package
	err := r.packages.FindOne(ctx, bson.M{"id": packageID}).Decode(&pkg)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("package %s not found", packageID)
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *mongoPackageRepo) ListByLocation(ctx context.Context, locationID string) ([]models.Package, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.packages.Find(ctx, bson.M{"locationId": locationID, "active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pkgs []models.Package
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *mongoPackageRepo) GetLocation(ctx context.Context, locationID string) (*models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var loc models.Location
	err := r.locations.FindOne(ctx, bson.M{"id": locationID}).Decode(&loc)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("location %s not found", locationID)
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *mongoPackageRepo) UpsertLocation(ctx context.Context, loc models.Location) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.locations.ReplaceOne(ctx, bson.M{"id": loc.ID}, loc, opts)
	return err
}
