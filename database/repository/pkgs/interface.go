// File: database/repository/pkgs/interface.go
package pkgRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"venuebook/database"
	"venuebook/models"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg models.Package) (string, error)
	GetByID(ctx context.Context, packageID string) (*models.Package, error)
	ListByLocation(ctx context.Context, locationID string) ([]models.Package, error)
	GetLocation(ctx context.Context, locationID string) (*models.Location, error)
	UpsertLocation(ctx context.Context, loc models.Location) error
}

type mongoPackageRepo struct {
	packages  *mongo.Collection
	locations *mongo.Collection
}

// NewMongoPackageRepo constructs a new MongoDB PackageRepository.
func NewMongoPackageRepo() PackageRepository {
	db := database.MongoClient.Database("venuebook")
	return &mongoPackageRepo{
		packages:  db.Collection("packages"),
		locations: db.Collection("locations"),
	}
}
