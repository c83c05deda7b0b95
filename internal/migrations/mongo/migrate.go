package mongo

import (
	"context"
	"fmt"

	"parkwise/internal/migrations/mongo/validators"
	"parkwise/internal/parking/repository"
	"parkwise/pkg/logger"
	"parkwise/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ParkingLotIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("uniq_lot_name").SetUnique(true),
		},
	}

	ParkingSpotIndexes = []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "lot_id", Value: 1},
			{Key: "is_occupied", Value: 1},
			{Key: "vehicle_type", Value: 1},
		}},
	}

	BookingIndexes = []mongo.IndexModel{
		{
			// At most one active booking per spot.
			Keys: bson.D{{Key: "spot_id", Value: 1}},
			Options: options.Index().
				SetName("uniq_active_booking_per_spot").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": model.BookingStatusActive}),
		},
		{Keys: bson.D{
			{Key: "lot_id", Value: 1},
			{Key: "start_time", Value: -1},
		}},
	}
)

type collectionDef struct {
	Name      string
	Indexes   []mongo.IndexModel
	Validator bson.M
}

func collections() []collectionDef {
	return []collectionDef{
		{Name: repository.LotCollection, Indexes: ParkingLotIndexes, Validator: validators.ParkingLotValidator},
		{Name: repository.SpotCollection, Indexes: ParkingSpotIndexes, Validator: validators.ParkingSpotValidator},
		{Name: repository.BookingCollection, Indexes: BookingIndexes, Validator: validators.BookingValidator},
	}
}

func RunMigration(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	log.Info("Running Mongo migrations", "database", db.Name())

	for _, def := range collections() {
		if err := ensureCollection(ctx, db, def.Name, def.Validator, log); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", def.Name, err)
		}
		if err := ensureIndexes(ctx, db, def.Name, def.Indexes, log); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", def.Name, err)
		}
	}

	log.Info("All migrations applied successfully")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M, log *logger.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	log.Info("Collection already exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		log.Warn("Failed updating validator", "collection", name, "error", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel, log *logger.Logger) error {
	names, err := db.Collection(name).Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	log.Info("Ensured indexes", "collection", name, "indexes", names)
	return nil
}
