package repository

import (
	"context"
	"fmt"

	parkingerrors "parkwise/internal/parking/errors"
	"parkwise/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

type SpotRepository interface {
	Create(ctx context.Context, spot *model.ParkingSpot) error
	FindByID(ctx context.Context, id string) (*model.ParkingSpot, error)
	// FindAvailable lists free spots of a lot; an empty vehicleType matches any.
	FindAvailable(ctx context.Context, lotID string, vehicleType string) ([]*model.ParkingSpot, error)
	CountOccupied(ctx context.Context, lotID string) (int64, error)
	// Occupy flips is_occupied false→true, failing with ErrConflict if the
	// spot was already taken.
	Occupy(ctx context.Context, id string) error
	Release(ctx context.Context, id string) error
}

type spotRepository struct {
	store Store
}

func NewSpotRepository(store Store) SpotRepository {
	return &spotRepository{store: store}
}

func (r *spotRepository) Create(ctx context.Context, spot *model.ParkingSpot) error {
	id, err := r.store.Insert(ctx, SpotCollection, spot)
	if err != nil {
		return fmt.Errorf("failed to create parking spot: %w", err)
	}
	spot.ID = id
	return nil
}

func (r *spotRepository) FindByID(ctx context.Context, id string) (*model.ParkingSpot, error) {
	filter, err := ByID(id)
	if err != nil {
		return nil, err
	}

	var spot model.ParkingSpot
	if err := r.store.FindOne(ctx, SpotCollection, filter, &spot); err != nil {
		return nil, err
	}
	return &spot, nil
}

func (r *spotRepository) FindAvailable(ctx context.Context, lotID string, vehicleType string) ([]*model.ParkingSpot, error) {
	filter := bson.M{
		"lot_id":      lotID,
		"is_occupied": false,
	}
	if vehicleType != "" {
		filter["vehicle_type"] = vehicleType
	}

	var spots []*model.ParkingSpot
	if err := r.store.FindMany(ctx, SpotCollection, filter, &spots); err != nil {
		return nil, fmt.Errorf("failed to find available spots: %w", err)
	}
	return spots, nil
}

func (r *spotRepository) CountOccupied(ctx context.Context, lotID string) (int64, error) {
	n, err := r.store.Count(ctx, SpotCollection, bson.M{"lot_id": lotID, "is_occupied": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count occupied spots: %w", err)
	}
	return n, nil
}

func (r *spotRepository) Occupy(ctx context.Context, id string) error {
	matched, err := r.store.UpdateFieldsWhere(ctx, SpotCollection, id,
		bson.M{"is_occupied": false},
		bson.M{"is_occupied": true},
	)
	if err != nil {
		return fmt.Errorf("failed to occupy spot: %w", err)
	}
	if !matched {
		return fmt.Errorf("%w: spot %s already occupied", parkingerrors.ErrConflict, id)
	}
	return nil
}

func (r *spotRepository) Release(ctx context.Context, id string) error {
	if err := r.store.UpdateFields(ctx, SpotCollection, id, bson.M{"is_occupied": false}); err != nil {
		return fmt.Errorf("failed to release spot: %w", err)
	}
	return nil
}
