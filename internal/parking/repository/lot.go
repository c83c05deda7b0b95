package repository

import (
	"context"
	"fmt"

	"parkwise/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

type LotRepository interface {
	Create(ctx context.Context, lot *model.ParkingLot) error
	FindByID(ctx context.Context, id string) (*model.ParkingLot, error)
	FindAll(ctx context.Context) ([]*model.ParkingLot, error)
	Count(ctx context.Context) (int64, error)
}

type lotRepository struct {
	store Store
}

func NewLotRepository(store Store) LotRepository {
	return &lotRepository{store: store}
}

func (r *lotRepository) Create(ctx context.Context, lot *model.ParkingLot) error {
	id, err := r.store.Insert(ctx, LotCollection, lot)
	if err != nil {
		return fmt.Errorf("failed to create parking lot: %w", err)
	}
	lot.ID = id
	return nil
}

func (r *lotRepository) FindByID(ctx context.Context, id string) (*model.ParkingLot, error) {
	filter, err := ByID(id)
	if err != nil {
		return nil, err
	}

	var lot model.ParkingLot
	if err := r.store.FindOne(ctx, LotCollection, filter, &lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

func (r *lotRepository) FindAll(ctx context.Context) ([]*model.ParkingLot, error) {
	var lots []*model.ParkingLot
	if err := r.store.FindMany(ctx, LotCollection, bson.M{}, &lots); err != nil {
		return nil, fmt.Errorf("failed to find parking lots: %w", err)
	}
	return lots, nil
}

func (r *lotRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.store.Count(ctx, LotCollection, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count parking lots: %w", err)
	}
	return n, nil
}
