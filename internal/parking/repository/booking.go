package repository

import (
	"context"
	"fmt"
	"time"

	parkingerrors "parkwise/internal/parking/errors"
	"parkwise/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	// Complete closes an active booking. A booking that is no longer active
	// yields ErrConflict, so only one caller ever completes it.
	Complete(ctx context.Context, id string, endTime time.Time) error
}

type bookingRepository struct {
	store Store
}

func NewBookingRepository(store Store) BookingRepository {
	return &bookingRepository{store: store}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if booking.StartTime.IsZero() {
		booking.StartTime = booking.CreatedAt
	}
	if booking.Status == "" {
		booking.Status = model.BookingStatusActive
	}

	id, err := r.store.Insert(ctx, BookingCollection, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	booking.ID = id
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	filter, err := ByID(id)
	if err != nil {
		return nil, err
	}

	var booking model.Booking
	if err := r.store.FindOne(ctx, BookingCollection, filter, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Complete(ctx context.Context, id string, endTime time.Time) error {
	matched, err := r.store.UpdateFieldsWhere(ctx, BookingCollection, id,
		bson.M{"status": model.BookingStatusActive},
		bson.M{"status": model.BookingStatusCompleted, "end_time": endTime},
	)
	if err != nil {
		return fmt.Errorf("failed to complete booking: %w", err)
	}
	if !matched {
		return fmt.Errorf("%w: booking %s already closed", parkingerrors.ErrConflict, id)
	}
	return nil
}
