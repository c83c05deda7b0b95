package model

import (
	"time"
)

const (
	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID           string     `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	LotID        string     `json:"lot_id" bson:"lot_id" validate:"required,mongodb"`
	SpotID       string     `json:"spot_id" bson:"spot_id" validate:"required,mongodb"`
	VehiclePlate string     `json:"vehicle_plate" bson:"vehicle_plate" validate:"required,max=32,plate"`
	UserName     string     `json:"user_name,omitempty" bson:"user_name,omitempty" validate:"omitempty,max=100"`
	StartTime    time.Time  `json:"start_time" bson:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty" bson:"end_time,omitempty"`
	Status       string     `json:"status" bson:"status" validate:"required,oneof=active completed cancelled"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
}

func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusActive
}

// BookingBill is the result of closing a booking.
type BookingBill struct {
	DurationMinutes float64 `json:"duration_minutes"`
	AmountDue       float64 `json:"amount_due"`
	Currency        string  `json:"currency"`
}
