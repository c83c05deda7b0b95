package events

import (
	"context"
	"fmt"
	"time"

	"parkwise/pkg/kafka"
	"parkwise/pkg/middleware"
	"parkwise/pkg/model"
)

const (
	EventBookingStarted = "booking.started"
	EventBookingEnded   = "booking.ended"

	SchemaVersion = "1"
)

// BookingEvent is the payload of every booking lifecycle message.
type BookingEvent struct {
	BookingID       string     `json:"booking_id"`
	LotID           string     `json:"lot_id"`
	SpotID          string     `json:"spot_id"`
	VehiclePlate    string     `json:"vehicle_plate"`
	Status          string     `json:"status"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *float64   `json:"duration_minutes,omitempty"`
	AmountDue       *float64   `json:"amount_due,omitempty"`
	Currency        string     `json:"currency,omitempty"`
	OccurredAt      time.Time  `json:"occurred_at"`
}

// BookingPublisher announces booking transitions. Callers treat failures
// as non-fatal.
type BookingPublisher interface {
	BookingStarted(ctx context.Context, booking *model.Booking) error
	BookingEnded(ctx context.Context, booking *model.Booking, bill *model.BookingBill) error
}

// MessagePublisher is the part of *kafka.Producer the publisher needs.
type MessagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type kafkaBookingPublisher struct {
	producer MessagePublisher
	source   string
	timeout  time.Duration
}

func NewKafkaBookingPublisher(producer MessagePublisher, source string, timeout time.Duration) BookingPublisher {
	return &kafkaBookingPublisher{
		producer: producer,
		source:   source,
		timeout:  timeout,
	}
}

func (p *kafkaBookingPublisher) BookingStarted(ctx context.Context, booking *model.Booking) error {
	event := newBookingEvent(booking)
	return p.publish(ctx, EventBookingStarted, booking.ID, event)
}

func (p *kafkaBookingPublisher) BookingEnded(ctx context.Context, booking *model.Booking, bill *model.BookingBill) error {
	event := newBookingEvent(booking)
	if bill != nil {
		event.DurationMinutes = &bill.DurationMinutes
		event.AmountDue = &bill.AmountDue
		event.Currency = bill.Currency
	}
	return p.publish(ctx, EventBookingEnded, booking.ID, event)
}

func (p *kafkaBookingPublisher) publish(ctx context.Context, eventType, key string, event BookingEvent) error {
	msg, err := kafka.NewMessage().
		WithKey(key).
		WithValue(event).
		WithEventType(eventType).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		WithSchemaVersion(SchemaVersion).
		WithSource(p.source).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build %s event: %w", eventType, err)
	}

	// The request may already be finishing; keep its values but not its deadline.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.producer.Publish(pubCtx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

func newBookingEvent(b *model.Booking) BookingEvent {
	return BookingEvent{
		BookingID:    b.ID,
		LotID:        b.LotID,
		SpotID:       b.SpotID,
		VehiclePlate: b.VehiclePlate,
		Status:       b.Status,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		OccurredAt:   time.Now().UTC(),
	}
}

type noopBookingPublisher struct{}

// NewNoopBookingPublisher is used when no Kafka brokers are configured.
func NewNoopBookingPublisher() BookingPublisher {
	return noopBookingPublisher{}
}

func (noopBookingPublisher) BookingStarted(context.Context, *model.Booking) error {
	return nil
}

func (noopBookingPublisher) BookingEnded(context.Context, *model.Booking, *model.BookingBill) error {
	return nil
}
