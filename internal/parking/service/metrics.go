package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK       = "ok"
	resultConflict = "conflict"
	resultNotFound = "not_found"
	resultInvalid  = "invalid"
	resultError    = "error"
)

var (
	recommendations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parking_recommendations_total",
		Help: "Recommendation requests grouped by outcome.",
	}, []string{"result"})

	bookingStarts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parking_booking_starts_total",
		Help: "Booking start attempts grouped by outcome.",
	}, []string{"result"})

	bookingEnds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parking_booking_ends_total",
		Help: "Booking end attempts grouped by outcome.",
	}, []string{"result"})

	bookingAmountDue = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "parking_booking_amount_due",
		Help:    "Amount billed per completed booking.",
		Buckets: []float64{0, 1, 2.5, 5, 10, 20, 50, 100},
	})

	bookingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "parking_booking_duration_minutes",
		Help:    "Length of completed bookings in minutes.",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 240, 480, 1440},
	})
)
