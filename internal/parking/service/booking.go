package service

import (
	"context"
	"errors"
	"math"
	"time"

	parkingerrors "parkwise/internal/parking/errors"
	"parkwise/internal/parking/events"
	"parkwise/internal/parking/repository"
	"parkwise/internal/parking/validator"
	"parkwise/pkg/config"
	mongotx "parkwise/pkg/db/mongo"
	apperrors "parkwise/pkg/errors"
	"parkwise/pkg/model"
	"parkwise/pkg/sanitizer"
)

type BookingService interface {
	Start(ctx context.Context, req *model.StartBookingRequest) (*model.Booking, error)
	End(ctx context.Context, req *model.EndBookingRequest) (*model.BookingBill, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
}

type bookingService struct {
	lotRepo     repository.LotRepository
	spotRepo    repository.SpotRepository
	bookingRepo repository.BookingRepository
	txManager   mongotx.TransactionManager
	publisher   events.BookingPublisher
	validator   *validator.ParkingValidator
	clock       Clock
	cfg         *config.Config
}

func NewBookingService(
	lotRepo repository.LotRepository,
	spotRepo repository.SpotRepository,
	bookingRepo repository.BookingRepository,
	txManager mongotx.TransactionManager,
	publisher events.BookingPublisher,
	validator *validator.ParkingValidator,
	clock Clock,
	cfg *config.Config,
) BookingService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &bookingService{
		lotRepo:     lotRepo,
		spotRepo:    spotRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		publisher:   publisher,
		validator:   validator,
		clock:       clock,
		cfg:         cfg,
	}
}

func (s *bookingService) Start(ctx context.Context, req *model.StartBookingRequest) (booking *model.Booking, err error) {
	defer func() {
		bookingStarts.WithLabelValues(resultOf(err)).Inc()
	}()

	s.sanitizeStart(req)
	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Booking start validation failed", "error", err)
		return nil, validationFailure(err)
	}

	if _, err := s.lotRepo.FindByID(ctx, req.LotID); err != nil {
		return nil, lookupFailure(err, "Lot", req.LotID)
	}

	spot, err := s.spotRepo.FindByID(ctx, req.SpotID)
	if err != nil {
		return nil, lookupFailure(err, "Spot", req.SpotID)
	}
	if spot.LotID != req.LotID {
		return nil, apperrors.InvalidInput("Spot does not belong to lot")
	}
	if spot.IsOccupied {
		return nil, apperrors.Conflict("Spot already occupied")
	}

	booking = &model.Booking{
		LotID:        req.LotID,
		SpotID:       req.SpotID,
		VehiclePlate: req.VehiclePlate,
		UserName:     req.UserName,
		StartTime:    s.now(),
		Status:       model.BookingStatusActive,
	}

	err = s.txManager.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		if err := s.spotRepo.Occupy(txCtx, req.SpotID); err != nil {
			if errors.Is(err, parkingerrors.ErrConflict) {
				return apperrors.Conflict("Spot already occupied")
			}
			return storeFailure(err, "Failed to reserve spot")
		}

		if err := s.bookingRepo.Create(txCtx, booking); err != nil {
			if !s.txManager.Transactional() {
				s.releaseSpot(ctx, req.SpotID, "compensate_failed_start")
			}
			if errors.Is(err, parkingerrors.ErrConflict) {
				return apperrors.Conflict("Spot already occupied")
			}
			return storeFailure(err, "Failed to create booking")
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Warn("Failed to start booking",
			"lot_id", req.LotID,
			"spot_id", req.SpotID,
			"error", err,
		)
		return nil, err
	}

	s.cfg.Log.Info("Booking started",
		"booking_id", booking.ID,
		"lot_id", booking.LotID,
		"spot_id", booking.SpotID,
	)

	if pubErr := s.publisher.BookingStarted(ctx, booking); pubErr != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"booking_id", booking.ID,
			"event", events.EventBookingStarted,
			"error", pubErr,
		)
	}
	return booking, nil
}

func (s *bookingService) End(ctx context.Context, req *model.EndBookingRequest) (bill *model.BookingBill, err error) {
	defer func() {
		bookingEnds.WithLabelValues(resultOf(err)).Inc()
	}()

	req.BookingID = sanitizer.SanitizeID(req.BookingID)
	if err := s.validator.Validate(req); err != nil {
		return nil, validationFailure(err)
	}

	booking, err := s.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, lookupFailure(err, "Booking", req.BookingID)
	}
	if !booking.IsActive() {
		return nil, apperrors.Conflict("Booking already closed")
	}

	price := s.resolvePricePerHour(ctx, booking.LotID)

	end := s.now()
	start := booking.StartTime
	if start.IsZero() {
		start = end
	}
	minutes := max(end.Sub(start).Minutes(), 0)

	bill = &model.BookingBill{
		DurationMinutes: minutes,
		AmountDue:       roundCents(minutes / 60 * price),
		Currency:        config.Currency,
	}

	if err := s.bookingRepo.Complete(ctx, booking.ID, end); err != nil {
		if errors.Is(err, parkingerrors.ErrConflict) {
			return nil, apperrors.Conflict("Booking already closed")
		}
		s.cfg.Log.Error("Failed to complete booking", "booking_id", booking.ID, "error", err)
		return nil, storeFailure(err, "Failed to close booking")
	}
	booking.Status = model.BookingStatusCompleted
	booking.EndTime = &end

	// The bill stands even if the spot cannot be freed.
	s.releaseSpot(ctx, booking.SpotID, "end_booking")

	bookingAmountDue.Observe(bill.AmountDue)
	bookingDuration.Observe(bill.DurationMinutes)
	s.cfg.Log.Info("Booking ended",
		"booking_id", booking.ID,
		"duration_minutes", bill.DurationMinutes,
		"amount_due", bill.AmountDue,
	)

	if pubErr := s.publisher.BookingEnded(ctx, booking, bill); pubErr != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"booking_id", booking.ID,
			"event", events.EventBookingEnded,
			"error", pubErr,
		)
	}
	return bill, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	id = sanitizer.SanitizeID(id)
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(err, "Booking", id)
	}
	return booking, nil
}

// --- Helpers ---

func (s *bookingService) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Millisecond)
}

func (s *bookingService) sanitizeStart(req *model.StartBookingRequest) {
	req.LotID = sanitizer.SanitizeID(req.LotID)
	req.SpotID = sanitizer.SanitizeID(req.SpotID)
	req.VehiclePlate = sanitizer.SanitizePlate(req.VehiclePlate)
	req.UserName = sanitizer.NormalizeName(req.UserName)
}

// resolvePricePerHour falls back to the configured default when the lot
// cannot be read.
func (s *bookingService) resolvePricePerHour(ctx context.Context, lotID string) float64 {
	if lotID == "" {
		return s.cfg.DefaultPricePerHour
	}
	lot, err := s.lotRepo.FindByID(ctx, lotID)
	if err != nil {
		s.cfg.Log.Warn("Using default price, lot lookup failed",
			"lot_id", lotID,
			"default_price_per_hour", s.cfg.DefaultPricePerHour,
			"error", err,
		)
		return s.cfg.DefaultPricePerHour
	}
	return lot.PricePerHour
}

// releaseSpot frees a spot, logging instead of failing.
func (s *bookingService) releaseSpot(ctx context.Context, spotID, operation string) {
	if err := s.spotRepo.Release(ctx, spotID); err != nil {
		s.cfg.Log.Warn("Failed to release spot",
			"spot_id", spotID,
			"operation", operation,
			"error", err,
		)
	}
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
