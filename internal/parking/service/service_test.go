package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	parkingerrors "parkwise/internal/parking/errors"
	"parkwise/internal/parking/repository"
	"parkwise/internal/parking/validator"
	"parkwise/pkg/config"
	mongotx "parkwise/pkg/db/mongo"
	apperrors "parkwise/pkg/errors"
	"parkwise/pkg/logger"
	"parkwise/pkg/model"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	store     *memStore
	clock     *stubClock
	publisher *recordingPublisher
	cfg       *config.Config

	lotRepo  repository.LotRepository
	spotRepo repository.SpotRepository

	lots     LotService
	recs     RecommendationService
	bookings BookingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{
		Log:                 logger.Discard(),
		DefaultPricePerHour: config.DefaultPricePerHour,
	}
	store := newMemStore()
	clock := &stubClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	publisher := &recordingPublisher{}
	v := validator.NewParkingValidator(cfg.Log)

	lotRepo := repository.NewLotRepository(store)
	spotRepo := repository.NewSpotRepository(store)
	bookingRepo := repository.NewBookingRepository(store)

	return &fixture{
		store:     store,
		clock:     clock,
		publisher: publisher,
		cfg:       cfg,
		lotRepo:   lotRepo,
		spotRepo:  spotRepo,
		lots:      NewLotService(lotRepo, spotRepo, v, cfg),
		recs:      NewRecommendationService(lotRepo, spotRepo, v, cfg),
		bookings: NewBookingService(lotRepo, spotRepo, bookingRepo,
			mongotx.NewTransactionManager(nil, false), publisher, v, clock, cfg),
	}
}

func (f *fixture) seed(t *testing.T) string {
	t.Helper()
	res, err := f.lots.Seed(context.Background())
	require.NoError(t, err)
	require.True(t, res.Seeded)
	return res.LotID
}

// spotByNumber returns the id of the demo spot with the given label.
func (f *fixture) spotByNumber(t *testing.T, lotID, number string) string {
	t.Helper()
	spots, err := f.spotRepo.FindAvailable(context.Background(), lotID, "")
	require.NoError(t, err)
	for _, s := range spots {
		if s.SpotNumber == number {
			return s.ID
		}
	}
	t.Fatalf("spot %s not found among free spots", number)
	return ""
}

func (f *fixture) start(t *testing.T, lotID, spotID string) *model.Booking {
	t.Helper()
	booking, err := f.bookings.Start(context.Background(), &model.StartBookingRequest{
		LotID:        lotID,
		SpotID:       spotID,
		VehiclePlate: "7abc123",
	})
	require.NoError(t, err)
	return booking
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, status, apperrors.AsAppError(err).StatusCode(), "error: %v", err)
}

func floatPtr(f float64) *float64 { return &f }

// ────────────────────────────────────────────────
// Lot catalog
// ────────────────────────────────────────────────

func TestSeed_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.lots.Seed(ctx)
	require.NoError(t, err)
	require.True(t, first.Seeded)
	require.NotEmpty(t, first.LotID)
	require.Equal(t, "ok", first.Status)

	second, err := f.lots.Seed(ctx)
	require.NoError(t, err)
	require.False(t, second.Seeded)
	require.Empty(t, second.LotID)

	count, err := f.lotRepo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestSeed_SpotMix(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)

	spots, err := f.spotRepo.FindAvailable(context.Background(), lotID, "")
	require.NoError(t, err)
	require.Len(t, spots, 12)

	byType := map[string][]string{}
	for _, s := range spots {
		byType[s.VehicleType] = append(byType[s.VehicleType], s.SpotNumber)
	}
	require.Equal(t, []string{"3", "7"}, byType[model.VehicleEV])
	require.Equal(t, []string{"5"}, byType[model.VehicleAccessible])
	require.Len(t, byType[model.VehicleCar], 9)
}

func TestSeed_StoreUnavailable(t *testing.T) {
	f := newFixture(t)
	f.store.notConnected = true

	_, err := f.lots.Seed(context.Background())
	requireStatus(t, err, http.StatusInternalServerError)
	require.Equal(t, "Database not available", apperrors.AsAppError(err).Message)
}

func TestListWithAvailability(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)

	lots, err := f.lots.ListWithAvailability(context.Background())
	require.NoError(t, err)
	require.Len(t, lots, 1)
	require.Equal(t, 12, lots[0].AvailableSpots)
	require.Equal(t, "Downtown Central", lots[0].Name)

	f.start(t, lotID, f.spotByNumber(t, lotID, "5"))

	lots, err = f.lots.ListWithAvailability(context.Background())
	require.NoError(t, err)
	require.Equal(t, 11, lots[0].AvailableSpots)
}

func TestListWithAvailability_ClampsAtZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	lot := &model.ParkingLot{Name: "Tiny", Latitude: 1, Longitude: 1, PricePerHour: 1, TotalSpots: 1}
	require.NoError(t, f.lotRepo.Create(ctx, lot))
	for _, n := range []string{"1", "2"} {
		require.NoError(t, f.spotRepo.Create(ctx, &model.ParkingSpot{
			LotID: lot.ID, SpotNumber: n, VehicleType: model.VehicleCar, IsOccupied: true,
		}))
	}

	lots, err := f.lots.ListWithAvailability(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, lots[0].AvailableSpots)
}

// ────────────────────────────────────────────────
// Recommendation
// ────────────────────────────────────────────────

func TestRecommend_NoLots(t *testing.T) {
	f := newFixture(t)

	_, err := f.recs.Recommend(context.Background(), &model.RecommendRequest{Lat: floatPtr(37.77), Lng: floatPtr(-122.41)})
	requireStatus(t, err, http.StatusNotFound)
	require.Equal(t, "No parking lots available. Seed data first.", apperrors.AsAppError(err).Message)
}

func TestRecommend_FilterByVehicleType(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)

	rec, err := f.recs.Recommend(context.Background(), &model.RecommendRequest{
		Lat: floatPtr(37.78), Lng: floatPtr(-122.42), VehicleType: "ev",
	})
	require.NoError(t, err)
	require.Equal(t, lotID, rec.LotID)
	require.Equal(t, "Downtown Central", rec.LotName)
	require.Equal(t, "3", rec.SpotNumber)
	require.Equal(t, RecommendationReason, rec.Reason)

	spot, err := f.spotRepo.FindByID(context.Background(), rec.SpotID)
	require.NoError(t, err)
	require.Equal(t, model.VehicleEV, spot.VehicleType)
}

func TestRecommend_AliasIsNormalized(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	rec, err := f.recs.Recommend(context.Background(), &model.RecommendRequest{
		Lat: floatPtr(37.78), Lng: floatPtr(-122.42), VehicleType: "Electric",
	})
	require.NoError(t, err)
	require.Equal(t, "3", rec.SpotNumber)
}

func TestRecommend_EVSpotsTaken(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)

	f.start(t, lotID, f.spotByNumber(t, lotID, "3"))
	f.start(t, lotID, f.spotByNumber(t, lotID, "7"))

	_, err := f.recs.Recommend(context.Background(), &model.RecommendRequest{
		Lat: floatPtr(37.78), Lng: floatPtr(-122.42), VehicleType: model.VehicleEV,
	})
	requireStatus(t, err, http.StatusNotFound)
	require.Equal(t, "No suitable spots found", apperrors.AsAppError(err).Message)

	rec, err := f.recs.Recommend(context.Background(), &model.RecommendRequest{
		Lat: floatPtr(37.78), Lng: floatPtr(-122.42), VehicleType: model.VehicleCar,
	})
	require.NoError(t, err)
	require.Equal(t, "1", rec.SpotNumber)
}

func TestRecommend_UnknownTypeMatchesNothing(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	_, err := f.recs.Recommend(context.Background(), &model.RecommendRequest{
		Lat: floatPtr(37.78), Lng: floatPtr(-122.42), VehicleType: "truck",
	})
	requireStatus(t, err, http.StatusNotFound)
}

func TestSelectSpot_EmptyResultSentinels(t *testing.T) {
	f := newFixture(t)
	svc := f.recs.(*recommendationService)

	_, _, _, err := svc.selectSpot(context.Background(), 37.77, -122.41, model.VehicleCar)
	require.ErrorIs(t, err, parkingerrors.ErrNoLots)

	f.seed(t)
	_, _, _, err = svc.selectSpot(context.Background(), 37.77, -122.41, "truck")
	require.ErrorIs(t, err, parkingerrors.ErrNoSuitableSpot)
}

func TestRecommendationFailure(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{name: "no lots", err: parkingerrors.ErrNoLots, status: http.StatusNotFound, detail: "No parking lots available. Seed data first."},
		{name: "no spot", err: parkingerrors.ErrNoSuitableSpot, status: http.StatusNotFound, detail: "No suitable spots found"},
		{name: "store down", err: parkingerrors.ErrNotConnected, status: http.StatusInternalServerError, detail: "Database not available"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := recommendationFailure(tt.err)
			require.Equal(t, tt.status, appErr.StatusCode())
			require.Equal(t, tt.detail, appErr.Message)
		})
	}
}

func TestRecommend_ScoreTradesDistanceForAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	addLot := func(name string, lat float64, free int) string {
		lot := &model.ParkingLot{Name: name, Latitude: lat, Longitude: 0, PricePerHour: 2, TotalSpots: max(free, 1)}
		require.NoError(t, f.lotRepo.Create(ctx, lot))
		for i := 0; i < free; i++ {
			require.NoError(t, f.spotRepo.Create(ctx, &model.ParkingSpot{
				LotID: lot.ID, SpotNumber: name, VehicleType: model.VehicleCar,
			}))
		}
		return lot.ID
	}

	// 0.01° of latitude is ~1.11 km: near scores 1.11-0.05, far scores 2.22-1.5.
	addLot("near", 0.01, 1)
	farID := addLot("far", 0.02, 30)

	rec, err := f.recs.Recommend(ctx, &model.RecommendRequest{Lat: floatPtr(0), Lng: floatPtr(0)})
	require.NoError(t, err)
	require.Equal(t, farID, rec.LotID)
}

func TestRecommend_TieKeepsFirstLot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"first", "second"} {
		lot := &model.ParkingLot{Name: name, Latitude: 10, Longitude: 10, PricePerHour: 1, TotalSpots: 1}
		require.NoError(t, f.lotRepo.Create(ctx, lot))
		require.NoError(t, f.spotRepo.Create(ctx, &model.ParkingSpot{LotID: lot.ID, SpotNumber: "1", VehicleType: model.VehicleCar}))
		ids = append(ids, lot.ID)
	}

	rec, err := f.recs.Recommend(ctx, &model.RecommendRequest{Lat: floatPtr(10.5), Lng: floatPtr(10.5)})
	require.NoError(t, err)
	require.Equal(t, ids[0], rec.LotID)
}

func TestRecommend_InvalidCoordinates(t *testing.T) {
	f := newFixture(t)

	_, err := f.recs.Recommend(context.Background(), &model.RecommendRequest{Lat: floatPtr(120), Lng: floatPtr(0)})
	requireStatus(t, err, http.StatusUnprocessableEntity)

	_, err = f.recs.Recommend(context.Background(), &model.RecommendRequest{Lng: floatPtr(0)})
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

// ────────────────────────────────────────────────
// Booking lifecycle
// ────────────────────────────────────────────────

func TestStart_OccupiesSpotAndPublishes(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)
	spotID := f.spotByNumber(t, lotID, "5")

	booking := f.start(t, lotID, spotID)
	require.NotEmpty(t, booking.ID)
	require.Equal(t, model.BookingStatusActive, booking.Status)
	require.Equal(t, "7ABC123", booking.VehiclePlate)
	require.True(t, booking.StartTime.Equal(f.clock.Now()))

	spot, err := f.spotRepo.FindByID(context.Background(), spotID)
	require.NoError(t, err)
	require.True(t, spot.IsOccupied)
	require.Equal(t, []string{booking.ID}, f.publisher.started)
}

func TestStart_OccupiedSpotConflicts(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)
	spotID := f.spotByNumber(t, lotID, "1")
	f.start(t, lotID, spotID)

	_, err := f.bookings.Start(context.Background(), &model.StartBookingRequest{
		LotID: lotID, SpotID: spotID, VehiclePlate: "8XYZ999",
	})
	requireStatus(t, err, http.StatusConflict)
	require.Equal(t, "Spot already occupied", apperrors.AsAppError(err).Message)
}

func TestStart_ConcurrentRequestsBookOnce(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)
	spotID := f.spotByNumber(t, lotID, "2")

	const workers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.bookings.Start(context.Background(), &model.StartBookingRequest{
				LotID: lotID, SpotID: spotID, VehiclePlate: "RACE1",
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if apperrors.AsAppError(err).StatusCode() == http.StatusConflict {
				conflicts++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, successes)
	require.Equal(t, workers-1, conflicts)
}

func TestStart_LookupFailures(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)
	spotID := f.spotByNumber(t, lotID, "1")
	missing := "65a1b2c3d4e5f60718293a4b"

	other := &model.ParkingLot{Name: "Other", Latitude: 1, Longitude: 1, PricePerHour: 1, TotalSpots: 1}
	require.NoError(t, f.lotRepo.Create(context.Background(), other))

	tests := []struct {
		name   string
		lotID  string
		spotID string
		status int
		detail string
	}{
		{name: "malformed lot id", lotID: "lot-1", spotID: spotID, status: http.StatusBadRequest, detail: "Invalid lot id"},
		{name: "unknown lot", lotID: missing, spotID: spotID, status: http.StatusNotFound, detail: "Lot not found"},
		{name: "malformed spot id", lotID: lotID, spotID: "spot-1", status: http.StatusBadRequest, detail: "Invalid spot id"},
		{name: "unknown spot", lotID: lotID, spotID: missing, status: http.StatusNotFound, detail: "Spot not found"},
		{name: "spot of another lot", lotID: other.ID, spotID: spotID, status: http.StatusBadRequest, detail: "Spot does not belong to lot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.bookings.Start(context.Background(), &model.StartBookingRequest{
				LotID: tt.lotID, SpotID: tt.spotID, VehiclePlate: "7ABC123",
			})
			requireStatus(t, err, tt.status)
			require.Equal(t, tt.detail, apperrors.AsAppError(err).Message)
		})
	}
}

func TestStart_InvalidPlate(t *testing.T) {
	f := newFixture(t)

	_, err := f.bookings.Start(context.Background(), &model.StartBookingRequest{
		LotID: "65a1b2c3d4e5f60718293a4b", SpotID: "65a1b2c3d4e5f60718293a4c", VehiclePlate: "7AB\a123",
	})
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

func TestStart_AcceptsInternationalPlates(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)

	plates := map[string]string{
		"1": "ÖL 123",
		"2": "京A12345",
		"5": "ab/123",
		"6": "B-MW 1234X-LONGPLATE!",
	}
	for number, plate := range plates {
		spotID := f.spotByNumber(t, lotID, number)
		started, err := f.bookings.Start(context.Background(), &model.StartBookingRequest{
			LotID: lotID, SpotID: spotID, VehiclePlate: plate,
		})
		require.NoError(t, err, "plate %q", plate)

		stored, err := f.bookings.GetByID(context.Background(), started.ID)
		require.NoError(t, err)
		require.Equal(t, strings.ToUpper(plate), stored.VehiclePlate)
	}
}

func TestStart_ReleasesSpotWhenBookingInsertFails(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)
	spotID := f.spotByNumber(t, lotID, "4")
	f.store.insertErr[repository.BookingCollection] = errors.New("write concern timeout")

	_, err := f.bookings.Start(context.Background(), &model.StartBookingRequest{
		LotID: lotID, SpotID: spotID, VehiclePlate: "7ABC123",
	})
	requireStatus(t, err, http.StatusInternalServerError)

	spot, err := f.spotRepo.FindByID(context.Background(), spotID)
	require.NoError(t, err)
	require.False(t, spot.IsOccupied)
	require.Empty(t, f.publisher.started)
}

func TestStart_PublishFailureIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("broker down")
	lotID := f.seed(t)

	booking := f.start(t, lotID, f.spotByNumber(t, lotID, "1"))
	require.NotEmpty(t, booking.ID)
}

func TestEnd_ImmediateIsFree(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)
	booking := f.start(t, lotID, f.spotByNumber(t, lotID, "5"))

	bill, err := f.bookings.End(context.Background(), &model.EndBookingRequest{BookingID: booking.ID})
	require.NoError(t, err)
	require.InDelta(t, 0, bill.DurationMinutes, 1e-9)
	require.Equal(t, 0.0, bill.AmountDue)
	require.Equal(t, "USD", bill.Currency)
}

func TestEnd_OneHourAtFivePerHour(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)
	spotID := f.spotByNumber(t, lotID, "1")
	booking := f.start(t, lotID, spotID)

	f.clock.Advance(60 * time.Minute)

	bill, err := f.bookings.End(context.Background(), &model.EndBookingRequest{BookingID: booking.ID})
	require.NoError(t, err)
	require.InDelta(t, 60, bill.DurationMinutes, 1e-9)
	require.Equal(t, 5.00, bill.AmountDue)

	spot, err := f.spotRepo.FindByID(context.Background(), spotID)
	require.NoError(t, err)
	require.False(t, spot.IsOccupied)

	stored, err := f.bookings.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	require.Equal(t, model.BookingStatusCompleted, stored.Status)
	require.NotNil(t, stored.EndTime)
	require.True(t, stored.EndTime.Equal(f.clock.Now()))

	require.Len(t, f.publisher.ended, 1)
}

func TestEnd_RoundsToCents(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)
	booking := f.start(t, lotID, f.spotByNumber(t, lotID, "1"))

	// 7 minutes at 5.0/h is 0.58333...
	f.clock.Advance(7 * time.Minute)

	bill, err := f.bookings.End(context.Background(), &model.EndBookingRequest{BookingID: booking.ID})
	require.NoError(t, err)
	require.Equal(t, 0.58, bill.AmountDue)
}

func TestEnd_TwiceConflicts(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)
	booking := f.start(t, lotID, f.spotByNumber(t, lotID, "1"))
	f.clock.Advance(30 * time.Minute)

	_, err := f.bookings.End(context.Background(), &model.EndBookingRequest{BookingID: booking.ID})
	require.NoError(t, err)

	_, err = f.bookings.End(context.Background(), &model.EndBookingRequest{BookingID: booking.ID})
	requireStatus(t, err, http.StatusConflict)
	require.Equal(t, "Booking already closed", apperrors.AsAppError(err).Message)
	require.Len(t, f.publisher.ended, 1)
}

func TestEnd_LookupFailures(t *testing.T) {
	f := newFixture(t)

	_, err := f.bookings.End(context.Background(), &model.EndBookingRequest{BookingID: "booking-1"})
	requireStatus(t, err, http.StatusBadRequest)
	require.Equal(t, "Invalid booking id", apperrors.AsAppError(err).Message)

	_, err = f.bookings.End(context.Background(), &model.EndBookingRequest{BookingID: "65a1b2c3d4e5f60718293a4b"})
	requireStatus(t, err, http.StatusNotFound)

	_, err = f.bookings.End(context.Background(), &model.EndBookingRequest{})
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

func TestEnd_DefaultPriceWhenLotMissing(t *testing.T) {
	f := newFixture(t)
	f.cfg.DefaultPricePerHour = 6.0
	ctx := context.Background()

	bookingRepo := repository.NewBookingRepository(f.store)
	orphan := &model.Booking{
		LotID:        "65a1b2c3d4e5f60718293a4b",
		SpotID:       "65a1b2c3d4e5f60718293a4c",
		VehiclePlate: "ORPHAN1",
		StartTime:    f.clock.Now(),
		Status:       model.BookingStatusActive,
	}
	require.NoError(t, bookingRepo.Create(ctx, orphan))
	f.clock.Advance(30 * time.Minute)

	bill, err := f.bookings.End(ctx, &model.EndBookingRequest{BookingID: orphan.ID})
	require.NoError(t, err)
	require.Equal(t, 3.00, bill.AmountDue)
}

func TestEnd_SpotReleaseFailureStillBills(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)
	booking := f.start(t, lotID, f.spotByNumber(t, lotID, "1"))
	f.store.releaseErr = errors.New("network blip")
	f.clock.Advance(60 * time.Minute)

	bill, err := f.bookings.End(context.Background(), &model.EndBookingRequest{BookingID: booking.ID})
	require.NoError(t, err)
	require.Equal(t, 5.00, bill.AmountDue)
}

func TestGetByID(t *testing.T) {
	f := newFixture(t)
	lotID := f.seed(t)
	booking := f.start(t, lotID, f.spotByNumber(t, lotID, "1"))

	got, err := f.bookings.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	require.Equal(t, booking.SpotID, got.SpotID)

	_, err = f.bookings.GetByID(context.Background(), " ")
	requireStatus(t, err, http.StatusBadRequest)
}

// ────────────────────────────────────────────────
// Diagnostics
// ────────────────────────────────────────────────

func TestDiagnostics(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	diag := NewDiagnosticsService(f.store, f.cfg)

	got := diag.Diagnostics(context.Background())
	require.Equal(t, "Running", got.Backend)
	require.Equal(t, "Connected", got.Database)
	require.ElementsMatch(t, []string{repository.LotCollection, repository.SpotCollection}, got.Collections)
	require.NoError(t, diag.Ready(context.Background()))

	f.store.notConnected = true
	got = diag.Diagnostics(context.Background())
	require.Equal(t, "Not Available", got.Database)
	require.Empty(t, got.Collections)
	require.Error(t, diag.Ready(context.Background()))
}

func TestTruncate_KeepsWholeRunes(t *testing.T) {
	msg := strings.Repeat("é", 60)
	got := truncate(msg, maxDiagnosticError)
	require.True(t, utf8.ValidString(got))
	require.Equal(t, maxDiagnosticError, utf8.RuneCountInString(got))

	require.Equal(t, "short", truncate("short", maxDiagnosticError))
}
