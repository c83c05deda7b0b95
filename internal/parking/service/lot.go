package service

import (
	"context"
	"errors"
	"strconv"

	parkingerrors "parkwise/internal/parking/errors"
	"parkwise/internal/parking/repository"
	"parkwise/internal/parking/validator"
	"parkwise/pkg/config"
	apperrors "parkwise/pkg/errors"
	"parkwise/pkg/model"
)

const seedStatusOK = "ok"

type LotService interface {
	// Seed inserts the demo lot and its spots unless any lot exists.
	Seed(ctx context.Context) (*model.SeedResult, error)
	ListWithAvailability(ctx context.Context) ([]model.LotAvailability, error)
}

type lotService struct {
	lotRepo   repository.LotRepository
	spotRepo  repository.SpotRepository
	validator *validator.ParkingValidator
	cfg       *config.Config
}

func NewLotService(
	lotRepo repository.LotRepository,
	spotRepo repository.SpotRepository,
	validator *validator.ParkingValidator,
	cfg *config.Config,
) LotService {
	return &lotService{
		lotRepo:   lotRepo,
		spotRepo:  spotRepo,
		validator: validator,
		cfg:       cfg,
	}
}

func demoLot() *model.ParkingLot {
	return &model.ParkingLot{
		Name:         "Downtown Central",
		Latitude:     37.7749,
		Longitude:    -122.4194,
		Address:      "123 Market St, San Francisco, CA",
		PricePerHour: 5.0,
		TotalSpots:   12,
	}
}

// demoSpotType gives spots 3 and 7 EV chargers and spot 5 accessible access.
func demoSpotType(number int) string {
	switch number {
	case 3, 7:
		return model.VehicleEV
	case 5:
		return model.VehicleAccessible
	default:
		return model.VehicleCar
	}
}

func (s *lotService) Seed(ctx context.Context) (*model.SeedResult, error) {
	count, err := s.lotRepo.Count(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to check existing lots", "error", err)
		return nil, storeFailure(err, "Failed to seed demo data")
	}
	if count > 0 {
		return &model.SeedResult{Status: seedStatusOK, Seeded: false}, nil
	}

	lot := demoLot()
	if err := s.validator.Validate(lot); err != nil {
		return nil, apperrors.Internal("Demo lot is invalid", err)
	}
	if err := s.lotRepo.Create(ctx, lot); err != nil {
		// Lost a race with a concurrent seed on the unique lot name.
		if errors.Is(err, parkingerrors.ErrConflict) {
			return &model.SeedResult{Status: seedStatusOK, Seeded: false}, nil
		}
		s.cfg.Log.Error("Failed to create demo lot", "error", err)
		return nil, storeFailure(err, "Failed to seed demo data")
	}

	for i := 1; i <= lot.TotalSpots; i++ {
		spot := &model.ParkingSpot{
			LotID:       lot.ID,
			SpotNumber:  strconv.Itoa(i),
			VehicleType: demoSpotType(i),
			IsOccupied:  false,
		}
		if err := s.spotRepo.Create(ctx, spot); err != nil {
			s.cfg.Log.Error("Failed to create demo spot",
				"lot_id", lot.ID,
				"spot_number", spot.SpotNumber,
				"error", err,
			)
			return nil, storeFailure(err, "Failed to seed demo data")
		}
	}

	s.cfg.Log.Info("Demo data seeded", "lot_id", lot.ID, "spots", lot.TotalSpots)
	return &model.SeedResult{Status: seedStatusOK, Seeded: true, LotID: lot.ID}, nil
}

func (s *lotService) ListWithAvailability(ctx context.Context) ([]model.LotAvailability, error) {
	lots, err := s.lotRepo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list lots", "error", err)
		return nil, storeFailure(err, "Failed to retrieve parking lots")
	}

	results := make([]model.LotAvailability, 0, len(lots))
	for _, lot := range lots {
		occupied, err := s.spotRepo.CountOccupied(ctx, lot.ID)
		if err != nil {
			s.cfg.Log.Error("Failed to count occupied spots", "lot_id", lot.ID, "error", err)
			return nil, storeFailure(err, "Failed to retrieve parking lots")
		}

		results = append(results, model.LotAvailability{
			ParkingLot:     *lot,
			AvailableSpots: availableSpots(lot.TotalSpots, occupied),
		})
	}
	return results, nil
}

// availableSpots clamps at zero when occupancy exceeds capacity.
func availableSpots(total int, occupied int64) int {
	return max(total-int(occupied), 0)
}
