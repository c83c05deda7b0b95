package service

import (
	"context"
	"math"

	parkingerrors "parkwise/internal/parking/errors"
	"parkwise/internal/parking/geo"
	"parkwise/internal/parking/repository"
	"parkwise/internal/parking/validator"
	"parkwise/pkg/config"
	"parkwise/pkg/model"
)

const RecommendationReason = "Closest lot with available matching spots"

type RecommendationService interface {
	Recommend(ctx context.Context, req *model.RecommendRequest) (*model.Recommendation, error)
}

type recommendationService struct {
	lotRepo   repository.LotRepository
	spotRepo  repository.SpotRepository
	validator *validator.ParkingValidator
	cfg       *config.Config
}

func NewRecommendationService(
	lotRepo repository.LotRepository,
	spotRepo repository.SpotRepository,
	validator *validator.ParkingValidator,
	cfg *config.Config,
) RecommendationService {
	return &recommendationService{
		lotRepo:   lotRepo,
		spotRepo:  spotRepo,
		validator: validator,
		cfg:       cfg,
	}
}

// Recommend scans every lot in store order and picks the lowest geo.Score.
// Ties keep the earlier lot; within a lot the first free spot is chosen.
func (s *recommendationService) Recommend(ctx context.Context, req *model.RecommendRequest) (rec *model.Recommendation, err error) {
	defer func() {
		recommendations.WithLabelValues(resultOf(err)).Inc()
	}()

	if err := s.validator.Validate(req); err != nil {
		return nil, validationFailure(err)
	}
	vehicleType := model.NormalizeVehicleType(req.VehicleType)

	bestLot, bestSpot, bestScore, err := s.selectSpot(ctx, *req.Lat, *req.Lng, vehicleType)
	if err != nil {
		return nil, recommendationFailure(err)
	}

	s.cfg.Log.Debug("Recommendation computed",
		"lot_id", bestLot.ID,
		"spot_id", bestSpot.ID,
		"vehicle_type", vehicleType,
		"score", bestScore,
	)
	return &model.Recommendation{
		LotID:      bestLot.ID,
		LotName:    bestLot.Name,
		SpotID:     bestSpot.ID,
		SpotNumber: bestSpot.SpotNumber,
		Reason:     RecommendationReason,
	}, nil
}

// selectSpot returns parkingerrors.ErrNoLots or ErrNoSuitableSpot when
// nothing can be recommended.
func (s *recommendationService) selectSpot(ctx context.Context, lat, lng float64, vehicleType string) (*model.ParkingLot, *model.ParkingSpot, float64, error) {
	lots, err := s.lotRepo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list lots for recommendation", "error", err)
		return nil, nil, 0, err
	}
	if len(lots) == 0 {
		return nil, nil, 0, parkingerrors.ErrNoLots
	}

	var (
		bestLot   *model.ParkingLot
		bestSpot  *model.ParkingSpot
		bestScore = math.Inf(1)
	)
	for _, lot := range lots {
		spots, err := s.spotRepo.FindAvailable(ctx, lot.ID, vehicleType)
		if err != nil {
			s.cfg.Log.Error("Failed to list free spots", "lot_id", lot.ID, "error", err)
			return nil, nil, 0, err
		}
		if len(spots) == 0 {
			continue
		}

		distance := geo.Distance(lat, lng, lot.Latitude, lot.Longitude)
		score := geo.Score(distance, len(spots))
		if score < bestScore {
			bestScore = score
			bestLot = lot
			bestSpot = spots[0]
		}
	}

	if bestLot == nil {
		return nil, nil, 0, parkingerrors.ErrNoSuitableSpot
	}
	return bestLot, bestSpot, bestScore, nil
}
