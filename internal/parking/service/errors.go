package service

import (
	"errors"
	"strings"

	parkingerrors "parkwise/internal/parking/errors"
	"parkwise/internal/parking/validator"
	apperrors "parkwise/pkg/errors"
)

// storeFailure hides the store cause behind a 500.
func storeFailure(err error, message string) *apperrors.AppError {
	if errors.Is(err, parkingerrors.ErrNotConnected) {
		return apperrors.Internal("Database not available", err)
	}
	return apperrors.Internal(message, err)
}

// lookupFailure maps a find-by-id error for resource ("Lot", "Spot",
// "Booking") onto 400, 404 or 500.
func lookupFailure(err error, resource, id string) *apperrors.AppError {
	switch {
	case errors.Is(err, parkingerrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid " + strings.ToLower(resource) + " id")
	case errors.Is(err, parkingerrors.ErrNotFound):
		return apperrors.NotFoundWithID(resource, id)
	default:
		return storeFailure(err, "Failed to retrieve "+strings.ToLower(resource))
	}
}

// recommendationFailure maps the empty-result sentinels onto 404.
func recommendationFailure(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, parkingerrors.ErrNoLots):
		return apperrors.NoResults("No parking lots available. Seed data first.")
	case errors.Is(err, parkingerrors.ErrNoSuitableSpot):
		return apperrors.NoResults("No suitable spots found")
	default:
		return storeFailure(err, "Failed to compute recommendation")
	}
}

func validationFailure(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.Validation(verrs[0].Message, verrs.Fields())
	}
	return apperrors.Validation("Invalid request", map[string]any{"error": err.Error()})
}

func resultOf(err error) string {
	if err == nil {
		return resultOK
	}
	switch apperrors.AsAppError(err).Code {
	case apperrors.CodeConflict:
		return resultConflict
	case apperrors.CodeNotFound:
		return resultNotFound
	case apperrors.CodeInvalidInput, apperrors.CodeValidation:
		return resultInvalid
	default:
		return resultError
	}
}
