package service

import (
	"context"
	"errors"

	parkingerrors "parkwise/internal/parking/errors"
	"parkwise/internal/parking/repository"
	"parkwise/pkg/config"
	"parkwise/pkg/model"
)

const (
	backendRunning       = "Running"
	databaseConnected    = "Connected"
	databaseNotAvailable = "Not Available"
	maxDiagnosticError   = 50
)

type DiagnosticsService interface {
	// Diagnostics never fails; store problems are reported in the payload.
	Diagnostics(ctx context.Context) *model.Diagnostics
	Ready(ctx context.Context) error
}

type diagnosticsService struct {
	store repository.Store
	cfg   *config.Config
}

func NewDiagnosticsService(store repository.Store, cfg *config.Config) DiagnosticsService {
	return &diagnosticsService{
		store: store,
		cfg:   cfg,
	}
}

func (s *diagnosticsService) Diagnostics(ctx context.Context) *model.Diagnostics {
	diag := &model.Diagnostics{
		Backend:  backendRunning,
		Database: databaseConnected,
	}

	names, err := s.store.CollectionNames(ctx)
	if err != nil {
		s.cfg.Log.Warn("Diagnostics could not list collections", "error", err)
		if errors.Is(err, parkingerrors.ErrNotConnected) {
			diag.Database = databaseNotAvailable
		} else {
			diag.Database = "Error: " + truncate(err.Error(), maxDiagnosticError)
		}
		return diag
	}

	diag.Collections = names
	return diag
}

func (s *diagnosticsService) Ready(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// truncate keeps the first n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
