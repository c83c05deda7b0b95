package handler

import (
	"context"
	"net/http"
	"time"

	"parkwise/internal/parking/service"
	httputil "parkwise/pkg/http"
	"parkwise/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const readinessTimeout = 2 * time.Second

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

type HealthHandler struct {
	diagnostics service.DiagnosticsService
	log         *logger.Logger
}

func NewHealthHandler(diagnostics service.DiagnosticsService, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		diagnostics: diagnostics,
		log:         log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, HealthResponse{Status: "ok"})
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.diagnostics.Ready(ctx); err != nil {
		h.log.Error("Database health check failed",
			"error", err,
			"path", r.URL.Path,
		)
		httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unavailable",
			Database: "error",
		})
		return
	}

	httputil.WriteSuccess(w, HealthResponse{
		Status:   "ready",
		Database: "ok",
	})
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
