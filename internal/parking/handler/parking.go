package handler

import (
	"net/http"

	"parkwise/internal/parking/service"
	httputil "parkwise/pkg/http"
	"parkwise/pkg/logger"
	"parkwise/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const rootMessage = "AI Parking API is running"

type ParkingHandler struct {
	lots            service.LotService
	recommendations service.RecommendationService
	log             *logger.Logger
}

func NewParkingHandler(lots service.LotService, recommendations service.RecommendationService, log *logger.Logger) *ParkingHandler {
	return &ParkingHandler{
		lots:            lots,
		recommendations: recommendations,
		log:             log,
	}
}

func (h *ParkingHandler) Root(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, httputil.MessageResponse{Message: rootMessage})
}

func (h *ParkingHandler) Seed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := h.lots.Seed(r.Context())
	if err != nil {
		writeError(w, r, h.log, "Seed", err)
		return
	}
	httputil.WriteSuccess(w, result)
}

func (h *ParkingHandler) Lots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lots, err := h.lots.ListWithAvailability(r.Context())
	if err != nil {
		writeError(w, r, h.log, "Lots", err)
		return
	}
	httputil.WriteSuccess(w, lots)
}

func (h *ParkingHandler) Recommend(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.RecommendRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, "Recommend", err)
		return
	}

	rec, err := h.recommendations.Recommend(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, "Recommend", err)
		return
	}
	httputil.WriteSuccess(w, rec)
}

func (h *ParkingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
	router.POST("/seed", h.Seed)
	router.GET("/lots", h.Lots)
	router.POST("/recommend", h.Recommend)
}
