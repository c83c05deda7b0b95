package handler

import (
	"net/http"

	"parkwise/internal/parking/service"
	httputil "parkwise/pkg/http"
	"parkwise/pkg/logger"
	"parkwise/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Start(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.StartBookingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, "Start", err)
		return
	}

	booking, err := h.service.Start(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, "Start", err)
		return
	}

	httputil.WriteSuccess(w, model.StartBookingResponse{
		BookingID: booking.ID,
		Status:    booking.Status,
	})
}

func (h *BookingHandler) End(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.EndBookingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, "End", err)
		return
	}

	bill, err := h.service.End(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, "End", err)
		return
	}
	httputil.WriteSuccess(w, bill)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		writeError(w, r, h.log, "GetByID", err)
		return
	}
	httputil.WriteSuccess(w, booking)
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/book/start", h.Start)
	router.POST("/book/end", h.End)
	router.GET("/bookings/:id", h.GetByID)
}
