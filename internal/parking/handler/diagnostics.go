package handler

import (
	"net/http"

	"parkwise/internal/parking/service"
	httputil "parkwise/pkg/http"

	"github.com/julienschmidt/httprouter"
)

type DiagnosticsHandler struct {
	service service.DiagnosticsService
}

func NewDiagnosticsHandler(service service.DiagnosticsService) *DiagnosticsHandler {
	return &DiagnosticsHandler{service: service}
}

// Test always answers 200; store trouble is described in the body.
func (h *DiagnosticsHandler) Test(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, h.service.Diagnostics(r.Context()))
}

func (h *DiagnosticsHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/test", h.Test)
}
