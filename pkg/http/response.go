package http

import (
	"encoding/json"
	"net/http"

	apperrors "parkwise/pkg/errors"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError renders err as {"detail": ...}. Errors that are not AppErrors
// are reported as a generic 500 so internal causes never reach the client.
func WriteError(w http.ResponseWriter, err error) {
	appErr := apperrors.AsAppError(err)

	statusCode := appErr.StatusCode()
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	resp := apperrors.ErrorResponse{
		Detail:  appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	}
	WriteJSON(w, statusCode, resp)
}

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
