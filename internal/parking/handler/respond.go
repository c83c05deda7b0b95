package handler

import (
	"net/http"

	apperrors "parkwise/pkg/errors"
	httputil "parkwise/pkg/http"
	"parkwise/pkg/logger"
)

// writeError renders err and logs server-side failures with the handler name.
func writeError(w http.ResponseWriter, r *http.Request, log *logger.Logger, handler string, err error) {
	appErr := apperrors.AsAppError(err)
	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Error("request failed",
			"handler", handler,
			"path", r.URL.Path,
			"code", appErr.Code,
			"error", err,
		)
	}
	httputil.WriteError(w, appErr)
}
