package http

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"

	apperrors "parkwise/pkg/errors"
)

// DecodeJSON reads a single JSON object from the request body into dst.
// Unknown fields are ignored.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperrors.Validation("Request body is required", nil)
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError

		switch {
		case errors.As(err, &maxBytesErr):
			return apperrors.New(apperrors.CodeInvalidInput, "Request body too large", http.StatusRequestEntityTooLarge)
		case errors.Is(err, io.EOF):
			return apperrors.Validation("Request body is required", nil)
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return apperrors.Validation("Malformed JSON body", nil)
		case errors.As(err, &typeErr):
			return apperrors.Validation("Invalid value for field "+typeErr.Field, map[string]any{
				"field": typeErr.Field,
			})
		default:
			return apperrors.Validation("Invalid request body", nil)
		}
	}

	if dec.More() {
		return apperrors.Validation("Request body must contain a single JSON object", nil)
	}
	return nil
}

// ClientIP returns the caller address, preferring the first X-Forwarded-For hop.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, _ := strings.Cut(fwd, ","); strings.TrimSpace(first) != "" {
			return strings.TrimSpace(first)
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
