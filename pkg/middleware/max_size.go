package middleware

import "net/http"

// MaxRequestSize caps request bodies at limit bytes. Reads past the cap
// fail with *http.MaxBytesError, which the JSON decoder reports as 413.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				writeDetail(w, http.StatusRequestEntityTooLarge, "Request body too large")
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
