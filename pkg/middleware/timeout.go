package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"parkwise/pkg/logger"
)

// deadlineWriter guards the real writer so the handler goroutine and the
// deadline branch never both write a response.
type deadlineWriter struct {
	http.ResponseWriter
	mu      sync.Mutex
	expired bool
	started bool
}

func (dw *deadlineWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.expired || dw.started {
		return
	}
	dw.started = true
	dw.ResponseWriter.WriteHeader(code)
}

func (dw *deadlineWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.expired {
		return 0, http.ErrHandlerTimeout
	}
	dw.started = true
	return dw.ResponseWriter.Write(b)
}

// expire marks the writer dead and reports whether the handler had
// already begun its response.
func (dw *deadlineWriter) expire() (started bool) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	dw.expired = true
	return dw.started
}

// RequestTimeout cancels the request context after timeout and answers 503
// "Request timeout" unless the handler already started writing. Writes made
// after the deadline are dropped.
func RequestTimeout(timeout time.Duration, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			dw := &deadlineWriter{ResponseWriter: w}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(dw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				if ctx.Err() == nil {
					return
				}
			case <-ctx.Done():
			}

			if dw.expire() {
				return
			}
			log.Warn("Request exceeded deadline",
				"request_id", RequestIDFromContext(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"timeout", timeout,
			)
			writeDetail(w, http.StatusServiceUnavailable, "Request timeout")
		})
	}
}
