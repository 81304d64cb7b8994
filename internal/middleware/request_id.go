package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with an ID for tracing. Incoming
// X-Request-ID headers are trusted so the SPA can correlate its own logs.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = "req-" + uuid.NewString()
			r.Header.Set("X-Request-ID", requestID)
		}

		// Echo back for tracing
		w.Header().Add("X-Request-ID", requestID)

		next.ServeHTTP(w, r)
	})
}
