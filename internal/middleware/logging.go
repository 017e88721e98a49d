package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs every request once it is served, with its route, status and latency.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			resp := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			begin := time.Now()
			next.ServeHTTP(resp, r)

			entry := log.WithFields(log.Fields{
				"method":  r.Method,
				"route":   routeTemplate(r),
				"status":  resp.statusCode,
				"took_ms": time.Since(begin).Milliseconds(),
			})
			if userID := r.URL.Query().Get("user_id"); userID != "" {
				entry = entry.WithField("user_id", userID)
			}

			if resp.statusCode >= http.StatusInternalServerError {
				entry.Warnf("request %s failed", r.URL.Path)
				return
			}
			entry.Tracef("request %s [UA: %s]", r.URL.Path, r.Header.Get("User-Agent"))
		})
	}
}
