package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultAllowedOrigins are used when no origins are configured.
var DefaultAllowedOrigins = []string{
	"https://gymready.app",
	"http://localhost:8080",
}

// trustedUserAgentPrefixes identify the mobile app, remote scoring peers and tooling.
var trustedUserAgentPrefixes = []string{
	"GymReady/",
	"gymready-",
	"readinessctl",
	"curl/",
	"test-agent",
}

const corsAllowedHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, " + AuthTokenHeader

type corsPolicy struct {
	origins map[string]bool
}

func (p corsPolicy) allows(r *http.Request) bool {
	if p.origins[r.Header.Get("Origin")] {
		return true
	}
	// health checks from the load balancer
	if r.URL.Path == "/health" {
		return true
	}
	userAgent := r.Header.Get("User-Agent")
	for _, prefix := range trustedUserAgentPrefixes {
		if strings.HasPrefix(userAgent, prefix) {
			return true
		}
	}
	return false
}

// Cors rejects requests that come neither from an allowed origin nor from a trusted client.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = DefaultAllowedOrigins
	}
	policy := corsPolicy{origins: make(map[string]bool, len(allowedOrigins))}
	for _, origin := range allowedOrigins {
		policy.origins[strings.TrimSuffix(origin, "/")] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !policy.allows(r) {
				log.Warnf("cors: request to [%s] from origin [%s] not allowed", r.URL.Path, r.Header.Get("Origin"))
				w.WriteHeader(http.StatusForbidden)
				return
			}

			if origin := r.Header.Get("Origin"); origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")

			next.ServeHTTP(w, r)
		})
	}
}
