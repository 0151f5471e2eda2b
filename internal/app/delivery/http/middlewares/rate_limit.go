package middlewares

import (
	"net/http"
	"time"

	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit allows APP_MAX_REQUESTS requests per second per client IP.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			ip, _ := httprate.KeyByIP(r)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(ip))
		}),
	)
}

// AuthRateLimiter guards login and registration against brute force.
func (m *Middlewares) AuthRateLimiter() *RateLimiter {
	return NewRateLimiter(
		m.InternalConfig.App.AuthMaxRequestsPerMinute,
		time.Minute,
		time.Duration(m.InternalConfig.App.AuthBlockTimeInMinutes)*time.Minute,
		m.Log,
	)
}
