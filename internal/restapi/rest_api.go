package restapi

import (
	"net/http"
	"time"

	"dashboard.aifa.mx/internal/app"
)

type RestAPI struct {
	*app.Application
	limiter     *RateLimitMiddleware
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	limiter := newRateLimiter(app.Config.RateLimit, time.Second)
	return &RestAPI{
		Application: app,
		limiter:     limiter,
		rateLimiter: limiter.rateLimitHandler,
	}
}

// Stop ends the rate limiter's cleanup goroutine.
func (api *RestAPI) Stop() {
	if api.limiter != nil {
		api.limiter.Stop()
	}
}
