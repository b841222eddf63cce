package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/deppfellow/portfolio/internal/errs"
	"github.com/deppfellow/portfolio/internal/server"
)

const rateLimitExpiry = 3 * time.Minute

// RateLimitedMessage is shown when a client submits too often.
const RateLimitedMessage = "Too many messages. Please try again later."

type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// ContactSubmissions limits POST requests per client IP to
// contact.rate_limit per second. GET requests pass through. A zero limit
// disables the middleware.
func (r *RateLimitMiddleware) ContactSubmissions() echo.MiddlewareFunc {
	cfg := r.server.Config.Contact
	if cfg.RateLimit <= 0 {
		return passThrough
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method != http.MethodPost
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimit),
			Burst:     cfg.RateBurst,
			ExpiresIn: rateLimitExpiry,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().
				Str("identifier", identifier).
				Msg("contact submission rate limited")
			return errs.NewTooManyRequestsError(RateLimitedMessage)
		},
	})
}

// RecordRateLimitHit reports a rejected request to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}
