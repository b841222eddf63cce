package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/portfolio/internal/sqlerr"
)

// StaticPrefix is where the embedded assets are served. Asset requests are
// not traced.
const StaticPrefix = "/static"

// TracingMiddleware wires New Relic transactions into echo.
// Every method degrades into a pass-through when nrApp is nil.
type TracingMiddleware struct {
	nrApp *newrelic.Application
}

func NewTracingMiddleware(nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{nrApp: nrApp}
}

// NewRelicMiddleware starts a transaction per page request.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return passThrough
	}

	traced := nrecho.Middleware(tm.nrApp)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		withTxn := traced(next)
		return func(c echo.Context) error {
			if isStaticAsset(c) {
				return next(c)
			}
			return withTxn(c)
		}
	}
}

// EnhanceTracing adds request attributes to the transaction and reports
// returned errors. Database connection failures are flagged separately so
// an outage can be told apart from bad input.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())
			txn.AddAttribute("request.id", GetRequestID(c))

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				if sqlerr.IsConnectionFailure(err) {
					txn.AddAttribute("db.connection_failed", true)
				}
			}

			txn.AddAttribute("http.status_code", c.Response().Status)

			return err
		}
	}
}

func isStaticAsset(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, StaticPrefix+"/")
}

func passThrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}
