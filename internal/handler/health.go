package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/portfolio/internal/middleware"
	"github.com/deppfellow/portfolio/internal/server"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthReport is the body of GET /status.
type HealthReport struct {
	Status      string        `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
	Environment string        `json:"environment"`
	Database    DatabaseCheck `json:"database"`
}

// DatabaseCheck describes the connection probe. The driver error itself is
// only logged.
type DatabaseCheck struct {
	Status       string `json:"status"`
	Driver       string `json:"driver"`
	ResponseTime string `json:"response_time"`
}

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth acquires a database connection and pings it within
// observability.health_checks.timeout. It answers 200 "healthy", or 503
// "unhealthy" when the database cannot be reached.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	cfg := h.server.Config

	ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.Observability.HealthChecks.Timeout)
	defer cancel()

	start := time.Now()
	err := h.server.DB.Ping(ctx)
	elapsed := time.Since(start)

	report := HealthReport{
		Status:      statusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: cfg.Primary.Env,
		Database: DatabaseCheck{
			Status:       statusHealthy,
			Driver:       cfg.Database.Driver,
			ResponseTime: elapsed.String(),
		},
	}

	logger := middleware.GetLogger(c)

	if err != nil {
		report.Status = statusUnhealthy
		report.Database.Status = statusUnhealthy

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msg("database health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]any{
				"check_type":       "database",
				"driver":           cfg.Database.Driver,
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
		}

		return c.JSON(http.StatusServiceUnavailable, report)
	}

	logger.Debug().Dur("response_time", elapsed).Msg("health check passed")
	return c.JSON(http.StatusOK, report)
}
