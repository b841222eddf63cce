package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/portfolio/internal/handler"
	"github.com/deppfellow/portfolio/internal/middleware"
	"github.com/deppfellow/portfolio/internal/view"
)

const staticCacheControl = "public, max-age=3600"

func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET(middleware.StaticPrefix+"/*", echo.StaticDirectoryHandler(view.Static(), false), cacheStatic)
}

func cacheStatic(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderCacheControl, staticCacheControl)
		return next(c)
	}
}
