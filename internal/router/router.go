// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps every page route to its handler.
package router

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/portfolio/internal/handler"
	"github.com/deppfellow/portfolio/internal/middleware"
	"github.com/deppfellow/portfolio/internal/model"
	"github.com/deppfellow/portfolio/internal/server"
	"github.com/deppfellow/portfolio/internal/view"
)

// NewRouter builds the echo instance with the middleware chain, the HTML
// renderer, the error page handler and every route.
func NewRouter(s *server.Server, h *handler.Handlers) (*echo.Echo, error) {
	middlewares := middleware.NewMiddlewares(s)

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to build renderer: %w", err)
	}

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.Renderer = renderer
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
	)

	registerSystemRoutes(router, h)

	router.GET("/", h.Home.Index)
	router.GET("/contact", h.Contact.Form)
	router.POST("/contact", h.Contact.Submit, middlewares.RateLimit.ContactSubmissions())

	registerEntityRoutes[model.PersonalInfo](router, h.PersonalInfo)
	registerEntityRoutes[model.Education](router, h.Education)
	registerEntityRoutes[model.WorkExperience](router, h.WorkExperience)
	registerEntityRoutes[model.Skill](router, h.Skills)
	registerEntityRoutes[model.Project](router, h.Projects)

	return router, nil
}

// registerEntityRoutes wires list, add, edit and delete for one entity.
// Delete only answers POST; any other method gets 405.
func registerEntityRoutes[T model.Entity](r *echo.Echo, h *handler.EntityHandler[T]) {
	res := h.Resource

	r.GET(res.ListPath, h.List)

	r.GET(res.AddPath(), h.AddForm)
	r.POST(res.AddPath(), h.Add)

	r.GET(res.EditPath()+":id", h.EditForm)
	r.POST(res.EditPath()+":id", h.Edit)

	r.POST(res.DeletePath()+":id", h.Delete)
}
