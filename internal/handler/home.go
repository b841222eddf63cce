package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/portfolio/internal/server"
	"github.com/deppfellow/portfolio/internal/view"
)

type HomeHandler struct {
	Handler
}

func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{Handler: NewHandler(s)}
}

// Index renders the landing page.
func (h *HomeHandler) Index(c echo.Context) error {
	return HandlePage(func(echo.Context) (any, error) {
		return nil, nil
	}, view.PageIndex)(c)
}
