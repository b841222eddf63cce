package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/portfolio/internal/middleware"
	"github.com/deppfellow/portfolio/internal/model"
	"github.com/deppfellow/portfolio/internal/server"
	"github.com/deppfellow/portfolio/internal/service"
	"github.com/deppfellow/portfolio/internal/sqlerr"
	"github.com/deppfellow/portfolio/internal/view"
)

const contactFailedMessage = "Unable to submit your message. Please try again."

type ContactHandler struct {
	Handler
	service *service.ContactService
}

func NewContactHandler(s *server.Server, svc *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// Form renders the contact form.
func (h *ContactHandler) Form(c echo.Context) error {
	return HandlePage(func(echo.Context) (any, error) {
		return nil, nil
	}, view.PageContact)(c)
}

// Submit stores the message and sends the visitor back to the landing page.
func (h *ContactHandler) Submit(c echo.Context) error {
	return HandleAction(func(c echo.Context) error {
		var msg model.ContactMessage
		if err := c.Bind(&msg); err != nil {
			return err
		}

		id, err := h.service.Submit(c.Request().Context(), msg)
		if err != nil {
			return sqlerr.HandleError(err, contactFailedMessage)
		}

		middleware.GetLogger(c).Info().Int64("contact_id", id).Msg("contact message received")
		return nil
	}, "/")(c)
}
