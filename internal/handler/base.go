package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/portfolio/internal/middleware"
	"github.com/deppfellow/portfolio/internal/server"
)

// Handler is embedded by every concrete handler and gives access to the
// application container.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// PageFunc loads the data of a page.
type PageFunc func(c echo.Context) (any, error)

// ActionFunc performs a state change that ends in a redirect.
type ActionFunc func(c echo.Context) error

// ResponseHandler turns a successful handler result into a response.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result any)
}

// PageResponseHandler renders a template.
type PageResponseHandler struct {
	page   string
	status int
}

func (h PageResponseHandler) Handle(c echo.Context, result any) error {
	return c.Render(h.status, h.page, result)
}

func (h PageResponseHandler) GetOperation() string {
	return "page"
}

func (h PageResponseHandler) AddAttributes(txn *newrelic.Transaction, _ any) {
	if txn != nil {
		txn.AddAttribute("page.name", h.page)
	}
}

// RedirectResponseHandler answers with 303 See Other so a refresh of the
// target page does not resubmit the form.
type RedirectResponseHandler struct {
	location string
}

func (h RedirectResponseHandler) Handle(c echo.Context, _ any) error {
	return c.Redirect(http.StatusSeeOther, h.location)
}

func (h RedirectResponseHandler) GetOperation() string {
	return "redirect"
}

func (h RedirectResponseHandler) AddAttributes(txn *newrelic.Transaction, _ any) {
	if txn != nil {
		txn.AddAttribute("redirect.location", h.location)
	}
}

// handleRequest runs handler with timing, logging and New Relic
// attributes, then hands the result to responseHandler. Errors are
// returned unchanged for the global error handler to render.
func handleRequest(
	c echo.Context,
	handler func(c echo.Context) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	result, err := handler(c)
	handlerDuration := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// HandlePage wraps a PageFunc whose result is rendered into page.
func HandlePage(handler PageFunc, page string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, handler, PageResponseHandler{page: page, status: http.StatusOK})
	}
}

// HandleAction wraps an ActionFunc that redirects to location on success.
func HandleAction(handler ActionFunc, location string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, func(c echo.Context) (any, error) {
			return nil, handler(c)
		}, RedirectResponseHandler{location: location})
	}
}
