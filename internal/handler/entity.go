package handler

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/portfolio/internal/errs"
	"github.com/deppfellow/portfolio/internal/middleware"
	"github.com/deppfellow/portfolio/internal/model"
	"github.com/deppfellow/portfolio/internal/repository"
	"github.com/deppfellow/portfolio/internal/server"
	"github.com/deppfellow/portfolio/internal/service"
	"github.com/deppfellow/portfolio/internal/sqlerr"
	"github.com/deppfellow/portfolio/internal/view"
)

// Messages are the storage failure texts of one entity.
type Messages struct {
	Load   string
	Add    string
	Update string
	Delete string
}

// Resource describes how one entity appears on the site.
type Resource[T model.Entity] struct {
	// Name is the singular display name, "Skill".
	Name string
	// Title heads the list page, "Skills".
	Title string
	// Slug names the add/edit/delete routes: /add-<slug>, /edit-<slug>/:id.
	Slug string
	// ListPath is the list page, also the redirect target after a write.
	ListPath string

	Fields   []view.Field
	Values   func(T) []string
	Messages Messages
}

func (r Resource[T]) AddPath() string    { return "/add-" + r.Slug }
func (r Resource[T]) EditPath() string   { return "/edit-" + r.Slug + "/" }
func (r Resource[T]) DeletePath() string { return "/delete-" + r.Slug + "/" }

// EntityHandler serves the list, add, edit and delete pages of one entity.
type EntityHandler[T model.Entity] struct {
	Handler
	Resource Resource[T]
	service  *service.EntityService[T]
}

func NewEntityHandler[T model.Entity](s *server.Server, resource Resource[T], svc *service.EntityService[T]) *EntityHandler[T] {
	return &EntityHandler[T]{
		Handler:  NewHandler(s),
		Resource: resource,
		service:  svc,
	}
}

// List renders every record.
func (h *EntityHandler[T]) List(c echo.Context) error {
	return HandlePage(func(c echo.Context) (any, error) {
		records, err := h.service.List(c.Request().Context())
		if err != nil {
			return nil, sqlerr.HandleError(err, h.Resource.Messages.Load)
		}

		rows := make([]view.Row, len(records))
		for i, record := range records {
			rows[i] = view.Row{ID: record.GetID(), Values: h.Resource.Values(record)}
		}

		return view.ListPage{
			Title:      h.Resource.Title,
			Fields:     h.Resource.Fields,
			Rows:       rows,
			AddPath:    h.Resource.AddPath(),
			EditPath:   h.Resource.EditPath(),
			DeletePath: h.Resource.DeletePath(),
		}, nil
	}, view.PageList)(c)
}

// AddForm renders an empty form. It does not touch the database.
func (h *EntityHandler[T]) AddForm(c echo.Context) error {
	return HandlePage(func(c echo.Context) (any, error) {
		var zero T
		return h.formPage("Add "+h.Resource.Name, h.Resource.AddPath(), zero, false), nil
	}, view.PageForm)(c)
}

// Add inserts the submitted fields.
func (h *EntityHandler[T]) Add(c echo.Context) error {
	return HandleAction(func(c echo.Context) error {
		var record T
		if err := c.Bind(&record); err != nil {
			return err
		}

		id, err := h.service.Create(c.Request().Context(), record)
		if err != nil {
			return sqlerr.HandleError(err, h.Resource.Messages.Add)
		}

		middleware.GetLogger(c).Info().Int64("id", id).Msgf("%s added", h.Resource.Slug)
		return nil
	}, h.Resource.ListPath)(c)
}

// EditForm renders the form pre-filled with record :id. A missing record
// renders the form with empty fields.
func (h *EntityHandler[T]) EditForm(c echo.Context) error {
	return HandlePage(func(c echo.Context) (any, error) {
		id, err := pathID(c)
		if err != nil {
			return nil, err
		}

		record, err := h.service.Get(c.Request().Context(), id)
		missing := errors.Is(err, repository.ErrNotFound)
		if err != nil && !missing {
			return nil, sqlerr.HandleError(err, h.Resource.Messages.Load)
		}
		if missing {
			middleware.GetLogger(c).Warn().Int64("id", id).Msgf("%s not found, rendering empty form", h.Resource.Slug)
		}

		return h.formPage("Edit "+h.Resource.Name, fmt.Sprintf("%s%d", h.Resource.EditPath(), id), record, missing), nil
	}, view.PageForm)(c)
}

// Edit replaces record :id with the submitted fields. A missing id is a
// no-op.
func (h *EntityHandler[T]) Edit(c echo.Context) error {
	return HandleAction(func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		var record T
		if err := c.Bind(&record); err != nil {
			return err
		}

		changed, err := h.service.Update(c.Request().Context(), id, record)
		if err != nil {
			return sqlerr.HandleError(err, h.Resource.Messages.Update)
		}

		middleware.GetLogger(c).Info().Int64("id", id).Bool("changed", changed).Msgf("%s updated", h.Resource.Slug)
		return nil
	}, h.Resource.ListPath)(c)
}

// Delete removes record :id. A missing id is a no-op.
func (h *EntityHandler[T]) Delete(c echo.Context) error {
	return HandleAction(func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}

		changed, err := h.service.Delete(c.Request().Context(), id)
		if err != nil {
			return sqlerr.HandleError(err, h.Resource.Messages.Delete)
		}

		middleware.GetLogger(c).Info().Int64("id", id).Bool("changed", changed).Msgf("%s deleted", h.Resource.Slug)
		return nil
	}, h.Resource.ListPath)(c)
}

func (h *EntityHandler[T]) formPage(title, action string, record T, missing bool) view.FormPage {
	vals := h.Resource.Values(record)
	fields := make([]view.FieldValue, len(h.Resource.Fields))
	for i, f := range h.Resource.Fields {
		fields[i] = view.FieldValue{Field: f, Value: vals[i]}
	}

	return view.FormPage{
		Title:   title,
		Action:  action,
		Submit:  "Save",
		Cancel:  h.Resource.ListPath,
		Fields:  fields,
		Missing: missing,
	}
}

func pathID(c echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return 0, errs.NewBadRequestError("Invalid id.", nil).WithCause(err)
	}
	return id, nil
}
