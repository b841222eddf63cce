// Package view renders the server-side HTML pages.
//
// Templates and the stylesheet are embedded in the binary. Every page is
// parsed together with the shared layout and the sprig function map, and
// rendered through echo's Renderer interface.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/Masterminds/sprig/v3"
	"github.com/labstack/echo/v4"
)

// Page names accepted by Render.
const (
	PageIndex   = "index"
	PageList    = "list"
	PageForm    = "form"
	PageContact = "contact"
	PageError   = "error"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Field describes one input of an entity form and one column of its list.
type Field struct {
	Name      string
	Label     string
	Multiline bool
}

// FieldValue is a Field with the value it currently holds.
type FieldValue struct {
	Field
	Value string
}

// Row is one record of a list page.
type Row struct {
	ID     int64
	Values []string
}

// ListPage lists every record of an entity.
type ListPage struct {
	Title   string
	Fields  []Field
	Rows    []Row
	AddPath string
	// EditPath and DeletePath are prefixes; the row id is appended.
	EditPath   string
	DeletePath string
}

// FormPage is an add or edit form.
type FormPage struct {
	Title   string
	Action  string
	Submit  string
	Cancel  string
	Fields  []FieldValue
	Missing bool
}

// ErrorPage shows a failure to the visitor.
type ErrorPage struct {
	Status  int
	Message string
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// NewRenderer parses every page with the layout.
func NewRenderer() (*Renderer, error) {
	layout, err := template.New("layout.html").
		Funcs(sprig.FuncMap()).
		ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{PageIndex, PageList, PageForm, PageContact, PageError} {
		page, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := page.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		r.pages[name] = page
	}

	return r, nil
}

// Render writes page name with data.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return page.ExecuteTemplate(w, "layout.html", data)
}

// Static returns the embedded static assets rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
