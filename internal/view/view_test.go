package view

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderPages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, PageList, ListPage{
		Title:      "Skills",
		Fields:     []Field{{Name: "skill_name", Label: "Skill"}},
		Rows:       []Row{{ID: 7, Values: []string{"<Go>"}}},
		AddPath:    "/add-skill",
		EditPath:   "/edit-skill/",
		DeletePath: "/delete-skill/",
	}, nil)
	require.NoError(t, err)

	html := buf.String()
	require.Contains(t, html, "<title>Skills | Portfolio</title>")
	require.Contains(t, html, "&lt;Go&gt;")
	require.Contains(t, html, `href="/edit-skill/7"`)
	require.Contains(t, html, `action="/delete-skill/7"`)

	buf.Reset()
	err = r.Render(&buf, PageForm, FormPage{
		Title:  "Edit Skill",
		Action: "/edit-skill/7",
		Cancel: "/skills",
		Fields: []FieldValue{{Field: Field{Name: "category", Label: "Category"}, Value: "Language"}},
	}, nil)
	require.NoError(t, err)
	require.Contains(t, buf.String(), `value="Language"`)
	require.Contains(t, buf.String(), ">Save</button>")

	buf.Reset()
	require.NoError(t, r.Render(&buf, PageError, ErrorPage{Status: 503, Message: "Database connection failed."}, nil))
	require.Contains(t, buf.String(), "Database connection failed.")

	buf.Reset()
	require.NoError(t, r.Render(&buf, PageIndex, nil, nil))
	require.Contains(t, buf.String(), "<title>Portfolio</title>")

	require.Error(t, r.Render(&buf, "missing", nil, nil))
}

func TestStaticAssets(t *testing.T) {
	css, err := fs.ReadFile(Static(), "style.css")
	require.NoError(t, err)
	require.Contains(t, string(css), "body")
}
