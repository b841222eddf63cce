package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/portfolio/internal/config"
	"github.com/deppfellow/portfolio/internal/database"
	"github.com/deppfellow/portfolio/internal/model"
)

func newTestConn(t *testing.T) (*Repositories, Conn) {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "development"},
		Database: config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			Path:           filepath.Join(t.TempDir(), "portfolio.db"),
			ConnectTimeout: 2 * time.Second,
		},
		Observability: config.DefaultObservabilityConfig(),
	}
	logger := zerolog.Nop()

	db, err := database.New(cfg, &logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.EnsureSchema(context.Background()))

	conn, err := db.Acquire(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return New(db.Dialect), conn
}

func TestSkillLifecycle(t *testing.T) {
	repos, conn := newTestConn(t)
	ctx := context.Background()

	id, err := repos.Skills.Insert(ctx, conn, model.Skill{
		SkillName:        "Go",
		Category:         "Language",
		ProficiencyLevel: "Expert",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	skills, err := repos.Skills.List(ctx, conn)
	require.NoError(t, err)
	require.Equal(t, []model.Skill{{ID: id, SkillName: "Go", Category: "Language", ProficiencyLevel: "Expert"}}, skills)

	affected, err := repos.Skills.Update(ctx, conn, id, model.Skill{
		SkillName:        "Go",
		Category:         "Language",
		ProficiencyLevel: "Advanced",
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	got, err := repos.Skills.Get(ctx, conn, id)
	require.NoError(t, err)
	require.Equal(t, "Advanced", got.ProficiencyLevel)

	affected, err = repos.Skills.Delete(ctx, conn, id)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	_, err = repos.Skills.Get(ctx, conn, id)
	require.ErrorIs(t, err, ErrNotFound)

	skills, err = repos.Skills.List(ctx, conn)
	require.NoError(t, err)
	require.Empty(t, skills)
}

func TestListIsEmptyNotNil(t *testing.T) {
	repos, conn := newTestConn(t)

	projects, err := repos.Projects.List(context.Background(), conn)
	require.NoError(t, err)
	require.NotNil(t, projects)
	require.Len(t, projects, 0)
}

func TestInsertRoundTripAndFreshIDs(t *testing.T) {
	repos, conn := newTestConn(t)
	ctx := context.Background()

	first := model.Education{
		School:      "State University",
		Achievement: "BSc Computer Science",
		StartYear:   "2012",
		EndYear:     "2016",
		Description: "Distributed systems; 'quoted' text; ünïcode",
	}
	second := first
	second.School = "Night School"

	id1, err := repos.Education.Insert(ctx, conn, first)
	require.NoError(t, err)
	id2, err := repos.Education.Insert(ctx, conn, second)
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)

	got, err := repos.Education.Get(ctx, conn, id1)
	require.NoError(t, err)
	first.ID = id1
	require.Equal(t, first, got)

	rows, err := repos.Education.List(ctx, conn)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, id1, rows[0].ID)
	require.Equal(t, id2, rows[1].ID)
}

func TestUpdateIsFullReplacementAndIsolated(t *testing.T) {
	repos, conn := newTestConn(t)
	ctx := context.Background()

	keep := model.WorkExperience{Company: "Acme", Position: "Engineer", StartYear: "2018", EndYear: "2020", Description: "Backend"}
	change := model.WorkExperience{Company: "Globex", Position: "Lead", StartYear: "2020", EndYear: "2023", Description: "Platform"}

	keepID, err := repos.WorkExperience.Insert(ctx, conn, keep)
	require.NoError(t, err)
	changeID, err := repos.WorkExperience.Insert(ctx, conn, change)
	require.NoError(t, err)

	replacement := model.WorkExperience{Company: "Globex", Position: "Principal"}
	_, err = repos.WorkExperience.Update(ctx, conn, changeID, replacement)
	require.NoError(t, err)

	got, err := repos.WorkExperience.Get(ctx, conn, changeID)
	require.NoError(t, err)
	replacement.ID = changeID
	require.Equal(t, replacement, got)

	untouched, err := repos.WorkExperience.Get(ctx, conn, keepID)
	require.NoError(t, err)
	keep.ID = keepID
	require.Equal(t, keep, untouched)
}

func TestMissingIDIsNoOp(t *testing.T) {
	repos, conn := newTestConn(t)
	ctx := context.Background()

	id, err := repos.PersonalInfo.Insert(ctx, conn, model.PersonalInfo{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	before, err := repos.PersonalInfo.List(ctx, conn)
	require.NoError(t, err)

	affected, err := repos.PersonalInfo.Update(ctx, conn, id+100, model.PersonalInfo{Name: "Nobody"})
	require.NoError(t, err)
	require.Zero(t, affected)

	affected, err = repos.PersonalInfo.Delete(ctx, conn, id+100)
	require.NoError(t, err)
	require.Zero(t, affected)

	after, err := repos.PersonalInfo.List(ctx, conn)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestDeleteKeepsOtherRows(t *testing.T) {
	repos, conn := newTestConn(t)
	ctx := context.Background()

	projects := []model.Project{
		{ProjectName: "a", Description: "first", StartDate: "2021-01-01", EndDate: "2021-02-01"},
		{ProjectName: "b", Description: "second", StartDate: "2022-01-01", EndDate: "2022-02-01"},
		{ProjectName: "c", Description: "third", StartDate: "2023-01-01", EndDate: "2023-02-01"},
	}
	for i := range projects {
		id, err := repos.Projects.Insert(ctx, conn, projects[i])
		require.NoError(t, err)
		projects[i].ID = id
	}

	affected, err := repos.Projects.Delete(ctx, conn, projects[1].ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	_, err = repos.Projects.Get(ctx, conn, projects[1].ID)
	require.ErrorIs(t, err, ErrNotFound)

	remaining, err := repos.Projects.List(ctx, conn)
	require.NoError(t, err)
	require.Equal(t, []model.Project{projects[0], projects[2]}, remaining)
}

func TestInvalidUTF8IsStoredVerbatim(t *testing.T) {
	repos, conn := newTestConn(t)
	ctx := context.Background()

	info := model.PersonalInfo{Name: "Zoë \xff <b>x</b>", Bio: "tab\there"}
	id, err := repos.PersonalInfo.Insert(ctx, conn, info)
	require.NoError(t, err)

	got, err := repos.PersonalInfo.Get(ctx, conn, id)
	require.NoError(t, err)
	require.Equal(t, []byte(info.Name), []byte(got.Name))
	require.Equal(t, info.Bio, got.Bio)
}

func TestContactInsert(t *testing.T) {
	repos, conn := newTestConn(t)
	ctx := context.Background()

	id, err := repos.Contact.Insert(ctx, conn, model.ContactMessage{Name: "A", Email: "a@x.com", Message: "hi"})
	require.NoError(t, err)

	got, err := repos.Contact.Get(ctx, conn, id)
	require.NoError(t, err)
	require.Equal(t, model.ContactMessage{ID: id, Name: "A", Email: "a@x.com", Message: "hi"}, got)
}

func TestStatementsPerDialect(t *testing.T) {
	pg := New(database.Postgres).Projects
	require.Equal(t,
		"UPDATE projects SET project_name = $1, description = $2, start_date = $3, end_date = $4 WHERE id = $5",
		pg.updateSQL)
	require.Equal(t,
		"INSERT INTO projects (project_name, description, start_date, end_date) VALUES ($1, $2, $3, $4) RETURNING id",
		pg.insertSQL)

	lite := New(database.SQLite).Projects
	require.Equal(t, "DELETE FROM projects WHERE id = ?", lite.deleteSQL)
	require.Equal(t, "projects", lite.Name())
}

func TestQueryFailureIsWrapped(t *testing.T) {
	_, conn := newTestConn(t)

	missing := NewTable(database.SQLite, "no_such_table", []string{"name"},
		func(p model.PersonalInfo) []string { return []string{p.Name} },
		func(id int64, v []string) model.PersonalInfo { return model.PersonalInfo{ID: id, Name: v[0]} },
	)

	_, err := missing.List(context.Background(), conn)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))
	require.Contains(t, err.Error(), "no_such_table")
}
