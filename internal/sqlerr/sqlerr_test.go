package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/portfolio/internal/database"
	"github.com/deppfellow/portfolio/internal/errs"
	"github.com/deppfellow/portfolio/internal/repository"
)

func TestMapCode(t *testing.T) {
	tests := map[string]Code{
		"23502": NotNullViolation,
		"23503": ForeignKeyViolation,
		"23505": UniqueViolation,
		"23514": CheckViolation,
		"23P01": IntegrityViolation,
		"22001": DataException,
		"22P02": DataException,
		"08006": ConnectionException,
		"28P01": InvalidAuthorization,
		"3D000": InvalidCatalog,
		"57P03": CannotConnectNow,
		"42P01": Other,
		"":      Other,
	}
	for state, want := range tests {
		require.Equal(t, want, MapCode(state), state)
	}
}

func TestMapSeverity(t *testing.T) {
	require.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	require.Equal(t, SeverityError, MapSeverity("bogus"))
}

func TestHandleErrorConnectionFailure(t *testing.T) {
	cause := fmt.Errorf("%w: dial tcp 127.0.0.1:1: connect: connection refused", database.ErrConnection)

	httpErr := HandleError(cause, "Unable to add project.")
	require.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	require.Equal(t, ConnectionFailedMessage, httpErr.Message)
	require.ErrorIs(t, httpErr, database.ErrConnection)
}

func TestHandleErrorConnectionSQLState(t *testing.T) {
	err := fmt.Errorf("failed to list skills: %w", &pgconn.PgError{Severity: "FATAL", Code: "28P01", Message: "password authentication failed"})

	httpErr := HandleError(err, "Unable to load skills data.")
	require.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
}

func TestHandleErrorInputRejection(t *testing.T) {
	err := fmt.Errorf("failed to insert into skills: %w", &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		Message:    "null value in column violates not-null constraint",
		TableName:  "skills",
		ColumnName: "skill_name",
	})

	httpErr := HandleError(err, "Unable to add skill.")
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "SKILL_REQUIRED", httpErr.Code)
	require.Equal(t, "Unable to add skill. Skill Name is required.", httpErr.Message)

	var pgerr *pgconn.PgError
	require.True(t, errors.As(httpErr, &pgerr))
}

func TestHandleErrorOtherStorageFailure(t *testing.T) {
	err := &pgconn.PgError{Severity: "ERROR", Code: "42P01", Message: "relation does not exist"}

	httpErr := HandleError(err, "Unable to load projects data.")
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
	require.Equal(t, "Unable to load projects data.", httpErr.Message)

	plain := HandleError(errors.New("disk I/O error"), "Unable to delete the project.")
	require.Equal(t, http.StatusInternalServerError, plain.Status)
	require.Equal(t, "Unable to delete the project.", plain.Message)
}

func TestHandleErrorNotFound(t *testing.T) {
	err := fmt.Errorf("%w: table:skills: id 7", repository.ErrNotFound)

	httpErr := HandleError(err, "Skill not found.")
	require.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewMethodNotAllowedError("no")
	require.Same(t, original, HandleError(original, "ignored"))
}

func TestHumanizeText(t *testing.T) {
	require.Equal(t, "Proficiency Level", humanizeText("proficiency_level"))
	require.Equal(t, "", humanizeText(""))
}

func openStrictSkills(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "strict.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE skills (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		skill_name TEXT NOT NULL,
		category TEXT CHECK (category <> 'bogus')
	)`)
	require.NoError(t, err)
	return db
}

func TestHandleErrorSQLiteNotNull(t *testing.T) {
	db := openStrictSkills(t)

	_, execErr := db.Exec(`INSERT INTO skills (skill_name) VALUES (NULL)`)
	require.Error(t, execErr)
	err := fmt.Errorf("failed to insert into skills: %w", execErr)

	require.Equal(t, NotNullViolation, ErrCode(err))

	httpErr := HandleError(err, "Unable to add skill.")
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "SKILL_REQUIRED", httpErr.Code)
	require.Equal(t, "Unable to add skill. Skill Name is required.", httpErr.Message)
}

func TestHandleErrorSQLiteCheck(t *testing.T) {
	db := openStrictSkills(t)

	_, execErr := db.Exec(`INSERT INTO skills (skill_name, category) VALUES ('Go', 'bogus')`)
	require.Error(t, execErr)

	httpErr := HandleError(execErr, "Unable to add skill.")
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "RECORD_INVALID", httpErr.Code)
	require.Equal(t, "Unable to add skill.", httpErr.Message)
	require.False(t, IsConnectionFailure(execErr))
}

func TestHandleErrorSQLiteOtherFailure(t *testing.T) {
	db := openStrictSkills(t)

	_, execErr := db.Exec(`SELECT * FROM no_such_table`)
	require.Error(t, execErr)

	httpErr := HandleError(execErr, "Unable to load skills data.")
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestMapSQLiteCode(t *testing.T) {
	require.Equal(t, UniqueViolation, MapSQLiteCode(2067))
	require.Equal(t, CheckViolation, MapSQLiteCode(275))
	require.Equal(t, IntegrityViolation, MapSQLiteCode(19))
	require.Equal(t, DataException, MapSQLiteCode(20))
	require.Equal(t, ConnectionException, MapSQLiteCode(14))
	require.Equal(t, Other, MapSQLiteCode(1))
}

func TestConstraintTarget(t *testing.T) {
	table, column := constraintTarget("constraint failed: UNIQUE constraint failed: skills.skill_name, skills.category (2067)")
	require.Equal(t, "skills", table)
	require.Equal(t, "skill_name", column)

	table, column = constraintTarget("constraint failed: CHECK constraint failed: category <> 'bogus' (275)")
	require.Empty(t, table)
	require.Empty(t, column)
}
