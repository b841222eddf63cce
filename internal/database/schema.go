package database

import (
	"context"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Schema returns the DDL for the dialect.
func Schema(dialect Dialect) (string, error) {
	b, err := schemaFS.ReadFile("schema/" + string(dialect) + ".sql")
	if err != nil {
		return "", fmt.Errorf("no schema for dialect %q: %w", dialect, err)
	}
	return string(b), nil
}

// EnsureSchema creates the portfolio tables when they do not exist yet.
// Existing tables are left untouched.
func (db *Database) EnsureSchema(ctx context.Context) error {
	ddl, err := Schema(db.Dialect)
	if err != nil {
		return err
	}

	conn, err := db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, stmt := range splitStatements(ddl) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	db.log.Info().Str("dialect", string(db.Dialect)).Msg("schema ensured")
	return nil
}

// splitStatements breaks a DDL script on ";". The schema files hold no
// string literals or bodies containing semicolons.
func splitStatements(ddl string) []string {
	var stmts []string
	for _, part := range strings.Split(ddl, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
