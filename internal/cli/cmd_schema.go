package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/deppfellow/portfolio/internal/database"
	"github.com/deppfellow/portfolio/internal/logger"
)

const schemaApplyTimeout = 30 * time.Second

func newSchemaCommand(out io.Writer) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print or apply the table definitions for the configured driver",
		Example: "  portfolio schema\n" +
			"  portfolio schema --apply",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apply {
				return runSchemaApply(cmd.Context())
			}
			return runSchemaPrint(out)
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Create missing tables instead of printing them")
	return cmd
}

func runSchemaPrint(out io.Writer) error {
	cfg, err := loadConfigFn()
	if err != nil {
		return fmt.Errorf("schema: load config: %w", err)
	}

	ddl, err := database.Schema(database.Dialect(cfg.Database.Driver))
	if err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	_, err = io.WriteString(out, ddl)
	return err
}

func runSchemaApply(ctx context.Context) error {
	cfg, err := loadConfigFn()
	if err != nil {
		return fmt.Errorf("schema: load config: %w", err)
	}

	log := logger.NewLogger(cfg.Observability)

	db, err := database.New(cfg, &log, nil)
	if err != nil {
		return fmt.Errorf("schema: open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, schemaApplyTimeout)
	defer cancel()

	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("schema: apply: %w", err)
	}
	return nil
}
