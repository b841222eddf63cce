// Package cli builds the portfolio command tree.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/deppfellow/portfolio/internal/config"
)

type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

// loadConfigFn is swapped in tests.
var loadConfigFn = config.LoadConfig

func NewRootCommand(out io.Writer, build BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio site server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newSchemaCommand(out))
	cmd.AddCommand(newVersionCommand(out, build))
	return cmd
}
