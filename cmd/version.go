package cmd

import (
	"fmt"

	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the built-in catalog version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "coursefit %s (catalog %s)\n", version, catalog.DefaultVersion)
	},
}
