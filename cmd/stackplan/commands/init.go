package commands

import (
	"github.com/spf13/cobra"

	"github.com/martiops/stackplan/cmd/stackplan/handlers"
)

// Init returns the command for creating a configuration file interactively.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Create a stackplan configuration file through an interactive wizard.

The wizard asks a handful of questions and writes a fully expanded
configuration with sensible defaults for every category.

Examples:
  # Create stackplan.yaml in the current directory
  stackplan init

  # Write to a different location
  stackplan init -o infra/stackplan.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "stackplan.yaml", "Path to write the configuration file")

	return cmd
}
