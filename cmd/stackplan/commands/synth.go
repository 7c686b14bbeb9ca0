package commands

import (
	"github.com/spf13/cobra"

	"github.com/martiops/stackplan/cmd/stackplan/handlers"
)

// Synth returns the command for rendering a plan locally.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: stackplan.yaml)
//	--env, -e:    Environment to render (default: dev)
//	--project:    Project name override (default: projectName from config)
//	--out, -o:    Directory plans are written to (default: .stackplan)
func Synth() *cobra.Command {
	var opts handlers.SynthOptions

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Render the provisioning plan for an environment",
		Long: `Render the provisioning plan for an environment.

Reads the layered configuration, builds every stack in dependency order and
writes the resulting plan document to the local plan directory.

Examples:
  # Render the dev plan using stackplan.yaml in the current directory
  stackplan synth

  # Render the prod plan from a specific config file
  stackplan synth -c infra/stackplan.yaml -e prod`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Synth(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: stackplan.yaml)")
	cmd.Flags().StringVarP(&opts.Environment, "env", "e", "dev", "Environment to render")
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project name override")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", ".stackplan", "Directory plans are written to")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}
