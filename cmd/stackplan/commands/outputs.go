package commands

import (
	"github.com/spf13/cobra"

	"github.com/martiops/stackplan/cmd/stackplan/handlers"
)

// Outputs returns the command for showing the outputs of a rendered plan.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: stackplan.yaml)
//	--env, -e:    Environment to inspect (default: dev)
//	--project:    Project name override (default: projectName from config)
//	--out, -o:    Directory plans are read from (default: .stackplan)
func Outputs() *cobra.Command {
	var opts handlers.OutputsOptions

	cmd := &cobra.Command{
		Use:   "outputs",
		Short: "Show the outputs of a rendered plan",
		Long: `Show the operator-facing outputs of a previously rendered plan.

Run 'stackplan synth' first to render the plan.

Examples:
  # Show dev outputs
  stackplan outputs

  # Show prod outputs
  stackplan outputs -e prod`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Outputs(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: stackplan.yaml)")
	cmd.Flags().StringVarP(&opts.Environment, "env", "e", "dev", "Environment to inspect")
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project name override")
	cmd.Flags().StringVarP(&opts.PlanDir, "out", "o", ".stackplan", "Directory plans are read from")

	return cmd
}
