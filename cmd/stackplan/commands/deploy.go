package commands

import (
	"github.com/spf13/cobra"

	"github.com/martiops/stackplan/cmd/stackplan/handlers"
)

// Deploy returns the command for rendering and publishing a plan.
//
// Optional flags:
//
//	--config, -c:  Path to configuration YAML file (default: stackplan.yaml)
//	--env, -e:     Environment to deploy (default: dev)
//	--project:     Project name override (default: projectName from config)
//	--env-file:    Path to .env file with publish credentials (default: .env)
//
// Environment variables:
//
//	STACKPLAN_S3_ENDPOINT:   Object store endpoint (empty for AWS S3)
//	STACKPLAN_S3_REGION:     Object store region (default: us-east-1)
//	STACKPLAN_S3_ACCESS_KEY: Access key ID (required)
//	STACKPLAN_S3_SECRET_KEY: Secret access key (required)
//	STACKPLAN_S3_BUCKET:     Plan bucket (default: stackplan-plans)
func Deploy() *cobra.Command {
	var opts handlers.DeployOptions

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Render the plan and publish it to the plan bucket",
		Long: `Render the provisioning plan and publish it to the shared plan bucket.

The plan bucket is created if it does not exist. Credentials come from
STACKPLAN_* environment variables, optionally seeded from a .env file.

Examples:
  # Publish the dev plan
  stackplan deploy

  # Publish the prod plan with credentials from a specific env file
  stackplan deploy -e prod --env-file deploy.env`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: stackplan.yaml)")
	cmd.Flags().StringVarP(&opts.Environment, "env", "e", "dev", "Environment to deploy")
	cmd.Flags().StringVar(&opts.Project, "project", "", "Project name override")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", ".env", "Path to .env file with publish credentials")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}
