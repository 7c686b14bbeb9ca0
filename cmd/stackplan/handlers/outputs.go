package handlers

import (
	"context"
	"fmt"

	"github.com/martiops/stackplan/internal/config"
	"github.com/martiops/stackplan/internal/plan"
	"github.com/martiops/stackplan/internal/sink"
)

// OutputsOptions configures the outputs handler.
type OutputsOptions struct {
	ConfigPath  string
	Environment string
	Project     string
	PlanDir     string
}

// fetchPlan reads a stored plan document (for testing injection).
var fetchPlan = func(ctx context.Context, dir, project, env string) (*plan.Document, error) {
	return sink.NewFileSink(dir).Fetch(ctx, project, env)
}

// Outputs prints the operator-facing outputs of a previously rendered plan.
func Outputs(ctx context.Context, opts OutputsOptions) error {
	project := opts.Project
	if project == "" {
		configPath := opts.ConfigPath
		if configPath == "" {
			configPath = config.DefaultFile
		}
		tree, err := loadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w\nPass --project to skip the config lookup", configPath, err)
		}
		project, err = config.NewResolver(tree).ProjectName()
		if err != nil {
			return err
		}
	}

	doc, err := fetchPlan(ctx, opts.PlanDir, project, opts.Environment)
	if err != nil {
		return err
	}

	fmt.Print(renderOutputs(doc))
	return nil
}
