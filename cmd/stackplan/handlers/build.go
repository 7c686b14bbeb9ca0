// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/martiops/stackplan/internal/config"
	"github.com/martiops/stackplan/internal/logging"
	"github.com/martiops/stackplan/internal/plan"
	"github.com/martiops/stackplan/internal/stacks"
)

// planRunner interface for testing - matches stacks.Orchestrator.
type planRunner interface {
	Run(ctx *stacks.Context) error
}

// Factory function variables - can be replaced in tests for dependency
// injection.
var (
	// loadConfigFile loads the configuration tree from file.
	loadConfigFile = config.LoadFile

	// newOrchestrator creates the stack pipeline.
	newOrchestrator = func() planRunner {
		return stacks.NewOrchestrator()
	}
)

// resolveProject returns the project name, preferring the override.
func resolveProject(resolver *config.Resolver, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return resolver.ProjectName()
}

// buildPlan loads configuration, runs the full stack pipeline and renders
// the plan document for one environment.
func buildPlan(ctx context.Context, configPath, env, project, logLevel string) (*stacks.Context, *plan.Document, error) {
	if configPath == "" {
		configPath = config.DefaultFile
	}

	tree, err := loadConfigFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w\nRun 'stackplan init' to create one", configPath, err)
	}

	resolver := config.NewResolver(tree)
	project, err = resolveProject(resolver, project)
	if err != nil {
		return nil, nil, err
	}

	log := logging.NewLogger(os.Stderr, logging.ParseLevel(logLevel))
	runCtx := stacks.NewContext(ctx, project, env, resolver, log)

	if err := newOrchestrator().Run(runCtx); err != nil {
		return nil, nil, err
	}

	doc := runCtx.Plan.Document(runCtx.State.OutputValues())
	return runCtx, doc, nil
}
