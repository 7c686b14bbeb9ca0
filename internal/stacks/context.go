package stacks

import (
	"context"
	"log/slog"

	"github.com/martiops/stackplan/internal/alarm"
	"github.com/martiops/stackplan/internal/config"
	"github.com/martiops/stackplan/internal/plan"
)

// Context wraps everything a stack needs while building: the resolved
// configuration, the plan under construction and the shared state of
// already-built stacks. One Context lives for exactly one run.
type Context struct {
	context.Context

	Project     string
	Environment string

	Config *config.Resolver
	Plan   *plan.Plan
	State  *State

	// Binder is set by the orchestrator once the notification topic is
	// declared, before any stack builds.
	Binder *alarm.Binder

	Log *slog.Logger
}

// NewContext creates a run context with an empty plan and state.
func NewContext(ctx context.Context, project, env string, resolver *config.Resolver, log *slog.Logger) *Context {
	if log == nil {
		log = slog.Default()
	}
	return &Context{
		Context:     ctx,
		Project:     project,
		Environment: env,
		Config:      resolver,
		Plan:        plan.New(project, env),
		State:       NewState(),
		Log:         log,
	}
}
