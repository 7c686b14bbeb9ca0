package stacks

import (
	"time"

	"github.com/martiops/stackplan/internal/alarm"
	"github.com/martiops/stackplan/internal/plan"
)

// Stage is one step of the provisioning pipeline.
type Stage interface {
	// Name returns the stage name used in logs and build errors.
	Name() string

	// Build appends the stage's descriptors to the plan and records its
	// output in the shared state.
	Build(ctx *Context) error
}

// AlarmSource is implemented by stages that want monitoring rules bound to
// their resources after they complete.
type AlarmSource interface {
	Alarms(ctx *Context) []alarm.Rule
}

// runStages executes stages sequentially, binding alarms after each stage
// that exposes them. The first failure aborts the pipeline.
func runStages(ctx *Context, stages []Stage) error {
	start := time.Now()
	ctx.Log.Info("building plan", "stages", len(stages), "project", ctx.Project, "environment", ctx.Environment)

	for _, stage := range stages {
		stageStart := time.Now()
		ctx.Log.Debug("stage starting", "stage", stage.Name())

		if err := stage.Build(ctx); err != nil {
			ctx.Log.Error("stage failed", "stage", stage.Name(), "error", err)
			return &BuildError{Stage: stage.Name(), Err: err}
		}

		if src, ok := stage.(AlarmSource); ok {
			if err := bindRules(ctx, src.Alarms(ctx)); err != nil {
				return &BuildError{Stage: stage.Name(), Err: err}
			}
		}

		ctx.Log.Info("stage completed", "stage", stage.Name(),
			"took", time.Since(stageStart).Round(time.Millisecond))
	}

	ctx.Log.Info("plan complete", "resources", ctx.Plan.Len(),
		"took", time.Since(start).Round(time.Millisecond))
	return nil
}

// bindRules converts alarm rules into alarm descriptors. Each rule depends
// on its target and the shared topic, both of which must already be in the
// plan.
func bindRules(ctx *Context, rules []alarm.Rule) error {
	for _, rule := range rules {
		deps := []plan.Identity{rule.Target}
		if rule.Topic != rule.Target {
			deps = append(deps, rule.Topic)
		}
		d := plan.Descriptor{
			ID:        plan.Alarm(ctx.Project, ctx.Environment, rule.Name),
			Kind:      plan.KindAlarm,
			Params:    rule,
			DependsOn: deps,
		}
		if err := ctx.Plan.Add(d); err != nil {
			return err
		}
	}
	return nil
}
