package stacks

import (
	"fmt"

	"github.com/martiops/stackplan/internal/alarm"
	"github.com/martiops/stackplan/internal/plan"
)

// TopicParams declares the shared notification topic.
type TopicParams struct {
	TopicName   string `yaml:"topicName"`
	DisplayName string `yaml:"displayName"`
}

// Orchestrator runs the fixed stack set in dependency order and threads
// outputs forward through the shared state.
type Orchestrator struct {
	stages []Stage
}

// NewOrchestrator wires the default pipeline. The service stack instance is
// shared with its finalize stage, which patches database connection details
// into it after the database stack completes.
func NewOrchestrator() *Orchestrator {
	service := NewServiceStack()
	return &Orchestrator{
		stages: []Stage{
			NewNetworkStack(),
			NewRegistryStack(),
			service,
			NewDatabaseStack(),
			NewFinalizeStage(service),
			NewScrapingStack(),
			NewUploadStack(),
		},
	}
}

// Run declares the notification topic, binds account-level cost alarms and
// then builds every stack. Any failure aborts the remaining pipeline and is
// surfaced as a BuildError naming the failing stage.
func (o *Orchestrator) Run(ctx *Context) error {
	if err := o.setupMonitoring(ctx); err != nil {
		return &BuildError{Stage: "monitoring", Err: err}
	}
	return runStages(ctx, o.stages)
}

// setupMonitoring declares the alarm topic and the cost alarms that exist
// independently of any stack.
func (o *Orchestrator) setupMonitoring(ctx *Context) error {
	alarmCfg, err := ctx.Config.Alarms(ctx.Environment)
	if err != nil {
		return err
	}

	topic := plan.AlarmTopic(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   topic,
		Kind: plan.KindTopic,
		Params: TopicParams{
			TopicName:   string(topic),
			DisplayName: fmt.Sprintf("%s %s Alarms", ctx.Project, ctx.Environment),
		},
	})
	if err != nil {
		return err
	}

	ctx.Binder = alarm.NewBinder(alarmCfg, topic)
	return bindRules(ctx, ctx.Binder.CostRules())
}
