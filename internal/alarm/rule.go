// Package alarm synthesizes monitoring rules for provisioned resources.
//
// The binder is a pure function of (resource identity, thresholds) to a fixed
// catalogue of rules per resource kind. Unlike configuration resolution it is
// lenient: optional thresholds fall back to documented defaults instead of
// failing, because a missing alarm is observability best-effort, not a
// correctness problem.
package alarm

import "github.com/martiops/stackplan/internal/plan"

// Comparison selects the direction of a threshold breach.
type Comparison string

const (
	ComparisonGreaterThan Comparison = "GreaterThanThreshold"
	ComparisonLessThan    Comparison = "LessThanThreshold"
)

// Rule describes one monitoring alarm bound to a resource.
type Rule struct {
	// Name is the rule's role, unique within one run (e.g. "redis-cpu").
	Name string `yaml:"name"`
	// Target is the resource the rule watches. The rule references the
	// target by identity; it does not own it.
	Target plan.Identity `yaml:"target"`

	Namespace string `yaml:"namespace"`
	Metric    string `yaml:"metric"`
	Statistic string `yaml:"statistic"`

	Threshold         float64    `yaml:"threshold"`
	Comparison        Comparison `yaml:"comparison"`
	PeriodSeconds     int        `yaml:"periodSeconds"`
	EvaluationPeriods int        `yaml:"evaluationPeriods"`
	// DatapointsToAlarm is the consecutive-breach count within the
	// evaluation window. Zero means every period must breach.
	DatapointsToAlarm int `yaml:"datapointsToAlarm,omitempty"`

	Description string `yaml:"description"`
	// Topic is the shared notification target.
	Topic plan.Identity `yaml:"topic"`
}
