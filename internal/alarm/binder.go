package alarm

import (
	"fmt"

	"github.com/martiops/stackplan/internal/config"
	"github.com/martiops/stackplan/internal/plan"
)

// Defaults substituted for optional thresholds.
const (
	// DefaultEvictionThreshold is the cache eviction count per evaluation
	// window used when alarms.cache.evictionThreshold is unset.
	DefaultEvictionThreshold = 1000
	// DefaultUnhealthyTaskThreshold is used when
	// alarms.service.unhealthyTaskThreshold is unset.
	DefaultUnhealthyTaskThreshold = 1
	// DefaultNATErrorThreshold is used when alarms.network.natErrorThreshold
	// is unset.
	DefaultNATErrorThreshold = 5
)

// Binder synthesizes alarm rules for completed stacks, all bound to one
// shared notification topic.
type Binder struct {
	cfg   config.AlarmConfig
	topic plan.Identity
}

// NewBinder creates a binder for one run.
func NewBinder(cfg config.AlarmConfig, topic plan.Identity) *Binder {
	return &Binder{cfg: cfg, topic: topic}
}

// Topic returns the shared notification target.
func (b *Binder) Topic() plan.Identity { return b.topic }

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// CostRules synthesizes account-level billing alarms. These are bound before
// any stack builds, mirroring their account-wide scope.
func (b *Binder) CostRules() []Rule {
	return []Rule{{
		Name:              "daily-cost",
		Target:            b.topic, // billing alarms have no resource target; watch the account
		Namespace:         "AWS/Billing",
		Metric:            "EstimatedCharges",
		Statistic:         "Maximum",
		Threshold:         b.cfg.Costs.DailyThreshold,
		Comparison:        ComparisonGreaterThan,
		PeriodSeconds:     86400,
		EvaluationPeriods: 1,
		Description:       fmt.Sprintf("Daily cost exceeded $%.0f USD", b.cfg.Costs.DailyThreshold),
		Topic:             b.topic,
	}}
}

// NetworkRules synthesizes saturation and error-rate alarms per NAT gateway.
func (b *Binder) NetworkRules(natGateways []plan.Identity) []Rule {
	rules := make([]Rule, 0, 2*len(natGateways))
	for i, gw := range natGateways {
		rules = append(rules,
			Rule{
				Name:              fmt.Sprintf("nat-port-%d", i),
				Target:            gw,
				Namespace:         "AWS/NATGateway",
				Metric:            "PortAllocation",
				Statistic:         "Average",
				Threshold:         b.cfg.Network.NATPortThreshold,
				Comparison:        ComparisonGreaterThan,
				PeriodSeconds:     300,
				EvaluationPeriods: 3,
				DatapointsToAlarm: 2,
				Description:       fmt.Sprintf("NAT gateway port allocation exceeded %.0f", b.cfg.Network.NATPortThreshold),
				Topic:             b.topic,
			},
			Rule{
				Name:              fmt.Sprintf("nat-errors-%d", i),
				Target:            gw,
				Namespace:         "AWS/NATGateway",
				Metric:            "ErrorPortAllocation",
				Statistic:         "Sum",
				Threshold:         orDefault(b.cfg.Network.NATErrorThreshold, DefaultNATErrorThreshold),
				Comparison:        ComparisonGreaterThan,
				PeriodSeconds:     300,
				EvaluationPeriods: 2,
				DatapointsToAlarm: 2,
				Description:       "NAT gateway experiencing port allocation errors",
				Topic:             b.topic,
			},
		)
	}
	return rules
}

// ServiceRules synthesizes utilization, error-rate and availability alarms
// for the compute service.
func (b *Binder) ServiceRules(service plan.Identity) []Rule {
	return []Rule{
		{
			Name:              "service-cpu",
			Target:            service,
			Namespace:         "AWS/ECS",
			Metric:            "CPUUtilization",
			Statistic:         "Average",
			Threshold:         b.cfg.Service.CPUThreshold,
			Comparison:        ComparisonGreaterThan,
			PeriodSeconds:     300,
			EvaluationPeriods: 3,
			DatapointsToAlarm: 2,
			Description:       fmt.Sprintf("Service CPU utilization exceeded %.0f%%", b.cfg.Service.CPUThreshold),
			Topic:             b.topic,
		},
		{
			Name:              "service-memory",
			Target:            service,
			Namespace:         "AWS/ECS",
			Metric:            "MemoryUtilization",
			Statistic:         "Average",
			Threshold:         b.cfg.Service.MemoryThreshold,
			Comparison:        ComparisonGreaterThan,
			PeriodSeconds:     300,
			EvaluationPeriods: 3,
			DatapointsToAlarm: 2,
			Description:       fmt.Sprintf("Service memory utilization exceeded %.0f%%", b.cfg.Service.MemoryThreshold),
			Topic:             b.topic,
		},
		{
			Name:              "service-5xx",
			Target:            service,
			Namespace:         "AWS/ApplicationELB",
			Metric:            "HTTPCode_Target_5XX_Count",
			Statistic:         "Sum",
			Threshold:         b.cfg.Service.Error5xxThreshold,
			Comparison:        ComparisonGreaterThan,
			PeriodSeconds:     300,
			EvaluationPeriods: 3,
			DatapointsToAlarm: 2,
			Description:       fmt.Sprintf("HTTP 5XX responses exceeded %.0f per 5 minutes", b.cfg.Service.Error5xxThreshold),
			Topic:             b.topic,
		},
		{
			Name:              "service-unhealthy-tasks",
			Target:            service,
			Namespace:         "AWS/ApplicationELB",
			Metric:            "UnHealthyHostCount",
			Statistic:         "Maximum",
			Threshold:         orDefault(b.cfg.Service.UnhealthyTaskThreshold, DefaultUnhealthyTaskThreshold),
			Comparison:        ComparisonGreaterThan,
			PeriodSeconds:     60,
			EvaluationPeriods: 2,
			DatapointsToAlarm: 2,
			Description:       "Service tasks failing health checks",
			Topic:             b.topic,
		},
		{
			Name:              "service-min-tasks",
			Target:            service,
			Namespace:         "AWS/ECS",
			Metric:            "RunningTaskCount",
			Statistic:         "Average",
			Threshold:         b.cfg.Service.MinTasks,
			Comparison:        ComparisonLessThan,
			PeriodSeconds:     300,
			EvaluationPeriods: 2,
			DatapointsToAlarm: 2,
			Description:       fmt.Sprintf("Running tasks below minimum of %.0f", b.cfg.Service.MinTasks),
			Topic:             b.topic,
		},
	}
}

// RelationalRules synthesizes utilization and saturation alarms for the
// relational database.
func (b *Binder) RelationalRules(db plan.Identity) []Rule {
	return []Rule{
		{
			Name:              "rds-cpu",
			Target:            db,
			Namespace:         "AWS/RDS",
			Metric:            "CPUUtilization",
			Statistic:         "Average",
			Threshold:         b.cfg.Relational.CPUThreshold,
			Comparison:        ComparisonGreaterThan,
			PeriodSeconds:     300,
			EvaluationPeriods: 3,
			DatapointsToAlarm: 2,
			Description:       fmt.Sprintf("Database CPU utilization exceeded %.0f%%", b.cfg.Relational.CPUThreshold),
			Topic:             b.topic,
		},
		{
			Name:              "rds-storage",
			Target:            db,
			Namespace:         "AWS/RDS",
			Metric:            "FreeStorageSpace",
			Statistic:         "Average",
			Threshold:         b.cfg.Relational.StorageThreshold,
			Comparison:        ComparisonLessThan,
			PeriodSeconds:     300,
			EvaluationPeriods: 3,
			DatapointsToAlarm: 2,
			Description:       fmt.Sprintf("Database free storage below %.0f bytes", b.cfg.Relational.StorageThreshold),
			Topic:             b.topic,
		},
		{
			Name:              "rds-connections",
			Target:            db,
			Namespace:         "AWS/RDS",
			Metric:            "DatabaseConnections",
			Statistic:         "Average",
			Threshold:         b.cfg.Relational.ConnectionThreshold,
			Comparison:        ComparisonGreaterThan,
			PeriodSeconds:     300,
			EvaluationPeriods: 2,
			DatapointsToAlarm: 2,
			Description:       fmt.Sprintf("Database connections near limit of %.0f", b.cfg.Relational.ConnectionThreshold),
			Topic:             b.topic,
		},
		{
			Name:              "rds-deadlocks",
			Target:            db,
			Namespace:         "AWS/RDS",
			Metric:            "Deadlocks",
			Statistic:         "Sum",
			Threshold:         0,
			Comparison:        ComparisonGreaterThan,
			PeriodSeconds:     300,
			EvaluationPeriods: 1,
			Description:       "Database deadlock detected",
			Topic:             b.topic,
		},
	}
}

// CacheRules synthesizes utilization and saturation alarms for the cache
// cluster.
func (b *Binder) CacheRules(cache plan.Identity) []Rule {
	return []Rule{
		{
			Name:              "redis-cpu",
			Target:            cache,
			Namespace:         "AWS/ElastiCache",
			Metric:            "CPUUtilization",
			Statistic:         "Average",
			Threshold:         b.cfg.Cache.CPUThreshold,
			Comparison:        ComparisonGreaterThan,
			PeriodSeconds:     300,
			EvaluationPeriods: 3,
			DatapointsToAlarm: 2,
			Description:       fmt.Sprintf("Cache CPU utilization exceeded %.0f%%", b.cfg.Cache.CPUThreshold),
			Topic:             b.topic,
		},
		{
			Name:              "redis-memory",
			Target:            cache,
			Namespace:         "AWS/ElastiCache",
			Metric:            "DatabaseMemoryUsagePercentage",
			Statistic:         "Average",
			Threshold:         b.cfg.Cache.MemoryThreshold,
			Comparison:        ComparisonGreaterThan,
			PeriodSeconds:     300,
			EvaluationPeriods: 3,
			DatapointsToAlarm: 2,
			Description:       fmt.Sprintf("Cache memory usage exceeded %.0f%%", b.cfg.Cache.MemoryThreshold),
			Topic:             b.topic,
		},
		{
			Name:              "redis-critical-memory",
			Target:            cache,
			Namespace:         "AWS/ElastiCache",
			Metric:            "DatabaseMemoryUsagePercentage",
			Statistic:         "Maximum",
			Threshold:         90,
			Comparison:        ComparisonGreaterThan,
			PeriodSeconds:     60,
			EvaluationPeriods: 1,
			Description:       "Cache memory usage critically high (>90%)",
			Topic:             b.topic,
		},
		{
			Name:              "redis-evictions",
			Target:            cache,
			Namespace:         "AWS/ElastiCache",
			Metric:            "Evictions",
			Statistic:         "Sum",
			Threshold:         orDefault(b.cfg.Cache.EvictionThreshold, DefaultEvictionThreshold),
			Comparison:        ComparisonGreaterThan,
			PeriodSeconds:     300,
			EvaluationPeriods: 1,
			Description:       "Cache evictions occurring",
			Topic:             b.topic,
		},
	}
}
