package alarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martiops/stackplan/internal/config"
	"github.com/martiops/stackplan/internal/plan"
)

func testAlarmConfig() config.AlarmConfig {
	return config.AlarmConfig{
		Costs:      config.CostAlarmConfig{DailyThreshold: 50},
		Relational: config.RelationalAlarmConfig{CPUThreshold: 80, StorageThreshold: 2 << 30, ConnectionThreshold: 50},
		Cache:      config.CacheAlarmConfig{CPUThreshold: 75, MemoryThreshold: 80},
		Service:    config.ServiceAlarmConfig{CPUThreshold: 80, MemoryThreshold: 80, Error5xxThreshold: 10, MinTasks: 1},
		Network:    config.NetworkAlarmConfig{NATPortThreshold: 50000},
	}
}

func findRule(t *testing.T, rules []Rule, name string) Rule {
	t.Helper()
	for _, r := range rules {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("rule %q not found", name)
	return Rule{}
}

func TestCacheRulesEvictionDefault(t *testing.T) {
	t.Parallel()
	b := NewBinder(testAlarmConfig(), plan.AlarmTopic("marti", "dev"))

	rules := b.CacheRules(plan.CacheCluster("marti", "dev"))
	eviction := findRule(t, rules, "redis-evictions")
	assert.Equal(t, float64(DefaultEvictionThreshold), eviction.Threshold)
}

func TestCacheRulesEvictionConfigured(t *testing.T) {
	t.Parallel()
	cfg := testAlarmConfig()
	threshold := 500.0
	cfg.Cache.EvictionThreshold = &threshold
	b := NewBinder(cfg, plan.AlarmTopic("marti", "dev"))

	rules := b.CacheRules(plan.CacheCluster("marti", "dev"))
	eviction := findRule(t, rules, "redis-evictions")
	assert.Equal(t, 500.0, eviction.Threshold)
}

func TestServiceRulesDefaults(t *testing.T) {
	t.Parallel()
	b := NewBinder(testAlarmConfig(), plan.AlarmTopic("marti", "dev"))
	service := plan.Service("marti", "dev")

	rules := b.ServiceRules(service)
	require.Len(t, rules, 5)

	unhealthy := findRule(t, rules, "service-unhealthy-tasks")
	assert.Equal(t, float64(DefaultUnhealthyTaskThreshold), unhealthy.Threshold)

	minTasks := findRule(t, rules, "service-min-tasks")
	assert.Equal(t, ComparisonLessThan, minTasks.Comparison)

	for _, r := range rules {
		assert.Equal(t, service, r.Target)
		assert.Equal(t, plan.AlarmTopic("marti", "dev"), r.Topic)
	}
}

func TestNetworkRulesPerGateway(t *testing.T) {
	t.Parallel()
	b := NewBinder(testAlarmConfig(), plan.AlarmTopic("marti", "dev"))

	gateways := []plan.Identity{
		plan.NATGateway("marti", "dev", 0),
		plan.NATGateway("marti", "dev", 1),
	}
	rules := b.NetworkRules(gateways)
	require.Len(t, rules, 4)

	errRule := findRule(t, rules, "nat-errors-0")
	assert.Equal(t, float64(DefaultNATErrorThreshold), errRule.Threshold)
	assert.Equal(t, gateways[0], errRule.Target)
}

func TestNetworkRulesNoGateways(t *testing.T) {
	t.Parallel()
	b := NewBinder(testAlarmConfig(), plan.AlarmTopic("marti", "dev"))
	assert.Empty(t, b.NetworkRules(nil))
}

func TestRelationalRulesCatalogue(t *testing.T) {
	t.Parallel()
	b := NewBinder(testAlarmConfig(), plan.AlarmTopic("marti", "dev"))

	rules := b.RelationalRules(plan.RelationalDatabase("marti", "dev"))
	require.Len(t, rules, 4)

	storage := findRule(t, rules, "rds-storage")
	assert.Equal(t, ComparisonLessThan, storage.Comparison)

	deadlocks := findRule(t, rules, "rds-deadlocks")
	assert.Zero(t, deadlocks.Threshold)
}

func TestCostRules(t *testing.T) {
	t.Parallel()
	b := NewBinder(testAlarmConfig(), plan.AlarmTopic("marti", "dev"))

	rules := b.CostRules()
	require.Len(t, rules, 1)
	assert.Equal(t, 50.0, rules[0].Threshold)
	assert.Equal(t, 86400, rules[0].PeriodSeconds)
}
