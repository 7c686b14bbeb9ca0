package stacks

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/martiops/stackplan/internal/config"
)

func testEnvConfig() config.EnvConfig {
	return config.EnvConfig{
		Network: &config.NetworkConfig{
			MaxAZs:      2,
			NATGateways: 1,
		},
		Registry: &config.RegistryConfig{
			RepositoryName: "api",
			MaxImageCount:  10,
			EnableScan:     true,
		},
		Application: &config.ApplicationConfig{
			TaskCPU:       512,
			TaskMemory:    1024,
			ContainerPort: 8000,
			DesiredCount:  1,
			MinTasks:      1,
			MaxTasks:      4,
			HealthCheck: config.HealthCheckConfig{
				Path:           "/health",
				IntervalSec:    30,
				TimeoutSec:     5,
				HealthyCount:   2,
				UnhealthyCount: 3,
			},
			Scaling: config.ScalingConfig{
				CPUTargetUtilization: 70,
				RequestsPerTarget:    100,
				ScaleInCooldownSec:   300,
				ScaleOutCooldownSec:  60,
			},
			Database: config.AppDatabaseRef{Name: "appdb"},
		},
		Database: &config.DatabaseConfig{
			Cache: config.CacheConfig{
				NodeType: "cache.t4g.micro",
				NumNodes: 1,
				Port:     6379,
			},
			Relational: config.RelationalConfig{
				InstanceType:        "db.t4g.micro",
				AllocatedStorage:    20,
				MaxAllocatedStorage: 100,
				DatabaseName:        "appdb",
				Port:                5432,
			},
		},
		Alarms: &config.AlarmConfig{
			Costs: config.CostAlarmConfig{DailyThreshold: 50},
			Relational: config.RelationalAlarmConfig{
				CPUThreshold:        80,
				StorageThreshold:    2_000_000_000,
				ConnectionThreshold: 50,
			},
			Cache: config.CacheAlarmConfig{
				CPUThreshold:    75,
				MemoryThreshold: 80,
			},
			Service: config.ServiceAlarmConfig{
				CPUThreshold:      80,
				MemoryThreshold:   80,
				Error5xxThreshold: 10,
				MinTasks:          1,
			},
			Network: config.NetworkAlarmConfig{NATPortThreshold: 50000},
		},
		Cleanup: &config.CleanupConfig{
			Relational: config.RelationalCleanupConfig{
				BackupRetentionDays: 7,
				MaintenanceWindow:   "sun:04:00-sun:05:00",
			},
			Cache: config.CacheCleanupConfig{
				SnapshotRetentionDays: 3,
				SnapshotWindow:        "02:00-03:00",
				MaintenanceWindow:     "sun:05:00-sun:06:00",
			},
			Registry: config.RegistryCleanupConfig{
				MaxTaggedImages:       10,
				UntaggedRetentionDays: 1,
				TagPrefixes:           []string{"release"},
			},
		},
		VectorStore: &config.VectorStoreConfig{
			APIKey:    "pk-test",
			IndexName: "documents",
		},
	}
}

func testTree() *config.Tree {
	dev := testEnvConfig()
	prod := testEnvConfig()
	prod.Network.NATGateways = 2
	prod.Application.DesiredCount = 2
	prod.Database.Relational.MultiAZ = true
	return &config.Tree{
		ProjectName: "marti",
		Environments: map[string]config.EnvConfig{
			"dev":  dev,
			"prod": prod,
		},
	}
}

func newTestContext(t *testing.T, env string) *Context {
	t.Helper()
	resolver := config.NewResolver(testTree())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewContext(context.Background(), "marti", env, resolver, log)
}
