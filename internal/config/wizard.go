package config

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"
)

var projectNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]{1,19}$`)

func validateProjectName(name string) error {
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("project name must be lowercase, start with a letter and be at most 20 characters")
	}
	return nil
}

// WizardResult holds the user's choices from the init wizard.
type WizardResult struct {
	ProjectName    string
	WithProd       bool
	ContainerPort  int
	DatabaseName   string
	DailyCostLimit int
	VectorIndex    string
}

// RunWizard runs the interactive configuration wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		ContainerPort:  8000,
		DatabaseName:   "appdb",
		DailyCostLimit: 50,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Short name used as the prefix of every resource identity").
				Placeholder("marti").
				Value(&result.ProjectName).
				Validate(validateProjectName),
		),

		huh.NewGroup(
			huh.NewConfirm().
				Title("Include a prod environment?").
				Description("dev is always generated; prod adds multi-AZ and stricter retention").
				Value(&result.WithProd),
		),

		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Container port").
				Description("Port the application container listens on").
				Options(
					huh.NewOption("8000", 8000),
					huh.NewOption("8080", 8080),
					huh.NewOption("3000", 3000),
				).
				Value(&result.ContainerPort),

			huh.NewInput().
				Title("Database name").
				Description("Logical database created in the relational instance").
				Placeholder("appdb").
				Value(&result.DatabaseName),
		),

		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Daily cost alarm threshold").
				Description("Billing alarm fires above this daily spend (USD)").
				Options(
					huh.NewOption("$25", 25),
					huh.NewOption("$50", 50),
					huh.NewOption("$100", 100),
					huh.NewOption("$250", 250),
				).
				Value(&result.DailyCostLimit),

			huh.NewInput().
				Title("Vector index name").
				Description("Vector store index used by the ingestion functions").
				Placeholder("documents").
				Value(&result.VectorIndex),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}
	return result, nil
}

// ToTree converts the wizard result into a fully populated configuration
// tree, so the generated YAML is explicit and self-documenting.
func (r *WizardResult) ToTree() *Tree {
	dbName := r.DatabaseName
	if dbName == "" {
		dbName = "appdb"
	}
	index := r.VectorIndex
	if index == "" {
		index = "documents"
	}

	tree := &Tree{
		ProjectName: r.ProjectName,
		Environments: map[string]EnvConfig{
			"dev": r.envConfig("dev", dbName, index),
		},
	}
	if r.WithProd {
		tree.Environments["prod"] = r.envConfig("prod", dbName, index)
	}
	return tree
}

func (r *WizardResult) envConfig(env, dbName, index string) EnvConfig {
	prod := env == "prod"

	natGateways := 1
	desired := 1
	maxTasks := 4
	backupDays := 7
	if prod {
		natGateways = 2
		desired = 2
		maxTasks = 10
		backupDays = 30
	}

	return EnvConfig{
		Network: &NetworkConfig{
			MaxAZs:      2,
			NATGateways: natGateways,
		},
		Registry: &RegistryConfig{
			RepositoryName: "api",
			MaxImageCount:  10,
			EnableScan:     prod,
		},
		Application: &ApplicationConfig{
			ContainerInsights: prod,
			TaskCPU:           512,
			TaskMemory:        1024,
			ContainerPort:     r.ContainerPort,
			DesiredCount:      desired,
			MinTasks:          desired,
			MaxTasks:          maxTasks,
			HealthCheck: HealthCheckConfig{
				Path:           "/health",
				IntervalSec:    30,
				TimeoutSec:     5,
				HealthyCount:   2,
				UnhealthyCount: 3,
			},
			Scaling: ScalingConfig{
				CPUTargetUtilization: 70,
				RequestsPerTarget:    100,
				ScaleInCooldownSec:   300,
				ScaleOutCooldownSec:  60,
			},
			Database: AppDatabaseRef{Name: dbName},
		},
		Database: &DatabaseConfig{
			Cache: CacheConfig{
				NodeType: "cache.t4g.micro",
				NumNodes: 1,
				Port:     6379,
			},
			Relational: RelationalConfig{
				InstanceType:        "db.t4g.micro",
				AllocatedStorage:    20,
				MaxAllocatedStorage: 100,
				MultiAZ:             prod,
				BackupRetentionDays: backupDays,
				DatabaseName:        dbName,
				Port:                5432,
				DeletionProtection:  prod,
			},
		},
		Alarms: &AlarmConfig{
			Costs: CostAlarmConfig{DailyThreshold: float64(r.DailyCostLimit)},
			Relational: RelationalAlarmConfig{
				CPUThreshold:        80,
				StorageThreshold:    2_000_000_000,
				ConnectionThreshold: 50,
			},
			Cache: CacheAlarmConfig{
				CPUThreshold:    75,
				MemoryThreshold: 80,
			},
			Service: ServiceAlarmConfig{
				CPUThreshold:      80,
				MemoryThreshold:   80,
				Error5xxThreshold: 10,
				MinTasks:          float64(desired),
			},
			Network: NetworkAlarmConfig{NATPortThreshold: 50000},
		},
		Cleanup: &CleanupConfig{
			Relational: RelationalCleanupConfig{
				BackupRetentionDays: backupDays,
				MaintenanceWindow:   "sun:04:00-sun:05:00",
			},
			Cache: CacheCleanupConfig{
				SnapshotRetentionDays: 3,
				SnapshotWindow:        "02:00-03:00",
				MaintenanceWindow:     "sun:05:00-sun:06:00",
			},
			Registry: RegistryCleanupConfig{
				MaxTaggedImages:       10,
				UntaggedRetentionDays: 1,
				TagPrefixes:           []string{"release"},
			},
		},
		VectorStore: &VectorStoreConfig{
			APIKey:    "changeme",
			IndexName: index,
		},
	}
}

// WriteTreeYAML writes a configuration tree to a YAML file.
func WriteTreeYAML(tree *Tree, path string) error {
	data, err := yaml.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
