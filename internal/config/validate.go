package config

import "fmt"

// Validation happens when a category is resolved, not when its values are
// used, so a malformed branch fails before any stack starts building.
// Booleans are documented optional-default-false and are not checked here.

func (c *NetworkConfig) validate(env string) error {
	if c.MaxAZs <= 0 {
		return notFound(env, "network", "maxAzs")
	}
	if c.NATGateways < 0 {
		return fmt.Errorf("network.natGateways must not be negative for environment %q", env)
	}
	if c.NATGateways > c.MaxAZs {
		return fmt.Errorf("network.natGateways (%d) exceeds maxAzs (%d) for environment %q",
			c.NATGateways, c.MaxAZs, env)
	}
	return nil
}

func (c *RegistryConfig) validate(env string) error {
	if c.RepositoryName == "" {
		return notFound(env, "registry", "repositoryName")
	}
	if c.MaxImageCount <= 0 {
		return notFound(env, "registry", "maxImageCount")
	}
	return nil
}

func (c *ApplicationConfig) validate(env string) error {
	switch {
	case c.TaskCPU <= 0:
		return notFound(env, "application", "taskCpu")
	case c.TaskMemory <= 0:
		return notFound(env, "application", "taskMemory")
	case c.ContainerPort <= 0:
		return notFound(env, "application", "containerPort")
	case c.DesiredCount <= 0:
		return notFound(env, "application", "desiredCount")
	case c.MinTasks <= 0:
		return notFound(env, "application", "minTasks")
	case c.MaxTasks <= 0:
		return notFound(env, "application", "maxTasks")
	case c.Database.Name == "":
		return notFound(env, "application", "database.name")
	}
	if c.MaxTasks < c.MinTasks {
		return fmt.Errorf("application.maxTasks (%d) is below minTasks (%d) for environment %q",
			c.MaxTasks, c.MinTasks, env)
	}
	if err := c.HealthCheck.validate(env); err != nil {
		return err
	}
	return c.Scaling.validate(env)
}

func (c *HealthCheckConfig) validate(env string) error {
	switch {
	case c.Path == "":
		return notFound(env, "application", "healthCheck.path")
	case c.IntervalSec <= 0:
		return notFound(env, "application", "healthCheck.interval")
	case c.TimeoutSec <= 0:
		return notFound(env, "application", "healthCheck.timeout")
	case c.HealthyCount <= 0:
		return notFound(env, "application", "healthCheck.healthyCount")
	case c.UnhealthyCount <= 0:
		return notFound(env, "application", "healthCheck.unhealthyCount")
	}
	if c.TimeoutSec >= c.IntervalSec {
		return fmt.Errorf("application.healthCheck.timeout (%ds) must be below interval (%ds) for environment %q",
			c.TimeoutSec, c.IntervalSec, env)
	}
	return nil
}

func (c *ScalingConfig) validate(env string) error {
	switch {
	case c.CPUTargetUtilization <= 0:
		return notFound(env, "application", "scaling.cpuTargetUtilization")
	case c.RequestsPerTarget <= 0:
		return notFound(env, "application", "scaling.requestsPerTarget")
	case c.ScaleInCooldownSec <= 0:
		return notFound(env, "application", "scaling.scaleInCooldown")
	case c.ScaleOutCooldownSec <= 0:
		return notFound(env, "application", "scaling.scaleOutCooldown")
	}
	if c.CPUTargetUtilization > 100 {
		return fmt.Errorf("application.scaling.cpuTargetUtilization must be a percentage for environment %q", env)
	}
	return nil
}

func (c *DatabaseConfig) validate(env string) error {
	switch {
	case c.Cache.NodeType == "":
		return notFound(env, "database", "cache.nodeType")
	case c.Cache.NumNodes <= 0:
		return notFound(env, "database", "cache.numNodes")
	case c.Cache.Port <= 0:
		return notFound(env, "database", "cache.port")
	case c.Relational.InstanceType == "":
		return notFound(env, "database", "relational.instanceType")
	case c.Relational.AllocatedStorage <= 0:
		return notFound(env, "database", "relational.allocatedStorage")
	case c.Relational.MaxAllocatedStorage <= 0:
		return notFound(env, "database", "relational.maxAllocatedStorage")
	case c.Relational.DatabaseName == "":
		return notFound(env, "database", "relational.databaseName")
	case c.Relational.Port <= 0:
		return notFound(env, "database", "relational.port")
	}
	if c.Relational.MaxAllocatedStorage < c.Relational.AllocatedStorage {
		return fmt.Errorf("database.relational.maxAllocatedStorage (%d) is below allocatedStorage (%d) for environment %q",
			c.Relational.MaxAllocatedStorage, c.Relational.AllocatedStorage, env)
	}
	return nil
}

func (c *AlarmConfig) validate(env string) error {
	switch {
	case c.Costs.DailyThreshold <= 0:
		return notFound(env, "alarms", "costs.dailyThreshold")
	case c.Relational.CPUThreshold <= 0:
		return notFound(env, "alarms", "relational.cpuThreshold")
	case c.Relational.StorageThreshold <= 0:
		return notFound(env, "alarms", "relational.storageThreshold")
	case c.Relational.ConnectionThreshold <= 0:
		return notFound(env, "alarms", "relational.connectionThreshold")
	case c.Cache.CPUThreshold <= 0:
		return notFound(env, "alarms", "cache.cpuThreshold")
	case c.Cache.MemoryThreshold <= 0:
		return notFound(env, "alarms", "cache.memoryThreshold")
	case c.Service.CPUThreshold <= 0:
		return notFound(env, "alarms", "service.cpuThreshold")
	case c.Service.MemoryThreshold <= 0:
		return notFound(env, "alarms", "service.memoryThreshold")
	case c.Service.Error5xxThreshold <= 0:
		return notFound(env, "alarms", "service.error5xxThreshold")
	case c.Service.MinTasks <= 0:
		return notFound(env, "alarms", "service.minTasks")
	case c.Network.NATPortThreshold <= 0:
		return notFound(env, "alarms", "network.natPortThreshold")
	}
	return nil
}

func (c *CleanupConfig) validate(env string) error {
	switch {
	case c.Relational.BackupRetentionDays <= 0:
		return notFound(env, "cleanup", "relational.backupRetentionDays")
	case c.Relational.MaintenanceWindow == "":
		return notFound(env, "cleanup", "relational.maintenanceWindow")
	case c.Cache.SnapshotRetentionDays <= 0:
		return notFound(env, "cleanup", "cache.snapshotRetentionDays")
	case c.Cache.SnapshotWindow == "":
		return notFound(env, "cleanup", "cache.snapshotWindow")
	case c.Cache.MaintenanceWindow == "":
		return notFound(env, "cleanup", "cache.maintenanceWindow")
	case c.Registry.MaxTaggedImages <= 0:
		return notFound(env, "cleanup", "registry.maxTaggedImages")
	case c.Registry.UntaggedRetentionDays <= 0:
		return notFound(env, "cleanup", "registry.untaggedRetentionDays")
	}
	return nil
}

func (c *VectorStoreConfig) validate(env string) error {
	if c.APIKey == "" {
		return notFound(env, "vectorStore", "apiKey")
	}
	if c.IndexName == "" {
		return notFound(env, "vectorStore", "indexName")
	}
	return nil
}
