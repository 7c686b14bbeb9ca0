package config

// Tree is the root of the configuration document.
type Tree struct {
	// ProjectName is the short project name used as the prefix of every
	// resource identity.
	ProjectName string `mapstructure:"projectName" yaml:"projectName"`

	// Environments maps environment name (dev, staging, prod) to its
	// configuration branch.
	Environments map[string]EnvConfig `mapstructure:"environments" yaml:"environments"`
}

// EnvConfig is one environment branch of the tree. Categories are pointers so
// that an absent category is distinguishable from an empty one.
type EnvConfig struct {
	Network     *NetworkConfig     `mapstructure:"network" yaml:"network"`
	Registry    *RegistryConfig    `mapstructure:"registry" yaml:"registry"`
	Application *ApplicationConfig `mapstructure:"application" yaml:"application"`
	Database    *DatabaseConfig    `mapstructure:"database" yaml:"database"`
	Alarms      *AlarmConfig       `mapstructure:"alarms" yaml:"alarms"`
	Cleanup     *CleanupConfig     `mapstructure:"cleanup" yaml:"cleanup"`
	VectorStore *VectorStoreConfig `mapstructure:"vectorStore" yaml:"vectorStore"`
}

// NetworkConfig defines the network topology parameters.
type NetworkConfig struct {
	// MaxAZs is the number of availability zones the network spans.
	MaxAZs int `mapstructure:"maxAzs" yaml:"maxAzs"`
	// NATGateways is the number of NAT gateways to provision.
	// Zero is valid for fully isolated environments.
	NATGateways int `mapstructure:"natGateways" yaml:"natGateways"`
}

// RegistryConfig defines the container registry parameters.
type RegistryConfig struct {
	RepositoryName string `mapstructure:"repositoryName" yaml:"repositoryName"`
	MaxImageCount  int    `mapstructure:"maxImageCount" yaml:"maxImageCount"`
	// EnableScan turns on image scanning on push. Defaults to false when
	// omitted.
	EnableScan bool `mapstructure:"enableScan" yaml:"enableScan"`
}

// HealthCheckConfig defines the service health check parameters.
type HealthCheckConfig struct {
	Path           string `mapstructure:"path" yaml:"path"`
	IntervalSec    int    `mapstructure:"interval" yaml:"interval"`
	TimeoutSec     int    `mapstructure:"timeout" yaml:"timeout"`
	HealthyCount   int    `mapstructure:"healthyCount" yaml:"healthyCount"`
	UnhealthyCount int    `mapstructure:"unhealthyCount" yaml:"unhealthyCount"`
}

// ScalingConfig defines the service autoscaling parameters.
type ScalingConfig struct {
	CPUTargetUtilization int `mapstructure:"cpuTargetUtilization" yaml:"cpuTargetUtilization"`
	RequestsPerTarget    int `mapstructure:"requestsPerTarget" yaml:"requestsPerTarget"`
	ScaleInCooldownSec   int `mapstructure:"scaleInCooldown" yaml:"scaleInCooldown"`
	ScaleOutCooldownSec  int `mapstructure:"scaleOutCooldown" yaml:"scaleOutCooldown"`
}

// ApplicationConfig defines the compute service parameters.
type ApplicationConfig struct {
	// ContainerInsights enables extended container telemetry. Defaults to
	// false when omitted.
	ContainerInsights bool              `mapstructure:"containerInsights" yaml:"containerInsights"`
	TaskCPU           int               `mapstructure:"taskCpu" yaml:"taskCpu"`
	TaskMemory        int               `mapstructure:"taskMemory" yaml:"taskMemory"`
	ContainerPort     int               `mapstructure:"containerPort" yaml:"containerPort"`
	DesiredCount      int               `mapstructure:"desiredCount" yaml:"desiredCount"`
	MinTasks          int               `mapstructure:"minTasks" yaml:"minTasks"`
	MaxTasks          int               `mapstructure:"maxTasks" yaml:"maxTasks"`
	HealthCheck       HealthCheckConfig `mapstructure:"healthCheck" yaml:"healthCheck"`
	Scaling           ScalingConfig     `mapstructure:"scaling" yaml:"scaling"`
	Database          AppDatabaseRef    `mapstructure:"database" yaml:"database"`
}

// AppDatabaseRef names the logical database the service connects to.
type AppDatabaseRef struct {
	Name string `mapstructure:"name" yaml:"name"`
}

// CacheConfig defines the cache cluster parameters.
type CacheConfig struct {
	NodeType string `mapstructure:"nodeType" yaml:"nodeType"`
	NumNodes int    `mapstructure:"numNodes" yaml:"numNodes"`
	Port     int    `mapstructure:"port" yaml:"port"`
}

// RelationalConfig defines the relational database parameters.
type RelationalConfig struct {
	InstanceType        string `mapstructure:"instanceType" yaml:"instanceType"`
	AllocatedStorage    int    `mapstructure:"allocatedStorage" yaml:"allocatedStorage"`
	MaxAllocatedStorage int    `mapstructure:"maxAllocatedStorage" yaml:"maxAllocatedStorage"`
	// MultiAZ enables standby replicas in a second availability zone.
	// Defaults to false when omitted.
	MultiAZ             bool   `mapstructure:"multiAz" yaml:"multiAz"`
	BackupRetentionDays int    `mapstructure:"backupRetentionDays" yaml:"backupRetentionDays"`
	DatabaseName        string `mapstructure:"databaseName" yaml:"databaseName"`
	Port                int    `mapstructure:"port" yaml:"port"`
	// DeletionProtection defaults to false when omitted.
	DeletionProtection bool `mapstructure:"deletionProtection" yaml:"deletionProtection"`
}

// DatabaseConfig groups the cache and relational database parameters.
type DatabaseConfig struct {
	Cache      CacheConfig      `mapstructure:"cache" yaml:"cache"`
	Relational RelationalConfig `mapstructure:"relational" yaml:"relational"`
}

// CostAlarmConfig defines billing alarm thresholds.
type CostAlarmConfig struct {
	DailyThreshold float64 `mapstructure:"dailyThreshold" yaml:"dailyThreshold"`
}

// RelationalAlarmConfig defines relational database alarm thresholds.
type RelationalAlarmConfig struct {
	CPUThreshold        float64 `mapstructure:"cpuThreshold" yaml:"cpuThreshold"`
	StorageThreshold    float64 `mapstructure:"storageThreshold" yaml:"storageThreshold"`
	ConnectionThreshold float64 `mapstructure:"connectionThreshold" yaml:"connectionThreshold"`
}

// CacheAlarmConfig defines cache cluster alarm thresholds.
type CacheAlarmConfig struct {
	CPUThreshold    float64 `mapstructure:"cpuThreshold" yaml:"cpuThreshold"`
	MemoryThreshold float64 `mapstructure:"memoryThreshold" yaml:"memoryThreshold"`
	// EvictionThreshold is optional; the alarm binder substitutes 1000
	// evictions per evaluation window when unset.
	EvictionThreshold *float64 `mapstructure:"evictionThreshold" yaml:"evictionThreshold,omitempty"`
}

// ServiceAlarmConfig defines compute service alarm thresholds.
type ServiceAlarmConfig struct {
	CPUThreshold      float64 `mapstructure:"cpuThreshold" yaml:"cpuThreshold"`
	MemoryThreshold   float64 `mapstructure:"memoryThreshold" yaml:"memoryThreshold"`
	Error5xxThreshold float64 `mapstructure:"error5xxThreshold" yaml:"error5xxThreshold"`
	MinTasks          float64 `mapstructure:"minTasks" yaml:"minTasks"`
	// UnhealthyTaskThreshold is optional; the alarm binder substitutes 1
	// when unset.
	UnhealthyTaskThreshold *float64 `mapstructure:"unhealthyTaskThreshold" yaml:"unhealthyTaskThreshold,omitempty"`
}

// NetworkAlarmConfig defines NAT gateway alarm thresholds.
type NetworkAlarmConfig struct {
	NATPortThreshold float64 `mapstructure:"natPortThreshold" yaml:"natPortThreshold"`
	// NATErrorThreshold is optional; the alarm binder substitutes 5 when
	// unset.
	NATErrorThreshold *float64 `mapstructure:"natErrorThreshold" yaml:"natErrorThreshold,omitempty"`
}

// AlarmConfig groups per-resource-kind alarm thresholds.
type AlarmConfig struct {
	Costs      CostAlarmConfig       `mapstructure:"costs" yaml:"costs"`
	Relational RelationalAlarmConfig `mapstructure:"relational" yaml:"relational"`
	Cache      CacheAlarmConfig      `mapstructure:"cache" yaml:"cache"`
	Service    ServiceAlarmConfig    `mapstructure:"service" yaml:"service"`
	Network    NetworkAlarmConfig    `mapstructure:"network" yaml:"network"`
}

// RelationalCleanupConfig defines backup and maintenance behavior for the
// relational database.
type RelationalCleanupConfig struct {
	BackupRetentionDays int    `mapstructure:"backupRetentionDays" yaml:"backupRetentionDays"`
	MaintenanceWindow   string `mapstructure:"maintenanceWindow" yaml:"maintenanceWindow"`
	// DeleteAutomatedBackups defaults to false when omitted.
	DeleteAutomatedBackups bool `mapstructure:"deleteAutomatedBackups" yaml:"deleteAutomatedBackups"`
}

// CacheCleanupConfig defines snapshot behavior for the cache cluster.
type CacheCleanupConfig struct {
	SnapshotRetentionDays int    `mapstructure:"snapshotRetentionDays" yaml:"snapshotRetentionDays"`
	SnapshotWindow        string `mapstructure:"snapshotWindow" yaml:"snapshotWindow"`
	MaintenanceWindow     string `mapstructure:"maintenanceWindow" yaml:"maintenanceWindow"`
}

// RegistryCleanupConfig defines image lifecycle behavior for the registry.
type RegistryCleanupConfig struct {
	MaxTaggedImages       int      `mapstructure:"maxTaggedImages" yaml:"maxTaggedImages"`
	UntaggedRetentionDays int      `mapstructure:"untaggedRetentionDays" yaml:"untaggedRetentionDays"`
	TagPrefixes           []string `mapstructure:"tagPrefixes" yaml:"tagPrefixes"`
}

// CleanupConfig groups resource retention and maintenance parameters.
type CleanupConfig struct {
	Relational RelationalCleanupConfig `mapstructure:"relational" yaml:"relational"`
	Cache      CacheCleanupConfig      `mapstructure:"cache" yaml:"cache"`
	Registry   RegistryCleanupConfig   `mapstructure:"registry" yaml:"registry"`
}

// VectorStoreConfig holds third-party vector index credentials consumed by
// the ingestion functions.
type VectorStoreConfig struct {
	APIKey    string `mapstructure:"apiKey" yaml:"apiKey"`
	IndexName string `mapstructure:"indexName" yaml:"indexName"`
}
