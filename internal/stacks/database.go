package stacks

import (
	"github.com/martiops/stackplan/internal/alarm"
	"github.com/martiops/stackplan/internal/plan"
)

// CacheParams declares the cache cluster.
type CacheParams struct {
	NodeType              string `yaml:"nodeType"`
	NumNodes              int    `yaml:"numNodes"`
	Port                  int    `yaml:"port"`
	SubnetTier            string `yaml:"subnetTier"`
	SnapshotRetentionDays int    `yaml:"snapshotRetentionDays"`
	SnapshotWindow        string `yaml:"snapshotWindow"`
	MaintenanceWindow     string `yaml:"maintenanceWindow"`
}

// RelationalParams declares the relational database instance.
type RelationalParams struct {
	Engine                 string `yaml:"engine"`
	EngineVersion          string `yaml:"engineVersion"`
	InstanceType           string `yaml:"instanceType"`
	AllocatedStorage       int    `yaml:"allocatedStorage"`
	MaxAllocatedStorage    int    `yaml:"maxAllocatedStorage"`
	StorageType            string `yaml:"storageType"`
	MultiAZ                bool   `yaml:"multiAz"`
	DatabaseName           string `yaml:"databaseName"`
	Port                   int    `yaml:"port"`
	SubnetTier             string `yaml:"subnetTier"`
	CredentialsSecret      string `yaml:"credentialsSecret"`
	BackupRetentionDays    int    `yaml:"backupRetentionDays"`
	PreferredBackupWindow  string `yaml:"preferredBackupWindow"`
	MaintenanceWindow      string `yaml:"maintenanceWindow"`
	DeleteAutomatedBackups bool   `yaml:"deleteAutomatedBackups"`
	DeletionProtection     bool   `yaml:"deletionProtection"`
	RemovalPolicy          string `yaml:"removalPolicy"`
}

// DatabaseStack builds the cache cluster and the relational database, with
// ingress restricted to the application's security group.
type DatabaseStack struct{}

// NewDatabaseStack creates the database stack.
func NewDatabaseStack() *DatabaseStack {
	return &DatabaseStack{}
}

// Name implements the Stage interface.
func (s *DatabaseStack) Name() string { return "database" }

// Build implements the Stage interface.
func (s *DatabaseStack) Build(ctx *Context) error {
	if ctx.State.Network == nil {
		return &DependencyError{Stage: s.Name(), Needs: "network output"}
	}
	if ctx.State.Service == nil || ctx.State.Service.SecurityGroup == "" {
		return &DependencyError{Stage: s.Name(), Needs: "service security group"}
	}

	cfg, err := ctx.Config.Database(ctx.Environment)
	if err != nil {
		return err
	}
	cleanup, err := ctx.Config.Cleanup(ctx.Environment)
	if err != nil {
		return err
	}

	network := ctx.State.Network.Network
	appSG := ctx.State.Service.SecurityGroup

	// Cache
	cacheSG := plan.CacheSecurityGroup(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   cacheSG,
		Kind: plan.KindSecurityGroup,
		Params: SecurityGroupParams{
			Description: "Security group for the cache cluster",
			AllowAllOut: true,
			Ingress: []SecurityGroupIngress{{
				FromSecurityGroup: appSG,
				Port:              cfg.Cache.Port,
				Description:       "Allow application to connect to the cache",
			}},
		},
		DependsOn: []plan.Identity{network, appSG},
	})
	if err != nil {
		return err
	}

	cache := plan.CacheCluster(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   cache,
		Kind: plan.KindCacheCluster,
		Params: CacheParams{
			NodeType:              cfg.Cache.NodeType,
			NumNodes:              cfg.Cache.NumNodes,
			Port:                  cfg.Cache.Port,
			SubnetTier:            SubnetTierPrivate,
			SnapshotRetentionDays: cleanup.Cache.SnapshotRetentionDays,
			SnapshotWindow:        cleanup.Cache.SnapshotWindow,
			MaintenanceWindow:     cleanup.Cache.MaintenanceWindow,
		},
		DependsOn: []plan.Identity{network, cacheSG},
	})
	if err != nil {
		return err
	}

	// Relational
	rdsSG := plan.RelationalSecurityGroup(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   rdsSG,
		Kind: plan.KindSecurityGroup,
		Params: SecurityGroupParams{
			Description: "Security group for the relational database",
			AllowAllOut: true,
			Ingress: []SecurityGroupIngress{{
				FromSecurityGroup: appSG,
				Port:              cfg.Relational.Port,
				Description:       "Allow application to connect to the database",
			}},
		},
		DependsOn: []plan.Identity{network, appSG},
	})
	if err != nil {
		return err
	}

	removalPolicy := "destroy"
	if ctx.Environment == "prod" {
		removalPolicy = "snapshot"
	}

	db := plan.RelationalDatabase(ctx.Project, ctx.Environment)
	credentials := plan.CredentialsSecret(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   db,
		Kind: plan.KindRelationalDatabase,
		Params: RelationalParams{
			Engine:                 "postgres",
			EngineVersion:          "14",
			InstanceType:           cfg.Relational.InstanceType,
			AllocatedStorage:       cfg.Relational.AllocatedStorage,
			MaxAllocatedStorage:    cfg.Relational.MaxAllocatedStorage,
			StorageType:            "gp3",
			MultiAZ:                cfg.Relational.MultiAZ,
			DatabaseName:           cfg.Relational.DatabaseName,
			Port:                   cfg.Relational.Port,
			SubnetTier:             SubnetTierPrivate,
			CredentialsSecret:      credentials,
			BackupRetentionDays:    cleanup.Relational.BackupRetentionDays,
			PreferredBackupWindow:  "03:00-04:00",
			MaintenanceWindow:      cleanup.Relational.MaintenanceWindow,
			DeleteAutomatedBackups: cleanup.Relational.DeleteAutomatedBackups,
			DeletionProtection:     cfg.Relational.DeletionProtection,
			RemovalPolicy:          removalPolicy,
		},
		DependsOn: []plan.Identity{network, rdsSG},
	})
	if err != nil {
		return err
	}

	ctx.State.Database = &DatabaseOutput{
		Relational: db,
		RelationalEndpoint: Endpoint{
			Host: plan.Ref(db, "endpointAddress"),
			Port: cfg.Relational.Port,
		},
		CredentialsSecret: credentials,
		Cache:             cache,
		CacheEndpoint: Endpoint{
			Host: plan.Ref(cache, "endpointAddress"),
			Port: cfg.Cache.Port,
		},
	}
	return nil
}

// Alarms implements the AlarmSource interface.
func (s *DatabaseStack) Alarms(ctx *Context) []alarm.Rule {
	if ctx.State.Database == nil {
		return nil
	}
	rules := ctx.Binder.RelationalRules(ctx.State.Database.Relational)
	return append(rules, ctx.Binder.CacheRules(ctx.State.Database.Cache)...)
}
