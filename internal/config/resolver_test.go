package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
projectName: marti
environments:
  dev:
    network:
      maxAzs: 2
      natGateways: 1
    registry:
      repositoryName: marti-app
      maxImageCount: 10
      enableScan: true
    application:
      containerInsights: false
      taskCpu: 256
      taskMemory: 512
      containerPort: 8080
      desiredCount: 1
      minTasks: 1
      maxTasks: 2
      healthCheck:
        path: /health
        interval: 30
        timeout: 5
        healthyCount: 2
        unhealthyCount: 3
      scaling:
        cpuTargetUtilization: 70
        requestsPerTarget: 100
        scaleInCooldown: 60
        scaleOutCooldown: 60
      database:
        name: martidb
    database:
      cache:
        nodeType: cache.t3.micro
        numNodes: 1
        port: 6379
      relational:
        instanceType: t3.micro
        allocatedStorage: 20
        maxAllocatedStorage: 100
        multiAz: false
        backupRetentionDays: 1
        databaseName: martidb
        port: 5432
        deletionProtection: false
    alarms:
      costs:
        dailyThreshold: 50
      relational:
        cpuThreshold: 80
        storageThreshold: 2147483648
        connectionThreshold: 50
      cache:
        cpuThreshold: 75
        memoryThreshold: 80
      service:
        cpuThreshold: 80
        memoryThreshold: 80
        error5xxThreshold: 10
        minTasks: 1
      network:
        natPortThreshold: 50000
    cleanup:
      relational:
        backupRetentionDays: 1
        maintenanceWindow: "sun:04:00-sun:05:00"
        deleteAutomatedBackups: true
      cache:
        snapshotRetentionDays: 1
        snapshotWindow: "03:00-04:00"
        maintenanceWindow: "sun:04:00-sun:05:00"
      registry:
        maxTaggedImages: 10
        untaggedRetentionDays: 7
        tagPrefixes: [dev]
    vectorStore:
      apiKey: test-key
      indexName: marti-dev
  prod:
    network:
      maxAzs: 3
      natGateways: 3
    registry:
      repositoryName: marti-app
      maxImageCount: 50
      enableScan: true
    application:
      containerInsights: true
      taskCpu: 1024
      taskMemory: 2048
      containerPort: 8080
      desiredCount: 3
      minTasks: 2
      maxTasks: 10
      healthCheck:
        path: /health
        interval: 15
        timeout: 5
        healthyCount: 2
        unhealthyCount: 2
      scaling:
        cpuTargetUtilization: 60
        requestsPerTarget: 200
        scaleInCooldown: 120
        scaleOutCooldown: 30
      database:
        name: martidb
    database:
      cache:
        nodeType: cache.r6g.large
        numNodes: 2
        port: 6379
      relational:
        instanceType: r6g.large
        allocatedStorage: 100
        maxAllocatedStorage: 500
        multiAz: true
        backupRetentionDays: 14
        databaseName: martidb
        port: 5432
        deletionProtection: true
    alarms:
      costs:
        dailyThreshold: 500
      relational:
        cpuThreshold: 70
        storageThreshold: 10737418240
        connectionThreshold: 200
      cache:
        cpuThreshold: 70
        memoryThreshold: 75
        evictionThreshold: 500
      service:
        cpuThreshold: 70
        memoryThreshold: 75
        error5xxThreshold: 5
        minTasks: 2
        unhealthyTaskThreshold: 2
      network:
        natPortThreshold: 55000
        natErrorThreshold: 10
    cleanup:
      relational:
        backupRetentionDays: 14
        maintenanceWindow: "sun:04:00-sun:05:00"
        deleteAutomatedBackups: false
      cache:
        snapshotRetentionDays: 7
        snapshotWindow: "03:00-04:00"
        maintenanceWindow: "sun:04:00-sun:05:00"
      registry:
        maxTaggedImages: 50
        untaggedRetentionDays: 14
        tagPrefixes: [release]
    vectorStore:
      apiKey: prod-key
      indexName: marti-prod
`

func loadValidTree(t *testing.T) *Resolver {
	t.Helper()
	tree, err := Load([]byte(validYAML))
	require.NoError(t, err)
	return NewResolver(tree)
}

func TestProjectName(t *testing.T) {
	t.Parallel()
	r := loadValidTree(t)

	name, err := r.ProjectName()
	require.NoError(t, err)
	assert.Equal(t, "marti", name)
}

func TestProjectNameMissing(t *testing.T) {
	t.Parallel()
	tree, err := Load([]byte("environments: {}\n"))
	require.NoError(t, err)

	_, err = NewResolver(tree).ProjectName()
	assert.ErrorIs(t, err, ErrMissingProjectName)
}

func TestEnvironmentsSorted(t *testing.T) {
	t.Parallel()
	r := loadValidTree(t)
	assert.Equal(t, []string{"dev", "prod"}, r.Environments())
}

func TestResolveAllCategoriesForAllEnvironments(t *testing.T) {
	t.Parallel()
	r := loadValidTree(t)

	for _, env := range r.Environments() {
		env := env
		t.Run(env, func(t *testing.T) {
			t.Parallel()

			network, err := r.Network(env)
			require.NoError(t, err)
			assert.Positive(t, network.MaxAZs)

			registry, err := r.Registry(env)
			require.NoError(t, err)
			assert.NotEmpty(t, registry.RepositoryName)

			app, err := r.Application(env)
			require.NoError(t, err)
			assert.Positive(t, app.ContainerPort)
			assert.NotEmpty(t, app.HealthCheck.Path)

			db, err := r.Database(env)
			require.NoError(t, err)
			assert.Positive(t, db.Cache.Port)
			assert.Positive(t, db.Relational.Port)

			alarms, err := r.Alarms(env)
			require.NoError(t, err)
			assert.Positive(t, alarms.Costs.DailyThreshold)

			cleanup, err := r.Cleanup(env)
			require.NoError(t, err)
			assert.Positive(t, cleanup.Registry.MaxTaggedImages)

			vs, err := r.VectorStore(env)
			require.NoError(t, err)
			assert.NotEmpty(t, vs.APIKey)
		})
	}
}

func TestResolveUnknownEnvironment(t *testing.T) {
	t.Parallel()
	r := loadValidTree(t)

	_, err := r.Network("staging")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "staging", nf.Environment)
	assert.Empty(t, nf.Category)
}

func TestResolveMissingCategory(t *testing.T) {
	t.Parallel()
	tree, err := Load([]byte(`
projectName: marti
environments:
  dev:
    network:
      maxAzs: 2
      natGateways: 1
`))
	require.NoError(t, err)
	r := NewResolver(tree)

	_, err = r.Database("dev")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "dev", nf.Environment)
	assert.Equal(t, "database", nf.Category)
}

func TestResolveMissingRequiredField(t *testing.T) {
	t.Parallel()
	tree, err := Load([]byte(`
projectName: marti
environments:
  dev:
    registry:
      maxImageCount: 10
`))
	require.NoError(t, err)

	_, err = NewResolver(tree).Registry("dev")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "registry", nf.Category)
	assert.Equal(t, "repositoryName", nf.Field)
}

func TestOptionalAlarmThresholds(t *testing.T) {
	t.Parallel()
	r := loadValidTree(t)

	dev, err := r.Alarms("dev")
	require.NoError(t, err)
	assert.Nil(t, dev.Cache.EvictionThreshold)
	assert.Nil(t, dev.Service.UnhealthyTaskThreshold)
	assert.Nil(t, dev.Network.NATErrorThreshold)

	prod, err := r.Alarms("prod")
	require.NoError(t, err)
	require.NotNil(t, prod.Cache.EvictionThreshold)
	assert.Equal(t, float64(500), *prod.Cache.EvictionThreshold)
}

func TestValidateRejectsInconsistentValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		call func(r *Resolver) error
	}{
		{
			name: "more NAT gateways than AZs",
			yaml: `
projectName: marti
environments:
  dev:
    network: {maxAzs: 1, natGateways: 3}
`,
			call: func(r *Resolver) error { _, err := r.Network("dev"); return err },
		},
		{
			name: "maxTasks below minTasks",
			yaml: `
projectName: marti
environments:
  dev:
    application:
      taskCpu: 256
      taskMemory: 512
      containerPort: 8080
      desiredCount: 1
      minTasks: 5
      maxTasks: 2
      healthCheck: {path: /health, interval: 30, timeout: 5, healthyCount: 2, unhealthyCount: 3}
      scaling: {cpuTargetUtilization: 70, requestsPerTarget: 100, scaleInCooldown: 60, scaleOutCooldown: 60}
      database: {name: martidb}
`,
			call: func(r *Resolver) error { _, err := r.Application("dev"); return err },
		},
		{
			name: "storage ceiling below allocation",
			yaml: `
projectName: marti
environments:
  dev:
    database:
      cache: {nodeType: cache.t3.micro, numNodes: 1, port: 6379}
      relational:
        instanceType: t3.micro
        allocatedStorage: 100
        maxAllocatedStorage: 20
        backupRetentionDays: 1
        databaseName: martidb
        port: 5432
`,
			call: func(r *Resolver) error { _, err := r.Database("dev"); return err },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tree, err := Load([]byte(tt.yaml))
			require.NoError(t, err)

			err = tt.call(NewResolver(tree))
			require.Error(t, err)
			var nf *NotFoundError
			assert.False(t, errors.As(err, &nf), "range errors are not not-found errors")
		})
	}
}
