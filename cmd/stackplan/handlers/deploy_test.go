package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martiops/stackplan/internal/envfile"
	"github.com/martiops/stackplan/internal/plan"
)

// saveAndRestoreDeployFactories saves and restores deploy factory functions.
func saveAndRestoreDeployFactories(t *testing.T) {
	t.Helper()
	origLoadSettings := loadSettings
	origNewPublisher := newPublisher
	t.Cleanup(func() {
		loadSettings = origLoadSettings
		newPublisher = origNewPublisher
	})
}

type fakePublisher struct {
	ensured   bool
	submitted *plan.Document
	ensureErr error
	submitErr error
}

func (f *fakePublisher) EnsureBucket(_ context.Context) error {
	f.ensured = true
	return f.ensureErr
}

func (f *fakePublisher) Submit(_ context.Context, doc *plan.Document) error {
	f.submitted = doc
	return f.submitErr
}

func credentialedSettings() envfile.Settings {
	return envfile.Settings{
		Region:    "us-east-1",
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    "stackplan-plans",
	}
}

func TestDeploy(t *testing.T) {
	saveAndRestoreDeployFactories(t)

	fake := &fakePublisher{}
	loadSettings = func(string) (envfile.Settings, error) {
		return credentialedSettings(), nil
	}
	newPublisher = func(context.Context, envfile.Settings) (publisher, error) {
		return fake, nil
	}

	configPath := writeTestConfig(t)
	var err error
	output := captureOutput(func() {
		err = Deploy(context.Background(), DeployOptions{
			ConfigPath:  configPath,
			Environment: "dev",
			LogLevel:    "error",
		})
	})
	require.NoError(t, err)

	assert.True(t, fake.ensured)
	require.NotNil(t, fake.submitted)
	assert.Equal(t, "marti", fake.submitted.Project)
	assert.Equal(t, "dev", fake.submitted.Environment)
	assert.Contains(t, output, "Plan published for marti/dev")
	assert.Contains(t, output, "marti/dev/plan.yaml")
}

func TestDeploy_MissingCredentials(t *testing.T) {
	saveAndRestoreDeployFactories(t)

	loadSettings = func(string) (envfile.Settings, error) {
		return envfile.Settings{Bucket: "stackplan-plans"}, nil
	}

	err := Deploy(context.Background(), DeployOptions{Environment: "dev"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STACKPLAN_S3_ACCESS_KEY")
}

func TestDeploy_EnsureBucketFails(t *testing.T) {
	saveAndRestoreDeployFactories(t)

	loadSettings = func(string) (envfile.Settings, error) {
		return credentialedSettings(), nil
	}
	newPublisher = func(context.Context, envfile.Settings) (publisher, error) {
		return &fakePublisher{ensureErr: errors.New("bucket denied")}, nil
	}

	configPath := writeTestConfig(t)
	var err error
	captureOutput(func() {
		err = Deploy(context.Background(), DeployOptions{
			ConfigPath:  configPath,
			Environment: "dev",
			LogLevel:    "error",
		})
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket denied")
}

func TestDeploy_BuildFailureSkipsPublish(t *testing.T) {
	saveAndRestoreDeployFactories(t)

	fake := &fakePublisher{}
	loadSettings = func(string) (envfile.Settings, error) {
		return credentialedSettings(), nil
	}
	newPublisher = func(context.Context, envfile.Settings) (publisher, error) {
		return fake, nil
	}

	configPath := writeTestConfig(t)
	err := Deploy(context.Background(), DeployOptions{
		ConfigPath:  configPath,
		Environment: "staging",
		LogLevel:    "error",
	})

	require.Error(t, err)
	assert.False(t, fake.ensured)
	assert.Nil(t, fake.submitted)
}
