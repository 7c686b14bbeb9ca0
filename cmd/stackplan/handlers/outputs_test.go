package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martiops/stackplan/internal/plan"
	"github.com/martiops/stackplan/internal/sink"
)

func saveAndRestoreOutputsFactories(t *testing.T) {
	t.Helper()
	origFetchPlan := fetchPlan
	t.Cleanup(func() {
		fetchPlan = origFetchPlan
	})
}

func TestOutputs(t *testing.T) {
	saveAndRestoreOutputsFactories(t)

	fetchPlan = func(_ context.Context, _, project, env string) (*plan.Document, error) {
		return &plan.Document{
			Project:     project,
			Environment: env,
			Resources:   []plan.Descriptor{{ID: "marti-dev-network", Kind: plan.KindNetwork}},
			Outputs: map[string]string{
				"serviceUrl":  "http://${marti-dev-service.loadBalancerDnsName}",
				"registryUri": "${marti-dev-registry.repositoryUri}",
			},
		}, nil
	}

	var err error
	output := captureOutput(func() {
		err = Outputs(context.Background(), OutputsOptions{
			Environment: "dev",
			Project:     "marti",
			PlanDir:     ".stackplan",
		})
	})
	require.NoError(t, err)

	assert.Contains(t, output, "stackplan outputs: marti/dev")
	assert.Contains(t, output, "registryUri")
	assert.Contains(t, output, "serviceUrl")
	assert.Contains(t, output, "resolved at provisioning time")
}

func TestOutputs_NoPlan(t *testing.T) {
	saveAndRestoreOutputsFactories(t)

	fetchPlan = func(_ context.Context, _, project, env string) (*plan.Document, error) {
		return nil, &sink.NotFoundError{Project: project, Environment: env}
	}

	err := Outputs(context.Background(), OutputsOptions{
		Environment: "prod",
		Project:     "marti",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no plan found")
}

func TestOutputs_ProjectFromConfig(t *testing.T) {
	saveAndRestoreOutputsFactories(t)

	var gotProject string
	fetchPlan = func(_ context.Context, _, project, env string) (*plan.Document, error) {
		gotProject = project
		return &plan.Document{Project: project, Environment: env}, nil
	}

	configPath := writeTestConfig(t)
	var err error
	captureOutput(func() {
		err = Outputs(context.Background(), OutputsOptions{
			ConfigPath:  configPath,
			Environment: "dev",
		})
	})
	require.NoError(t, err)
	assert.Equal(t, "marti", gotProject)
}

func TestRenderOutputs_Empty(t *testing.T) {
	doc := &plan.Document{Project: "marti", Environment: "dev"}
	out := renderOutputs(doc)
	assert.Contains(t, out, "No outputs recorded")
}
