package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "stackplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o600))

	tree, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "marti", tree.ProjectName)
	assert.Len(t, tree.Environments, 2)
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()
	_, err := Load([]byte("environments: [not: a: map"))
	require.Error(t, err)
}

func TestLoadRejectsWrongValueType(t *testing.T) {
	t.Parallel()
	// maxAzs must be a count; a string must fail at load time, not when the
	// network stack reads it.
	_, err := Load([]byte(`
projectName: marti
environments:
  dev:
    network:
      maxAzs: "two"
      natGateways: 1
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode config")
}

func TestLoadPreservesNestedRecords(t *testing.T) {
	t.Parallel()
	tree, err := Load([]byte(validYAML))
	require.NoError(t, err)

	dev := tree.Environments["dev"]
	require.NotNil(t, dev.Application)
	assert.Equal(t, 30, dev.Application.HealthCheck.IntervalSec)
	assert.Equal(t, 70, dev.Application.Scaling.CPUTargetUtilization)
	require.NotNil(t, dev.Cleanup)
	assert.Equal(t, []string{"dev"}, dev.Cleanup.Registry.TagPrefixes)
}
