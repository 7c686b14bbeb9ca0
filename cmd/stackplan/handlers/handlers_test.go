package handlers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/martiops/stackplan/internal/config"
)

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// writeTestConfig writes a complete configuration file and returns its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	r := &config.WizardResult{
		ProjectName:    "marti",
		WithProd:       true,
		ContainerPort:  8000,
		DailyCostLimit: 50,
	}
	path := filepath.Join(t.TempDir(), "stackplan.yaml")
	require.NoError(t, config.WriteTreeYAML(r.ToTree(), path))
	return path
}
