package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "/System/Database Schema[1]")
	assert.Contains(t, out, "Element,Container,Database,Container Instance,Primary Instance")
	assert.Contains(t, out, "/System/Database Schema[1] -> /System/Database Schema[2]")
	assert.Contains(t, out, `health "Web application is working" http://localhost:8080 every 60s (timeout 0s)`)
	assert.NotContains(t, out, "c4_model_elements_total")
}

func TestDemoWithMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c4model.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics:\n  enabled: true\n  namespace: demo\nlogging:\n  level: debug\n"), 0o600))

	out, logs, err := run(t, "--config", path, "demo", "--metrics")
	require.NoError(t, err)

	assert.Contains(t, out, `demo_model_elements_total{kind="Container Instance"} 3`)
	assert.Contains(t, out, "demo_model_relationships_total 2")
	assert.Contains(t, logs, `"msg":"element added"`)
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "OK: 6 element(s), 2 relationship(s)")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model:\n  id_strategy: random\n"), 0o600))

	_, _, err := run(t, "--config", path, "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IDStrategy")
}

func TestBuildSampleModel(t *testing.T) {
	m, err := buildSampleModel()
	require.NoError(t, err)
	assert.Len(t, m.ContainerInstances(), 3)
	assert.NotNil(t, m.SoftwareSystemWithName("System"))
}
