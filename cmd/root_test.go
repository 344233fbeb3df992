package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler-comparison/config"
	"cpu-scheduler-comparison/internal/responses"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCompareCommand_JSON(t *testing.T) {
	out, err := run(t, "compare", "--log", "error", "--burst", "5,3,8", "--quantum", "2", "--json")
	require.NoError(t, err)

	var got responses.ComparisonResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Results, 4)
	require.NotNil(t, got.Best)
	assert.Equal(t, "SJF", got.Best.Algorithm)
}

func TestSimulateCommand_FromWorkloadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.yaml")
	require.NoError(t, os.WriteFile(path, []byte("processes:\n  - burst: 8\n  - burst: 4\n    arrival: 1\n"), 0o644))

	out, err := run(t, "simulate", "srtf", "--log", "error", "--file", path, "--srtf-strategy", "event", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Preemptive SJF")
	assert.Contains(t, out, "Gantt schedule")
}

func TestSimulateCommand_UnknownAlgorithm(t *testing.T) {
	_, err := run(t, "simulate", "mlfq", "--log", "error", "--burst", "1")
	assert.ErrorContains(t, err, "unknown algorithm")
}

func TestCompareCommand_RejectsUnknownSRTFStrategy(t *testing.T) {
	t.Cleanup(func() { srtfStrategy = "" })

	out, err := run(t, "compare", "--log", "error", "--burst", "5,3", "--srtf-strategy", "heap", "--json=false")
	require.ErrorContains(t, err, "unknown srtf strategy")
	assert.NotContains(t, out, "Preemptive SJF failed")
}

func TestLoadConfig_CopiesSharedConfig(t *testing.T) {
	t.Cleanup(func() { logLevel = "" })
	logLevel = "debug"

	cfg, err := loadConfig()
	require.NoError(t, err)
	cfg.Port = 1

	shared, err := config.GetSchedulerConfig()
	require.NoError(t, err)
	assert.NotEqual(t, 1, shared.Port)
	assert.NotEqual(t, "debug", shared.LogLevel)
}
