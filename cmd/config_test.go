package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/output"
)

// testEnv sets up isolated config dir, viper, and output for testing.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	// Override configDirFunc for tests
	origFunc := configDirFunc
	configDirFunc = func() (string, error) { return dir, nil }
	t.Cleanup(func() { configDirFunc = origFunc })

	// Reset viper
	viper.Reset()
	viper.SetDefault("rate", 50.0)
	viper.SetDefault("currency", "BRL")
	viper.SetDefault("detailed_glob", "Clockify_Time_Report_Detailed_*.xlsx")
	viper.SetDefault("output_dir", "")

	// Initialize output
	ui = output.New()

	return dir
}

func TestConfigInit_CreatesFile(t *testing.T) {
	dir := testEnv(t)

	err := configInitRun()
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, "config.yaml")
	_, err = os.Stat(cfgPath)
	assert.NoError(t, err, "config file should exist")

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "clockify-report configuration")
	assert.Contains(t, string(data), "rate: 50")
	assert.Contains(t, string(data), `currency: "BRL"`)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	dir := testEnv(t)

	// Create existing file
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("existing"), 0644))

	configForce = false
	err := configInitRun()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConfigInit_ForceOverwrite(t *testing.T) {
	dir := testEnv(t)

	// Create existing file
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("existing"), 0644))

	configForce = true
	t.Cleanup(func() { configForce = false })
	err := configInitRun()
	require.NoError(t, err)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "clockify-report configuration")
}

func TestConfigShow_NoFile(t *testing.T) {
	testEnv(t)
	out := &bytes.Buffer{}
	ui.Out = out

	err := configShowRun()
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Config file: (none)")
	for _, key := range []string{"rate", "currency", "detailed_glob", "output_dir"} {
		assert.Contains(t, got, key)
	}
	assert.Contains(t, got, "(default)")
}

func TestConfigShow_WithFile(t *testing.T) {
	testEnv(t)

	// Create config first
	require.NoError(t, configInitRun())
	out := &bytes.Buffer{}
	ui.Out = out

	err := configShowRun()
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "config.yaml")
	assert.Contains(t, got, "(file)")
}

func TestDetectSource(t *testing.T) {
	fileValues := map[string]bool{"rate": true}

	// From env
	os.Setenv("CLOCKIFY_REPORT_TEST_KEY", "val")
	defer os.Unsetenv("CLOCKIFY_REPORT_TEST_KEY")
	assert.Contains(t, detectSource("test_key", "CLOCKIFY_REPORT_TEST_KEY", fileValues), "env")

	// From file
	assert.Contains(t, detectSource("rate", "CLOCKIFY_REPORT_RATE_NONEXISTENT", fileValues), "file")

	// Default
	assert.Contains(t, detectSource("currency", "CLOCKIFY_REPORT_CURRENCY_NONEXISTENT", fileValues), "default")
}

func TestFlattenKeys(t *testing.T) {
	input := map[string]any{
		"top": "val",
		"nested": map[string]any{
			"a": "1",
			"b": "2",
		},
	}

	result := make(map[string]bool)
	flattenKeys("", input, result)

	assert.True(t, result["top"])
	assert.True(t, result["nested.a"])
	assert.True(t, result["nested.b"])
	assert.False(t, result["nested"])
}

func TestConfigInit_DryRun(t *testing.T) {
	dir := testEnv(t)
	dryRun = true
	ui.DryRun = true
	defer func() { dryRun = false }()

	err := configInitRun()
	require.NoError(t, err)

	// File should NOT have been created
	cfgPath := filepath.Join(dir, "config.yaml")
	_, err = os.Stat(cfgPath)
	assert.True(t, os.IsNotExist(err), "config file should not exist in dry-run mode")
}
