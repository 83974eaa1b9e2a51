package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.Disable()
	os.Exit(m.Run())
}

// useTestFlags points the CLI globals at dir and restores them afterwards.
func useTestFlags(t *testing.T, dir string) {
	t.Helper()

	originalCfgFile := cfgFile
	originalLogLevel := logLevel
	originalLogFormat := logFormat
	originalOutputDir := outputDir
	originalMinConsistency := minConsistency
	t.Cleanup(func() {
		cfgFile = originalCfgFile
		logLevel = originalLogLevel
		logFormat = originalLogFormat
		outputDir = originalOutputDir
		minConsistency = originalMinConsistency
	})

	cfgFile = filepath.Join(dir, "absent.yaml")
	logLevel = "error"
	logFormat = ""
	outputDir = dir
	minConsistency = 0
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func logFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "csv_analysis_*.log"))
	require.NoError(t, err)
	return matches
}

func TestExecute(t *testing.T) {
	// Execute() calls os.Exit(1) on error, so only its presence is checked
	assert.NotNil(t, Execute)
}

func TestVersionVariables(t *testing.T) {
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, Commit, "Commit should not be empty")
}

func TestCLIFlagsVariables(t *testing.T) {
	// cfgFile defaults to "csvaudit.yaml" via init()
	assert.Equal(t, "csvaudit.yaml", cfgFile, "cfgFile should default to csvaudit.yaml")
	assert.Equal(t, "", logLevel)
	assert.Equal(t, "", logFormat)
	assert.Equal(t, "", outputDir)
	assert.Equal(t, float64(0), minConsistency)
	assert.False(t, analyzeStdout)
}
