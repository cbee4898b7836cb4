package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func runInit(t *testing.T, args ...string) error {
	t.Helper()

	t.Cleanup(func() { initForceFlag = false })

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"init", "--log-file", filepath.Join(t.TempDir(), "test.log")}, args...))

	return cmd.Execute()
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := chdirTemp(t)

	require.NoError(t, runInit(t))

	targetPath := filepath.Join(tempDir, configFileName)
	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)

	var config map[string]any
	require.NoError(t, yaml.Unmarshal(contents, &config))

	assert.Equal(t, currentConfigVersion, config[configVersionKey])
	assert.Equal(t, defaultXMLDirectory, config[xmlDirectoryKey])
	assert.Equal(t, defaultFileSizeThreshold, config[fileSizeThresholdKey])
	assert.Contains(t, config, "log")
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	require.Error(t, runInit(t))

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(contents))
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	require.NoError(t, runInit(t, "--force"))

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), xmlDirectoryKey)
}
