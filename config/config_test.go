package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "depscout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultSBOMOut, cfg.SBOMOut)
	assert.Equal(t, DefaultReportOut, cfg.ReportOut)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultPyPIBaseURL, cfg.PyPIBaseURL)
	assert.Equal(t, DefaultNPMBaseURL, cfg.NPMBaseURL)
	assert.Empty(t, cfg.Allowlist)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `report_out: custom_report.txt
timeout: 30s
registry:
  pypi: http://pypi.internal
  npm: http://npm.internal
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom_report.txt", cfg.ReportOut)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "http://pypi.internal", cfg.PyPIBaseURL)
	assert.Equal(t, "http://npm.internal", cfg.NPMBaseURL)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultSBOMOut, cfg.SBOMOut)
}

func TestLoadDefaultConfigFileFromWorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "report_out: from_cwd.txt\n")
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from_cwd.txt", cfg.ReportOut)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DEPSCOUT_REPORT_OUT", "from_env.txt")
	t.Setenv("DEPSCOUT_TIMEOUT", "3s")
	t.Setenv("DEPSCOUT_REGISTRY_PYPI", "http://pypi.env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "from_env.txt", cfg.ReportOut)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "http://pypi.env", cfg.PyPIBaseURL)
}

func TestLoadEnvBeatsConfigFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "report_out: from_file.txt\n")
	t.Setenv("DEPSCOUT_REPORT_OUT", "from_env.txt")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env.txt", cfg.ReportOut)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
