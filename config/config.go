// Package config loads depscout runtime settings from defaults, an optional
// YAML config file, and DEPSCOUT_-prefixed environment variables. Explicitly
// set CLI flags are merged on top by the cmd layer.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ortelius/depscout/util"
)

// Defaults for the scan pipeline
const (
	DefaultSBOMOut     = "sbom.json"
	DefaultReportOut   = "dependency_confusion_report.txt"
	DefaultTimeout     = 10 * time.Second
	DefaultPyPIBaseURL = "https://pypi.org"
	DefaultNPMBaseURL  = "https://registry.npmjs.org"
	DefaultConfigFile  = "depscout.yaml"
)

// Config carries the settings one scan run needs. Exactly one of Directory
// and SBOMIn is set; the CLI enforces the exclusivity before the pipeline
// starts.
type Config struct {
	Directory   string        // directory to scan with the external tool
	SBOMIn      string        // pre-built CycloneDX document to use as-is
	SBOMOut     string        // where a generated SBOM is written
	ReportOut   string        // where the report is written
	Allowlist   string        // optional allowlist YAML path
	Timeout     time.Duration // per-lookup HTTP timeout
	PyPIBaseURL string        // pypi registry base, overridable for tests
	NPMBaseURL  string        // npm registry base, overridable for tests
}

// Load builds a Config from defaults, the config file at path (falling back
// to depscout.yaml in the working directory when path is empty and that file
// exists), and DEPSCOUT_ environment variables.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("sbom_out", DefaultSBOMOut)
	v.SetDefault("report_out", DefaultReportOut)
	v.SetDefault("allowlist", "")
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("registry.pypi", DefaultPyPIBaseURL)
	v.SetDefault("registry.npm", DefaultNPMBaseURL)

	v.SetEnvPrefix("depscout")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if util.IsNotEmpty(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if util.FileExists(DefaultConfigFile) {
		v.SetConfigFile(DefaultConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", DefaultConfigFile, err)
		}
	}

	return Config{
		SBOMOut:     v.GetString("sbom_out"),
		ReportOut:   v.GetString("report_out"),
		Allowlist:   v.GetString("allowlist"),
		Timeout:     v.GetDuration("timeout"),
		PyPIBaseURL: v.GetString("registry.pypi"),
		NPMBaseURL:  v.GetString("registry.npm"),
	}, nil
}
