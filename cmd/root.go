// Package cmd implements the depscout command line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ortelius/depscout/logging"
	"github.com/ortelius/depscout/scanner"
)

var logger = logging.Logger

var (
	cfgFile       string
	directory     string
	sbomIn        string
	sbomOut       string
	reportOut     string
	allowlistFile string
	verbose       bool
)

// NewRootCmd builds the depscout command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "depscout",
		Short: "Detect dependency-confusion candidates from CycloneDX SBOMs",
		Long: `Scans a project's dependencies for dependency-confusion risk.
Generates a CycloneDX SBOM with trivy (or reads an existing one), then checks
each package name against its public registry. Names that are not registered
publicly are candidates for confusion attacks.`,
		RunE: runScan,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default depscout.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&directory, "directory", "d", "", "Directory to scan for dependencies")
	rootCmd.Flags().StringVar(&sbomIn, "sbom-in", "", "Path to an existing CycloneDX SBOM")
	rootCmd.Flags().StringVar(&sbomOut, "sbom-out", "sbom.json", "Where to write a freshly generated SBOM")
	rootCmd.Flags().StringVar(&reportOut, "report-out", "dependency_confusion_report.txt", "Where to write the report")
	rootCmd.Flags().StringVar(&allowlistFile, "allowlist", "", "YAML allowlist of known-internal packages to skip")
	rootCmd.MarkFlagsOneRequired("directory", "sbom-in")
	rootCmd.MarkFlagsMutuallyExclusive("directory", "sbom-in")

	rootCmd.AddCommand(newPurlCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and maps failures to the process exit
// status: the external tool's own code on scan failure, 1 for everything
// else.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var toolErr *scanner.ToolError
		if errors.As(err, &toolErr) {
			os.Exit(toolErr.ExitCode)
		}
		os.Exit(1)
	}
}
