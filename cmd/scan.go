package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ortelius/depscout/config"
	"github.com/ortelius/depscout/logging"
	"github.com/ortelius/depscout/model"
	"github.com/ortelius/depscout/registry"
	"github.com/ortelius/depscout/report"
	"github.com/ortelius/depscout/sbom"
	"github.com/ortelius/depscout/scanner"
	"github.com/ortelius/depscout/util"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

func runScan(cmd *cobra.Command, args []string) error {
	if verbose {
		logging.SetDebug()
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Directory and SBOM source are per-invocation; the rest of the flags
	// override file and environment values only when explicitly set.
	cfg.Directory = directory
	cfg.SBOMIn = sbomIn
	if cmd.Flags().Changed("sbom-out") {
		cfg.SBOMOut = sbomOut
	}
	if cmd.Flags().Changed("report-out") {
		cfg.ReportOut = reportOut
	}
	if cmd.Flags().Changed("allowlist") {
		cfg.Allowlist = allowlistFile
	}

	return executeScan(cmd.Context(), cfg, scanner.NewTrivy())
}

// executeScan drives the pipeline end to end: resolve the SBOM, extract its
// purls, parse identities, check the public registries one purl at a time in
// sorted order, then write the report.
func executeScan(ctx context.Context, cfg config.Config, tool scanner.Tool) error {
	var allow *model.Allowlist
	if util.IsNotEmpty(cfg.Allowlist) {
		var err error
		if allow, err = model.LoadAllowlist(cfg.Allowlist); err != nil {
			return err
		}
	}

	sbomPath, err := scanner.Resolve(ctx, tool, scanner.Source{
		Directory: cfg.Directory,
		SBOMPath:  cfg.SBOMIn,
		OutPath:   cfg.SBOMOut,
	})
	if err != nil {
		return err
	}

	purls, err := sbom.ExtractPurls(sbomPath)
	if err != nil {
		return err
	}
	if len(purls) == 0 {
		logger.Sugar().Warnf("No PURLs found in SBOM")
	}

	checker := registry.NewChecker(registry.Options{
		Timeout:     cfg.Timeout,
		PyPIBaseURL: cfg.PyPIBaseURL,
		NPMBaseURL:  cfg.NPMBaseURL,
	})

	var summary model.Summary
	findings := make([]model.Finding, 0, len(purls))
	for _, purl := range purls {
		summary.Total++

		id, err := model.ParseIdentity(purl)
		if err != nil {
			logger.Sugar().Warnf("Skipping invalid PURL: %s", purl)
			summary.Invalid++
			continue
		}

		if allow.Contains(id) {
			logger.Sugar().Infof("Skipping allowlisted package %s", id)
			summary.Allowlisted++
			continue
		}

		logger.Sugar().Debugf("Checking %s", id)
		finding := model.NewFinding(id, checker.Check(ctx, id))
		summary.Count(finding)
		findings = append(findings, finding)
	}

	if err := report.Write(cfg.ReportOut, findings); err != nil {
		return err
	}

	printSummary(summary)
	fmt.Printf("Dependency confusion report written to %s\n", cfg.ReportOut)
	return nil
}

// printSummary prints the per-verdict tallies after a successful scan
func printSummary(s model.Summary) {
	fmt.Printf("Checked %d package(s): %s, %s, %s\n",
		s.Checked(),
		red.Sprintf("%d potential collision(s)", s.Exists),
		green.Sprintf("%d not found publicly", s.NotFound),
		yellow.Sprintf("%d unknown", s.Unknown))

	if s.Invalid > 0 {
		fmt.Printf("Skipped %d invalid purl(s)\n", s.Invalid)
	}
	if s.Allowlisted > 0 {
		fmt.Printf("Skipped %d allowlisted package(s)\n", s.Allowlisted)
	}
}
