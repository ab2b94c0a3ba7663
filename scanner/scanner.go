// Package scanner resolves the CycloneDX SBOM for a scan run, either by
// invoking an external scanning tool against a directory or by accepting a
// pre-built document path.
package scanner

import (
	"context"
	"errors"
	"fmt"

	"github.com/ortelius/depscout/logging"
)

var logger = logging.Logger

// ErrToolUnavailable indicates the external scanning tool is not installed
// or not runnable from PATH.
var ErrToolUnavailable = errors.New("scanning tool is not installed or not on PATH")

// ToolError carries the exit code of a failed external scan so the CLI can
// terminate the process with the tool's own status.
type ToolError struct {
	Tool     string
	ExitCode int
	Err      error
}

// Error renders the failure for logs and stderr
func (e *ToolError) Error() string {
	return fmt.Sprintf("%s scan failed (exit code %d)", e.Tool, e.ExitCode)
}

// Unwrap exposes the underlying subprocess error
func (e *ToolError) Unwrap() error {
	return e.Err
}

// Tool generates a CycloneDX SBOM from a directory tree. The pipeline only
// depends on this interface so tests can substitute a stub that writes
// canned documents.
type Tool interface {
	// Name identifies the tool in logs and errors.
	Name() string
	// Available reports whether the tool can be invoked, wrapping
	// ErrToolUnavailable when it cannot.
	Available() error
	// Generate scans dir and writes a CycloneDX JSON document to outPath.
	// A non-zero tool exit surfaces as a *ToolError.
	Generate(ctx context.Context, dir string, outPath string) error
}

// Source selects where the SBOM comes from. Exactly one of Directory and
// SBOMPath is set; the CLI enforces the exclusivity before a Source is built.
type Source struct {
	Directory string // scan this tree with the external tool
	SBOMPath  string // use this CycloneDX document as-is
	OutPath   string // destination for a generated SBOM; ignored with SBOMPath
}

// Resolve returns the path of the CycloneDX document to feed the extractor,
// running the external tool when the source is a directory. An existing
// document is passed through untouched; its validity is the extractor's
// problem.
func Resolve(ctx context.Context, tool Tool, src Source) (string, error) {
	if src.SBOMPath != "" {
		logger.Sugar().Infof("Using existing SBOM %s", src.SBOMPath)
		return src.SBOMPath, nil
	}

	if err := tool.Available(); err != nil {
		return "", err
	}

	logger.Sugar().Infof("Generating SBOM -> %s", src.OutPath)
	if err := tool.Generate(ctx, src.Directory, src.OutPath); err != nil {
		return "", err
	}
	return src.OutPath, nil
}
