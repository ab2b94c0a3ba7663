package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/ortelius/depscout/util"
)

// Trivy invokes the trivy binary for filesystem scans
type Trivy struct {
	Bin string // binary name or path
}

// NewTrivy returns a Trivy tool using the binary named by DEPSCOUT_TRIVY,
// falling back to trivy on PATH
func NewTrivy() *Trivy {
	return &Trivy{
		Bin: util.GetEnvDefault("DEPSCOUT_TRIVY", "trivy"),
	}
}

// Name identifies the tool in logs and errors
func (t *Trivy) Name() string {
	return "trivy"
}

// Available checks that the binary resolves on PATH and answers --version
// with a zero exit
func (t *Trivy) Available() error {
	path, err := exec.LookPath(t.Bin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrToolUnavailable, err)
	}

	cmd := exec.Command(path, "--version")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrToolUnavailable, err)
	}
	return nil
}

// Generate runs a filesystem scan writing CycloneDX JSON to outPath. Trivy's
// own output streams through so scan progress stays visible.
func (t *Trivy) Generate(ctx context.Context, dir string, outPath string) error {
	cmd := exec.CommandContext(ctx, t.Bin, "fs", "--format", "cyclonedx", "-o", outPath, dir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		code := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			code = exitErr.ExitCode()
		}
		return &ToolError{Tool: t.Name(), ExitCode: code, Err: err}
	}
	return nil
}
