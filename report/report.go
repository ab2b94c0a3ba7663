// Package report renders registry findings into the dependency-confusion
// report file.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/ortelius/depscout/model"
)

// Line formats the report line for one finding. The ecosystem column is
// left-justified to a fixed width so package names line up across
// ecosystems.
func Line(f model.Finding) string {
	switch f.Verdict {
	case model.VerdictNotFoundPublicly:
		return fmt.Sprintf("[OK]   %-5s %s not found publicly", f.Ecosystem, f.Name)
	case model.VerdictExistsPublicly:
		return fmt.Sprintf("[WARN] %-5s %s EXISTS publicly - potential collision", f.Ecosystem, f.Name)
	default:
		return fmt.Sprintf("[INFO] %-5s %s unknown status or unsupported ecosystem", f.Ecosystem, f.Name)
	}
}

// Render joins the finding lines into the report body, newline-separated
// with no trailing newline. Rendering is a pure function of the findings, so
// identical input produces byte-identical output.
func Render(findings []model.Finding) string {
	lines := make([]string, 0, len(findings))
	for _, f := range findings {
		lines = append(lines, Line(f))
	}
	return strings.Join(lines, "\n")
}

// Write renders the findings and writes the report to path
func Write(path string, findings []model.Finding) error {
	if err := os.WriteFile(path, []byte(Render(findings)), 0644); err != nil {
		return fmt.Errorf("unable to write report file %s: %w", path, err)
	}
	return nil
}
