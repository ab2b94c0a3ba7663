// Package sbom reads CycloneDX documents and extracts their package URLs.
package sbom

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ortelius/depscout/logging"
	"github.com/ortelius/depscout/model"
)

var logger = logging.Logger

// ExtractPurls reads the CycloneDX JSON document at path and returns its
// component purls, deduplicated and lexically sorted so report output is
// reproducible regardless of component ordering. Components without a purl
// are skipped. A missing file or malformed JSON is fatal for the run.
func ExtractPurls(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read SBOM file %s: %w", path, err)
	}

	var bom model.BOM
	if err := json.Unmarshal(content, &bom); err != nil {
		return nil, fmt.Errorf("failed to parse SBOM file %s: %w", path, err)
	}

	if bom.BOMFormat != "" && bom.BOMFormat != "CycloneDX" {
		logger.Sugar().Warnf("SBOM %s has unexpected bomFormat %q", path, bom.BOMFormat)
	}

	seen := make(map[string]bool)
	purls := make([]string, 0, len(bom.Components))
	for _, component := range bom.Components {
		if component.Purl == "" || seen[component.Purl] {
			continue
		}
		seen[component.Purl] = true
		purls = append(purls, component.Purl)
	}

	sort.Strings(purls)
	return purls, nil
}
