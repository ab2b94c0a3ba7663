// Package model - Allowlist defines the operator-supplied exclusion list
package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/ortelius/depscout/util"
)

// Allowlist names known-internal packages that should not be reported.
// Entries are either bare names, matching the package in any ecosystem, or
// ecosystem/name pairs matching one ecosystem only.
type Allowlist struct {
	Packages []string `yaml:"packages"`
}

// NewAllowlist creates an empty Allowlist
func NewAllowlist() *Allowlist {
	return &Allowlist{}
}

// LoadAllowlist reads an allowlist YAML document from path
func LoadAllowlist(path string) (*Allowlist, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read allowlist %s: %w", path, err)
	}

	list := NewAllowlist()
	if err := yaml.Unmarshal(content, list); err != nil {
		return nil, fmt.Errorf("failed to parse allowlist %s: %w", path, err)
	}
	return list, nil
}

// Contains reports whether the identity is allowlisted. A nil receiver is an
// empty allowlist.
func (a *Allowlist) Contains(id PackageIdentity) bool {
	if a == nil {
		return false
	}
	return util.Contains(a.Packages, id.Name) || util.Contains(a.Packages, id.String())
}
