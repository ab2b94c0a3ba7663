// Package model defines the data structures shared across the depscout
// pipeline: package identities, verdicts, findings, and the consumed subset
// of CycloneDX documents.
package model

import (
	"fmt"
	"strings"
)

// Ecosystems with a public registry lookup. Purls from any other ecosystem
// get an unknown verdict without a network call.
const (
	EcosystemPyPI = "pypi"
	EcosystemNPM  = "npm"
)

// PackageIdentity is the (ecosystem, name) pair derived from a purl. Name is
// the substring of the purl preceding any version delimiter.
type PackageIdentity struct {
	Ecosystem string `json:"ecosystem"`
	Name      string `json:"name"`
}

// ParseIdentity decomposes a purl of the form
// scheme:ecosystem/name[@version][?qualifiers] into its package identity.
// The shape rule: split once on ':' to discard the scheme, split once on '/'
// to separate the ecosystem, truncate at the first '@' to discard version and
// qualifiers. Purls that do not fit the shape (no ':', no '/', empty
// ecosystem or name) are rejected; scoped npm purls such as
// pkg:npm/@babel/core@7.0.0 land in the empty-name case because their name
// part starts with '@'. Callers skip rejected purls and keep going.
func ParseIdentity(purl string) (PackageIdentity, error) {
	_, rest, found := strings.Cut(purl, ":")
	if !found {
		return PackageIdentity{}, fmt.Errorf("purl %q has no scheme separator", purl)
	}

	ecosystem, remainder, found := strings.Cut(rest, "/")
	if !found {
		return PackageIdentity{}, fmt.Errorf("purl %q has no ecosystem separator", purl)
	}

	name, _, _ := strings.Cut(remainder, "@")
	if ecosystem == "" || name == "" {
		return PackageIdentity{}, fmt.Errorf("purl %q has an empty ecosystem or name", purl)
	}

	return PackageIdentity{Ecosystem: ecosystem, Name: name}, nil
}

// String renders the identity as ecosystem/name for logs and messages
func (p PackageIdentity) String() string {
	return p.Ecosystem + "/" + p.Name
}
