package model

// Verdict classifies a package name's presence on its public registry
type Verdict string

const (
	// VerdictNotFoundPublicly means the name is absent from the public
	// registry, so the name is claimable and a confusion candidate exists.
	VerdictNotFoundPublicly Verdict = "not_found_publicly"
	// VerdictExistsPublicly means the name is already registered publicly
	// and an internal package of the same name could be shadowed.
	VerdictExistsPublicly Verdict = "exists_publicly"
	// VerdictUnknown means the lookup failed or the ecosystem has no
	// supported registry endpoint.
	VerdictUnknown Verdict = "unknown"
)

// Finding pairs a package identity with its registry verdict
type Finding struct {
	PackageIdentity
	Verdict Verdict `json:"verdict"`
}

// NewFinding creates a Finding for the identity and verdict
func NewFinding(id PackageIdentity, verdict Verdict) Finding {
	return Finding{
		PackageIdentity: id,
		Verdict:         verdict,
	}
}
