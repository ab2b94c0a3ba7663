package model

// Summary tallies the outcome of one scan run for the end-of-run console line
type Summary struct {
	Total       int // purls taken from the SBOM, including rejected ones
	NotFound    int // confusion candidates, absent from the public registry
	Exists      int // publicly registered names, potential collisions
	Unknown     int // failed lookups and unsupported ecosystems
	Invalid     int // purls the identity parser rejected
	Allowlisted int // packages excluded by the allowlist
}

// Count records one finding in the tally
func (s *Summary) Count(f Finding) {
	switch f.Verdict {
	case VerdictNotFoundPublicly:
		s.NotFound++
	case VerdictExistsPublicly:
		s.Exists++
	default:
		s.Unknown++
	}
}

// Checked returns how many packages reached the registry checker
func (s *Summary) Checked() int {
	return s.NotFound + s.Exists + s.Unknown
}
