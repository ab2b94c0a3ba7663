package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryCount(t *testing.T) {
	var s Summary

	s.Count(NewFinding(PackageIdentity{Ecosystem: "npm", Name: "a"}, VerdictNotFoundPublicly))
	s.Count(NewFinding(PackageIdentity{Ecosystem: "npm", Name: "b"}, VerdictExistsPublicly))
	s.Count(NewFinding(PackageIdentity{Ecosystem: "pypi", Name: "c"}, VerdictExistsPublicly))
	s.Count(NewFinding(PackageIdentity{Ecosystem: "cargo", Name: "d"}, VerdictUnknown))

	assert.Equal(t, 1, s.NotFound)
	assert.Equal(t, 2, s.Exists)
	assert.Equal(t, 1, s.Unknown)
	assert.Equal(t, 4, s.Checked())
}
