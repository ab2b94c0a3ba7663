package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAllowlist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "allowlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAllowlist(t *testing.T) {
	path := writeAllowlist(t, "packages:\n  - internal-auth\n  - npm/our-widgets\n")

	list, err := LoadAllowlist(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"internal-auth", "npm/our-widgets"}, list.Packages)
}

func TestLoadAllowlistMissingFile(t *testing.T) {
	_, err := LoadAllowlist(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadAllowlistMalformed(t *testing.T) {
	path := writeAllowlist(t, "packages: [unterminated\n")

	_, err := LoadAllowlist(path)
	assert.Error(t, err)
}

func TestAllowlistContains(t *testing.T) {
	list := &Allowlist{Packages: []string{"internal-auth", "npm/our-widgets"}}

	tests := []struct {
		name string
		id   PackageIdentity
		want bool
	}{
		{"bare name matches any ecosystem", PackageIdentity{Ecosystem: "pypi", Name: "internal-auth"}, true},
		{"bare name matches npm too", PackageIdentity{Ecosystem: "npm", Name: "internal-auth"}, true},
		{"ecosystem-qualified match", PackageIdentity{Ecosystem: "npm", Name: "our-widgets"}, true},
		{"qualified entry does not cross ecosystems", PackageIdentity{Ecosystem: "pypi", Name: "our-widgets"}, false},
		{"unlisted package", PackageIdentity{Ecosystem: "npm", Name: "left-pad"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, list.Contains(tt.id))
		})
	}
}

func TestAllowlistContainsNil(t *testing.T) {
	var list *Allowlist
	assert.False(t, list.Contains(PackageIdentity{Ecosystem: "npm", Name: "left-pad"}))
}
