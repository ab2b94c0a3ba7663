// package main provides the entry point for depscout, a dependency-confusion
// scanner that checks CycloneDX SBOM components against public registries.
package main

import (
	"github.com/ortelius/depscout/cmd"
)

func main() {
	cmd.Execute()
}
