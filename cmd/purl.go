package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ortelius/depscout/model"
	"github.com/ortelius/depscout/util"
)

// newPurlCmd builds the purl inspection command
func newPurlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purl [purl]",
		Short: "Inspect a package URL",
		Long: `Parses a purl and prints its fields along with the canonical and base
forms, useful when debugging SBOM contents.`,
		Args: cobra.ExactArgs(1),
		RunE: runPurl,
	}
}

func runPurl(cmd *cobra.Command, args []string) error {
	purl := args[0]

	parsed, err := util.ParsePURL(purl)
	if err != nil {
		return fmt.Errorf("failed to parse purl: %w", err)
	}

	fmt.Printf("%-12s %s\n", "Type:", parsed.Type)
	if parsed.Namespace != "" {
		fmt.Printf("%-12s %s\n", "Namespace:", parsed.Namespace)
	}
	fmt.Printf("%-12s %s\n", "Name:", parsed.Name)
	if parsed.Version != "" {
		fmt.Printf("%-12s %s\n", "Version:", parsed.Version)
	}
	if len(parsed.Qualifiers) > 0 {
		fmt.Printf("%-12s %s\n", "Qualifiers:", parsed.Qualifiers.String())
	}

	if cleaned, err := util.CleanPURL(purl); err == nil {
		fmt.Printf("%-12s %s\n", "Canonical:", cleaned)
	}
	if base, err := util.GetBasePURL(purl); err == nil {
		fmt.Printf("%-12s %s\n", "Base:", base)
	}

	// Show how the scan pipeline itself will treat this purl, which differs
	// from the canonical parse for scoped npm names.
	if id, err := model.ParseIdentity(purl); err == nil {
		fmt.Printf("%-12s %s\n", "Identity:", id)
	} else {
		fmt.Printf("%-12s skipped as invalid by the scan\n", "Identity:")
	}

	return nil
}
