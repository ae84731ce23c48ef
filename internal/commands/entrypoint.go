package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	entrypointFetch  bool
	entrypointFormat string
)

var entrypointCmd = &cobra.Command{
	Use:   "entrypoint [base-url]",
	Short: "Discover an API's entry point from its base URL",
	Long: `Discover an API's documentation through the Link header of its base
URL and print the entry point it designates.

Examples:
  hydralink entrypoint https://api.example.org
  hydralink entrypoint https://api.example.org --fetch --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runEntrypoint,
}

func init() {
	entrypointCmd.Flags().BoolVar(&entrypointFetch, "fetch", false, "also fetch the entry-point resource")
	entrypointCmd.Flags().StringVar(&entrypointFormat, "format", "json", "output format (json, yaml)")
}

func runEntrypoint(cmd *cobra.Command, args []string) error {
	c := newClient(cfg.Client.StripHypermedia)

	doc, err := c.DiscoverEntryPoint(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Printf("documentation: %s\n", doc.IRI)
	fmt.Printf("entry point:   %s\n", doc.EntryPoint())

	if !entrypointFetch {
		return nil
	}
	resource, err := doc.GetEntryPoint(cmd.Context())
	if err != nil {
		return err
	}
	return printResource(resource, entrypointFormat)
}
