package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"evalgo.org/hydralink/models"
)

var (
	fetchStrip  bool
	fetchFormat string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Fetch a resource and separate its hypermedia controls",
	Long: `Fetch a hypermedia resource and print the domain payload together
with the separated hypermedia controls.

Examples:
  hydralink fetch https://api.example.org/events
  hydralink fetch https://api.example.org/events --strip
  hydralink fetch https://api.example.org/events --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchStrip, "strip", false, "remove hypermedia content from the payload")
	fetchCmd.Flags().StringVar(&fetchFormat, "format", "json", "output format (json, yaml)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	c := newClient(fetchStrip || cfg.Client.StripHypermedia)

	resource, err := c.Fetch(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printResource(resource, fetchFormat)
}

func printResource(resource *models.WebResource, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(resource, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	case "yaml":
		// Round-trip through JSON so the custom marshalers apply.
		data, err := json.Marshal(resource)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func httpClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
