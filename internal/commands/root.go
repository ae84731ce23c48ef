// Package commands wires the hydralink CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"evalgo.org/hydralink/internal/config"
	"evalgo.org/hydralink/internal/version"
	"evalgo.org/hydralink/pkg/hydralink/client"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "hydralink",
	Short: "A hypermedia client for Hydra-annotated Web APIs",
	Long: `hydralink fetches JSON-LD resources from hypermedia-driven Web APIs,
separates the Hydra controls (collections, operations, entry points)
from the application data, and can discover an API's entry point from
its Link header metadata.`,
	Version: version.Version,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (json, text)")

	// These should never fail as flags are defined above
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))   //nolint:errcheck
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format")) //nolint:errcheck

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(entrypointCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "%s" .Version}}
`)
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger from the loaded configuration.
func newLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "hydralink",
		Level:      hclog.LevelFromString(cfg.Logging.Level),
		JSONFormat: cfg.Logging.Format == "json",
	})
}

// newClient builds a resource client from the loaded configuration.
func newClient(strip bool) *client.Client {
	opts := []client.Option{
		client.WithLogger(newLogger()),
		client.WithStripHypermedia(strip),
	}
	if cfg.Client.Timeout > 0 {
		opts = append(opts, client.WithHTTPClient(httpClient(cfg.Client.Timeout)))
	}
	if cfg.Client.UserAgent != "" {
		opts = append(opts, client.WithUserAgent(cfg.Client.UserAgent))
	}
	if cfg.Client.RateLimit > 0 {
		opts = append(opts, client.WithRateLimit(cfg.Client.RateLimit))
	}
	return client.New(opts...)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}
