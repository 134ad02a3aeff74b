// Package cli provides the cobra command surface of the Ilmify CLI.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/ilmify/ilmify-cli/internal/adapters/driven/config/file"
	"github.com/ilmify/ilmify-cli/internal/core/ports/driving"
	"github.com/ilmify/ilmify-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// Services wired by ensureServices. Tests may swap these.
var (
	askService    driving.AskService
	searchService driving.SearchService
	indexOrch     driving.IndexOrchestrator
)

var (
	flagVerbose bool
	flagConfig  string
	flagCatalog string
)

var rootCmd = &cobra.Command{
	Use:   "ilmify",
	Short: "Offline knowledge engine for the Ilmify school portal",
	Long: `Ilmify answers questions from the portal's downloaded resources.
It indexes PDF and text content on the hotspot device, ranks passages
with a keyword heuristic, and assembles extractive answers with cited
sources. No internet connection is required.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"print pipeline debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"settings file (default ~/.ilmify/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "",
		"resource catalog metadata.json (overrides settings)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureServices wires the engine once, on first use by a command.
func ensureServices(ctx context.Context) error {
	if askService != nil {
		return nil
	}

	path := flagConfig
	if path == "" {
		var err error
		path, err = configfile.DefaultPath()
		if err != nil {
			return fmt.Errorf("locate settings: %w", err)
		}
	}

	settings, err := configfile.Load(path)
	if err != nil {
		return err
	}
	if flagCatalog != "" {
		settings.Catalog.Path = flagCatalog
	}
	if settings.Catalog.Path == "" {
		return fmt.Errorf("no catalog configured: pass --catalog or set catalog.path in %s", path)
	}

	return wireServices(ctx, settings)
}
