// Package cli defines the squadrot command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsubei/squadrot/internal/config"
	"github.com/bsubei/squadrot/pkg/logger"
)

var (
	cfg     *config.Config
	rootCmd = &cobra.Command{
		Use:   "squadrot",
		Short: "Generate a rule-constrained random Squad map rotation",
		Long: `squadrot builds a randomized map rotation from a layer catalog and a
declarative pattern config, writes it to the server rotation file, and can
post the result to Discord and/or Telegram.

Configuration layers: built-in defaults, then the YAML file named by
SQUADROT_CONFIG, then SQUADROT_* environment variables, then flags.`,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sampleCmd)
}

func initConfig() {
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting log level: %v\n", err)
		os.Exit(1)
	}
}

// applyFlagOverrides copies set flags over the loaded config so flags win
// over file and environment values.
func applyFlagOverrides(cmd *cobra.Command) {
	if cmd.Flags().Changed("input") {
		cfg.CatalogPath, _ = cmd.Flags().GetString("input")
	}
	if cmd.Flags().Changed("url") {
		cfg.CatalogURL, _ = cmd.Flags().GetString("url")
	}
	if cmd.Flags().Changed("pattern") {
		cfg.PatternPath, _ = cmd.Flags().GetString("pattern")
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputPath, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("discord-webhook-url") {
		cfg.DiscordWebhookURL, _ = cmd.Flags().GetString("discord-webhook-url")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
}

// addSourceFlags registers the flags shared by generate and validate.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", config.DefaultCatalogPath, "filepath of the JSON layer catalog")
	cmd.Flags().String("url", "", "URL of the JSON layer catalog (takes precedence over --input)")
	cmd.Flags().StringP("pattern", "p", config.DefaultPatternPath, "filepath of the YAML rotation pattern config")
}
