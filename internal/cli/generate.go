package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/bsubei/squadrot/internal/adapters/notify/discord"
	"github.com/bsubei/squadrot/internal/adapters/notify/telegram"
	"github.com/bsubei/squadrot/internal/app"
	"github.com/bsubei/squadrot/internal/config"
	"github.com/bsubei/squadrot/pkg/logger"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a rotation and write it to the rotation file",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyFlagOverrides(cmd)
		ctx := cmd.Context()

		opts := []app.Option{app.WithLogger(logger.Named("app"))}
		for _, n := range buildNotifiers(cfg) {
			opts = append(opts, app.WithNotifier(n))
		}

		_, err := app.New(cfg, opts...).Run(ctx)
		return err
	},
}

func init() {
	addSourceFlags(generateCmd)
	generateCmd.Flags().StringP("output", "o", config.DefaultOutputPath, "filepath to write the rotation to")
	generateCmd.Flags().String("discord-webhook-url", "", "Discord webhook URL to post the rotation to")
	generateCmd.Flags().Int64("seed", 0, "fixed random seed for reproducible rotations (0 = time-seeded)")
}

// buildNotifiers assembles the configured notification sinks. A Telegram
// notifier that cannot be constructed (bad token, network) is skipped with a
// warning; it must not block rotation generation.
func buildNotifiers(cfg *config.Config) []app.Notifier {
	var notifiers []app.Notifier
	if cfg.DiscordWebhookURL != "" {
		notifiers = append(notifiers, discord.NewWebhook(
			cfg.DiscordWebhookURL,
			discord.WithEmbed(cfg.DiscordUseEmbed),
			discord.WithTimeout(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second),
		))
	}
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		n, err := telegram.New(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			logger.Named("cli").Warn(context.Background(), "telegram notifier unavailable", logger.Error(err))
		} else {
			notifiers = append(notifiers, n)
		}
	}
	return notifiers
}
