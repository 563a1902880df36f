package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bsubei/squadrot/internal/app"
	"github.com/bsubei/squadrot/pkg/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the pattern config against the layer catalog without generating",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyFlagOverrides(cmd)

		if err := app.New(cfg, app.WithLogger(logger.Named("app"))).Validate(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("OK: %s is valid against the catalog\n", cfg.PatternPath)
		return nil
	},
}

func init() {
	addSourceFlags(validateCmd)
}
