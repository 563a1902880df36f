package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsubei/squadrot/internal/layergen"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Emit a synthetic layer catalog JSON for demos and testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetInt64("seed")
		out, _ := cmd.Flags().GetString("out")

		data, err := layergen.New(layergen.WithSeed(seed)).JSON()
		if err != nil {
			return err
		}
		if out == "" || out == "-" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write sample catalog: %w", err)
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().Int64("seed", 1, "random seed for the synthetic catalog")
	sampleCmd.Flags().String("out", "-", "output file ('-' for stdout)")
}
