package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/rsatrace/internal/pipeline"
	"github.com/PolarWolf314/rsatrace/internal/render"
	"github.com/PolarWolf314/rsatrace/internal/ui"
	"github.com/PolarWolf314/rsatrace/internal/workflows"

	"github.com/spf13/cobra"
)

var keysJSON bool

func init() {
	keysCmd.Flags().BoolVar(&keysJSON, "json", false, "output keys in JSON format")
}

func resetKeysCommandState() {
	keysJSON = false
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Generate and display Alice's and Bob's keys",
	Long: `Generates a keypair for Alice and one for Bob and prints both.

In fixed mode the keys are always the same: Alice uses n=77 and Bob n=65.
In random mode two distinct primes are drawn from [--prime-low, --prime-high).
Pass --seed to make random keys reproducible.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys command")
		out := cmd.OutOrStdout()

		spinner, cleanup := startSpinner("Generating keys...", out)
		result, err := workflows.Keys(cmd.Context(), workflows.KeysOptions{Keys: keyOptions})
		if err != nil {
			if msg, ok := keyGenerationFailure(err); ok {
				spinner.FinalMSG = msg
				cleanup()
				return err
			}
			cleanup()
			return Logger.ErrorfAndReturn("Failed to generate keys: %w", err)
		}
		cleanup()

		if keysJSON {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to encode keys: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s Generated %s keys\n", ui.Success.Sprint("✓"), result.Mode)
		if result.Seed != 0 {
			fmt.Fprintln(out, seedNote(result.Seed))
		}
		fmt.Fprintln(out)
		render.Keys(out, pipeline.Alice, result.Alice)
		fmt.Fprintln(out)
		render.Keys(out, pipeline.Bob, result.Bob)
		Logger.Infof("Keys command completed")
		return nil
	},
}
