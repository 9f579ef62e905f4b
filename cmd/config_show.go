package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PolarWolf314/rsatrace/internal/configs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the effective rsatrace configuration. Settings missing from the
config file, or the whole file when it doesn't exist, fall back to defaults.

Examples:
  rsatrace config show
  rsatrace config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")
		out := cmd.OutOrStdout()
		path := resolvedConfigPath()

		ConfigLogger.Debugf("Loading config from %s", path)
		cfg, err := configs.LoadConfig(path)
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to load config: %w", err)
		}

		if configShowJSON {
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("Failed to encode config: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		source := path
		if _, err := os.Stat(path); os.IsNotExist(err) {
			source = path + " (not found, using defaults)"
		}

		fmt.Fprintln(out, color.CyanString("Configuration")+" "+color.YellowString(source))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  [keys]")
		fmt.Fprintln(out, "  Mode:        "+color.CyanString(cfg.Keys.Mode))
		fmt.Fprintf(out, "  Prime range: [%d, %d)\n", cfg.Keys.PrimeLow, cfg.Keys.PrimeHigh)
		if cfg.Keys.Seed != 0 {
			fmt.Fprintf(out, "  Seed:        %d\n", cfg.Keys.Seed)
		} else {
			fmt.Fprintln(out, "  Seed:        "+color.HiBlackString("from clock"))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  [output]")
		if cfg.Output.Transcript != "" {
			fmt.Fprintln(out, "  Transcript:  "+color.YellowString(cfg.Output.Transcript))
		} else {
			fmt.Fprintln(out, "  Transcript:  "+color.HiBlackString("none"))
		}
		return nil
	},
}
