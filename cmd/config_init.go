package cmd

import (
	"errors"
	"fmt"

	"github.com/PolarWolf314/rsatrace/internal/configs"
	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Writes a config file with the default settings: fixed keys, primes from
[11, 100) in random mode and no transcript.

An existing file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config init command")
		out := cmd.OutOrStdout()
		path := resolvedConfigPath()
		ConfigLogger.Debugf("Config path: %s, force=%t", path, configInitForce)

		cfg, err := configs.InitConfig(path, configInitForce)
		if errors.Is(err, kerrors.ErrConfigExists) {
			fmt.Fprintln(out, color.YellowString("⚠")+" Config file already exists at "+color.YellowString(path))
			fmt.Fprintln(out, color.CyanString("→")+" Run with "+color.YellowString("--force")+" to overwrite it")
			return nil
		}
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to write config: %w", err)
		}

		fmt.Fprintln(out, color.GreenString("✓")+" Config written to "+color.YellowString(path))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Mode:        "+color.CyanString(cfg.Keys.Mode))
		fmt.Fprintf(out, "  Prime range: [%d, %d)\n", cfg.Keys.PrimeLow, cfg.Keys.PrimeHigh)
		ConfigLogger.Infof("Config init completed")
		return nil
	},
}
