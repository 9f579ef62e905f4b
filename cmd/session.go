package cmd

import (
	"fmt"

	"github.com/PolarWolf314/rsatrace/internal/configs"
	"github.com/PolarWolf314/rsatrace/internal/keys"
	logger "github.com/PolarWolf314/rsatrace/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose       bool
	debug         bool
	keyMode       string
	primeLow      int64
	primeHigh     int64
	seed          int64
	sessionConfig string
	Logger        logger.Logger

	// effectiveConfig is the loaded config with flag overrides applied.
	effectiveConfig *configs.Config
	keyOptions      keys.Options

	SessionCmd = &cobra.Command{
		Use:   "session",
		Short: "Run the Alice and Bob RSA demo",
		Long: `Generates textbook RSA keys for Alice and Bob and traces every step of
encrypting and decrypting their messages.

Only the letters A-Z are encrypted. Each letter becomes a number from 0 to 25
and is raised to the recipient's public exponent modulo n.

Examples:
  # Show the fixed demo keys
  rsatrace session keys

  # Send one message from Bob to Alice
  rsatrace session send --from bob HI

  # Chat interactively with random keys
  rsatrace session start --mode random`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing session command with verbose=%t, debug=%t", verbose, debug)

			cfg, opts, err := resolveSessionConfig(cmd.Flags())
			if err != nil {
				if msg, ok := keyGenerationFailure(err); ok {
					fmt.Fprintln(cmd.OutOrStdout(), msg)
					return err
				}
				return Logger.ErrorfAndReturn("Invalid configuration: %w", err)
			}
			effectiveConfig = cfg
			keyOptions = opts
			Logger.Debugf("Key options: mode=%s, range=[%d, %d), seed=%d", opts.Mode, opts.PrimeLow, opts.PrimeHigh, opts.Seed)
			return nil
		},
	}
)

func init() {
	SessionCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	SessionCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	SessionCmd.PersistentFlags().StringVar(&keyMode, "mode", string(keys.ModeFixed), "key mode: fixed or random")
	SessionCmd.PersistentFlags().Int64Var(&primeLow, "prime-low", keys.DefaultPrimeLow, "lowest prime considered in random mode (inclusive)")
	SessionCmd.PersistentFlags().Int64Var(&primeHigh, "prime-high", keys.DefaultPrimeHigh, "upper bound for primes in random mode (exclusive, at most 65536)")
	SessionCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "seed for random mode (0 seeds from the clock)")
	SessionCmd.PersistentFlags().StringVar(&sessionConfig, "config", "", "path to the config file")

	SessionCmd.AddCommand(keysCmd)
	SessionCmd.AddCommand(sendCmd)
	SessionCmd.AddCommand(startCmd)
	SessionCmd.AddCommand(historyCmd)
}

// resolveSessionConfig loads the config file and overlays every key flag the
// user set explicitly.
func resolveSessionConfig(flags *pflag.FlagSet) (*configs.Config, keys.Options, error) {
	path := configs.ResolveConfigPath(sessionConfig)
	Logger.Debugf("Loading config from %s", path)

	cfg, err := configs.LoadConfig(path)
	if err != nil {
		return nil, keys.Options{}, err
	}

	if flags.Changed("mode") {
		cfg.Keys.Mode = keyMode
	}
	if flags.Changed("prime-low") {
		cfg.Keys.PrimeLow = primeLow
	}
	if flags.Changed("prime-high") {
		cfg.Keys.PrimeHigh = primeHigh
	}
	if flags.Changed("seed") {
		cfg.Keys.Seed = seed
	}

	opts, err := cfg.KeyOptions()
	if err != nil {
		return nil, keys.Options{}, err
	}
	return cfg, opts, nil
}

// transcriptPath returns the transcript file to write: the flag wins over
// the config file.
func transcriptPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if effectiveConfig != nil {
		return effectiveConfig.Output.Transcript
	}
	return ""
}

// Helper functions for testing

// GetSessionCmd returns the SessionCmd for testing.
func GetSessionCmd() *cobra.Command {
	return SessionCmd
}

// ResetGlobalState resets all session command globals and flags to their
// defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	keyMode = string(keys.ModeFixed)
	primeLow = keys.DefaultPrimeLow
	primeHigh = keys.DefaultPrimeHigh
	seed = 0
	sessionConfig = ""
	effectiveConfig = nil
	keyOptions = keys.Options{}

	resetKeysCommandState()
	resetSendCommandState()
	resetStartCommandState()
	resetCobraFlagState(SessionCmd)
}

// resetCobraFlagState marks every flag of cmd and its children as unchanged
// so one test's flags don't leak into the next.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
