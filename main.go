package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/rsatrace/cmd"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rsatrace",
	Short: "rsatrace - textbook RSA, traced step by step for Alice and Bob.",
	Long: `rsatrace is a teaching tool that shows how textbook RSA works.

Alice and Bob each get a keypair built from small primes. Every message is
mapped letter by letter to numbers, encrypted with the recipient's public key
and decrypted with their private key, and each modular exponentiation is shown.

This is not secure encryption. Keys are tiny and there is no padding.

Usage:
  rsatrace <command> [flags]

Available Commands:
  session    Generate keys, send messages and chat
  config     Manage the config file

Run 'rsatrace help <command>' for more details on a specific command.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to rsatrace! Run 'rsatrace --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.SessionCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
