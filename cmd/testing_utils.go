// Package cmd contains testing utilities shared between the command tests.
// This file provides common functions for isolating the config file,
// capturing output and running the CLI.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/rsatrace/internal/configs"

	"github.com/spf13/cobra"
)

// setupTestEnvironment points the config file at a temp directory and turns
// off colors. Returns the config path.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv(configs.EnvConfigPath, path)
	t.Setenv("NO_COLOR", "1")

	ResetGlobalState()
	ResetConfigState()
	t.Cleanup(func() {
		ResetGlobalState()
		ResetConfigState()
	})
	return path
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string)
	errorChan := make(chan string)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to copy stdout: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to copy stderr: %s", err)
		}
		errorChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-outputChan + <-errorChan, err
}

// createTestCLI creates a fresh root command wired to the real command groups.
// stdin feeds the interactive session; nil leaves the default.
func createTestCLI(args []string, stdin io.Reader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rsatrace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(SessionCmd)
	rootCmd.AddCommand(ConfigCmd)

	if stdin != nil {
		rootCmd.SetIn(stdin)
	}
	rootCmd.SetArgs(args)
	return rootCmd
}

// runCLI runs the CLI with args and returns everything it printed.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var in io.Reader
	if stdin != "" {
		in = strings.NewReader(stdin)
	}

	return captureOutput(func() error {
		rootCmd := createTestCLI(args, in)
		defer rootCmd.RemoveCommand(SessionCmd, ConfigCmd)
		return rootCmd.Execute()
	})
}
