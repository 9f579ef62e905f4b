package cmd

import (
	"errors"
	"fmt"
	"slices"

	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"
	"github.com/PolarWolf314/rsatrace/internal/render"
	"github.com/PolarWolf314/rsatrace/internal/ui"
	"github.com/PolarWolf314/rsatrace/internal/workflows"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [FILE]",
	Short: "Replay the messages saved in a transcript",
	Long: `Reads a JSONL transcript written by "send --transcript" or "start --transcript"
and prints every message with its full step record.

Without FILE the transcript from the config file's [output] table is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting history command")
		out := cmd.OutOrStdout()

		path := transcriptPath("")
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			fmt.Fprintf(out, "%s No transcript given\n%s Pass a file or set %s in the config\n",
				ui.Error.Sprint("✗"), ui.Info.Sprint("→"), ui.Code.Sprint("output.transcript"))
			return fmt.Errorf("no transcript given")
		}
		Logger.Debugf("Reading transcript %s", path)

		result, err := workflows.History(cmd.Context(), workflows.HistoryOptions{Path: path})
		if errors.Is(err, kerrors.ErrTranscriptNotFound) {
			fmt.Fprintf(out, "%s Transcript %s does not exist\n", ui.Error.Sprint("✗"), ui.Code.Sprint(path))
			return err
		}
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read transcript: %w", err)
		}

		fmt.Fprintf(out, "%s %d message(s) from %d session(s)\n\n",
			ui.Info.Sprint("→"), len(result.Messages), result.Sessions)
		render.History(out, slices.Values(result.Messages))
		return nil
	},
}
