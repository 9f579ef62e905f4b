package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/rsatrace/internal/pipeline"
	"github.com/PolarWolf314/rsatrace/internal/render"
	"github.com/PolarWolf314/rsatrace/internal/ui"
	"github.com/PolarWolf314/rsatrace/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	sendFrom       string
	sendTranscript string
)

func init() {
	sendCmd.Flags().StringVar(&sendFrom, "from", string(pipeline.Alice), "sender: alice or bob")
	sendCmd.Flags().StringVar(&sendTranscript, "transcript", "", "append the message to this JSONL transcript")
}

func resetSendCommandState() {
	sendFrom = string(pipeline.Alice)
	sendTranscript = ""
}

var sendCmd = &cobra.Command{
	Use:   "send [flags] TEXT...",
	Short: "Encrypt and decrypt a single message",
	Long: `Sends one message from the given party to the other and prints every step:
the letter to number mapping, each encryption and decryption trace, and
whether the original message was recovered.

Characters other than A-Z (after upper-casing) are dropped before encryption.

Examples:
  rsatrace session send --from bob HI
  rsatrace session send --from alice "Hi, Bob!"
  rsatrace session send --mode random --seed 42 --from bob HELLO`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting send command")
		out := cmd.OutOrStdout()

		from, err := pipeline.ParseParty(sendFrom)
		if err != nil {
			return Logger.ErrorfAndReturn("Invalid --from: %w", err)
		}
		text := strings.Join(args, " ")
		Logger.Debugf("Sending %q from %s", text, from)

		spinner, cleanup := startSpinner("Encrypting message...", out)
		result, err := workflows.Send(cmd.Context(), workflows.SendOptions{
			Keys:           keyOptions,
			From:           from,
			Text:           text,
			TranscriptPath: transcriptPath(sendTranscript),
		})
		if err != nil {
			if msg, ok := keyGenerationFailure(err); ok {
				spinner.FinalMSG = msg
				cleanup()
				return err
			}
			cleanup()
			return Logger.ErrorfAndReturn("Failed to send message: %w", err)
		}
		cleanup()
		if result.Session.Seed != 0 {
			Logger.Infof("Random keys from seed %d", result.Session.Seed)
		}

		if !result.Sent {
			fmt.Fprintln(out, noLettersNote())
			return nil
		}

		render.Message(out, result.Index, result.Message)
		if result.TranscriptErr != nil {
			Logger.Warnf("Message was not saved to the transcript: %v", result.TranscriptErr)
		}
		Logger.Infof("Send command completed")
		return nil
	},
}

func noLettersNote() string {
	return ui.Warning.Sprint("⚠") + " Nothing to send: the message has no letters A-Z"
}
