package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/rsatrace/internal/pipeline"
	"github.com/PolarWolf314/rsatrace/internal/render"
	"github.com/PolarWolf314/rsatrace/internal/session"
	"github.com/PolarWolf314/rsatrace/internal/ui"
	"github.com/PolarWolf314/rsatrace/internal/utils"
	"github.com/PolarWolf314/rsatrace/internal/workflows"

	"github.com/spf13/cobra"
)

var startTranscript string

func init() {
	startCmd.Flags().StringVar(&startTranscript, "transcript", "", "append every message to this JSONL transcript")
}

func resetStartCommandState() {
	startTranscript = ""
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Chat interactively as Alice and Bob",
	Long: `Starts an interactive session. Both keypairs are generated once and every
message is traced step by step.

Type a line as one of the parties:
  alice: hello bob
  bob: hi alice

Commands:
  /keys      show both keypairs
  /history   replay every message sent so far
  /help      show this help
  /quit      end the session (Ctrl-D works too)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting interactive session")
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		in := cmd.InOrStdin()

		spinner, cleanup := startSpinner("Generating keys...", out)
		sess, err := workflows.StartSession(ctx, workflows.SessionOptions{Keys: keyOptions})
		if err != nil {
			if msg, ok := keyGenerationFailure(err); ok {
				spinner.FinalMSG = msg
				cleanup()
				return err
			}
			cleanup()
			return Logger.ErrorfAndReturn("Failed to start session: %w", err)
		}
		cleanup()
		Logger.Debugf("Session %s started in %s mode", sess.ID, sess.Mode)

		printBanner()
		if sess.Seed != 0 {
			fmt.Fprintln(out, seedNote(sess.Seed))
		}
		showKeys(out, sess)
		fmt.Fprintln(out)
		printChatHelp(out)

		path := transcriptPath(startTranscript)
		if path != "" {
			fmt.Fprintf(out, "%s Saving messages to %s\n", ui.Info.Sprint("→"), ui.Code.Sprint(path))
		}

		prompt := in == os.Stdin && utils.IsStdinTerminal()
		scanner := bufio.NewScanner(in)
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			if prompt {
				fmt.Fprint(out, "> ")
			}
			if !scanner.Scan() {
				break
			}

			input, err := workflows.ParseChatInput(scanner.Text())
			if err != nil {
				Logger.Warnf("%v", err)
				fmt.Fprintf(out, "%s Start a line with %s or %s\n", ui.Info.Sprint("→"), ui.Code.Sprint("alice:"), ui.Code.Sprint("bob:"))
				continue
			}

			switch input.Action {
			case workflows.ChatSkip:
			case workflows.ChatShowKeys:
				showKeys(out, sess)
			case workflows.ChatShowHistory:
				render.History(out, sess.History())
			case workflows.ChatHelp:
				printChatHelp(out)
			case workflows.ChatQuit:
				return endSession(out, sess)
			case workflows.ChatSend:
				result, err := workflows.Deliver(ctx, workflows.DeliverOptions{
					Session:        sess,
					From:           input.From,
					Text:           input.Text,
					TranscriptPath: path,
				})
				if err != nil {
					return Logger.ErrorfAndReturn("Failed to send message: %w", err)
				}
				if !result.Sent {
					fmt.Fprintln(out, noLettersNote())
					continue
				}
				render.Message(out, result.Index, result.Message)
				if result.TranscriptErr != nil {
					Logger.Warnf("Message was not saved to the transcript: %v", result.TranscriptErr)
				}
			}
		}

		if err := scanner.Err(); err != nil {
			return Logger.ErrorfAndReturn("Failed to read input: %w", err)
		}
		return endSession(out, sess)
	},
}

func showKeys(out io.Writer, sess *session.Session) {
	render.Keys(out, pipeline.Alice, sess.Alice)
	fmt.Fprintln(out)
	render.Keys(out, pipeline.Bob, sess.Bob)
}

func printChatHelp(out io.Writer) {
	fmt.Fprintf(out, "Type %s or %s to send a message.\n", ui.Code.Sprint("alice: <text>"), ui.Code.Sprint("bob: <text>"))
	fmt.Fprintf(out, "Commands: %s, %s, %s, %s\n",
		ui.Code.Sprint("/keys"), ui.Code.Sprint("/history"), ui.Code.Sprint("/help"), ui.Code.Sprint("/quit"))
}

func endSession(out io.Writer, sess *session.Session) error {
	fmt.Fprintf(out, "%s Session ended after %d message(s)\n", ui.Success.Sprint("✓"), sess.Log.Len())
	Logger.Infof("Session %s ended", sess.ID)
	return nil
}
