package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"
	"github.com/PolarWolf314/rsatrace/internal/keys"
	"github.com/PolarWolf314/rsatrace/internal/ui"
	"github.com/PolarWolf314/rsatrace/internal/utils"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

// startSpinner creates and starts a spinner with the given message when not in
// verbose or debug mode. Returns the spinner and a function that should be
// deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// prints the final message to out after the spinner line is cleared.
func startSpinner(message string, out io.Writer) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}

// keyGenerationFailure turns a key generation error into a user-facing
// message with a hint on how to fix it. ok is false for any other error.
func keyGenerationFailure(err error) (msg string, ok bool) {
	msg = ui.Error.Sprint("✗") + " Could not generate keys: " + err.Error()

	switch {
	case errors.Is(err, kerrors.ErrEmptyPrimeRange),
		errors.Is(err, kerrors.ErrModulusTooSmall),
		errors.Is(err, kerrors.ErrNoCoprimeExponent):
		return msg + "\n" + ui.Info.Sprint("→") + " Widen the range with " +
			ui.Code.Sprint("--prime-low") + " and " + ui.Code.Sprint("--prime-high"), true
	case errors.Is(err, kerrors.ErrInvalidPrimeRange):
		return msg + "\n" + ui.Info.Sprint("→") + " " + ui.Code.Sprint("--prime-low") +
			" must be below " + ui.Code.Sprint("--prime-high") +
			fmt.Sprintf(", which can be at most %d", keys.MaxPrimeHigh), true
	default:
		return "", false
	}
}

// printBanner prints the start-up banner when stdout is a terminal.
func printBanner() {
	if !utils.IsStdoutTerminal() {
		return
	}
	banner := figure.NewColorFigure("RSA Chat", "", "green", true)
	banner.Print()
	fmt.Println()
}

// seedNote tells the user how to replay a random session.
func seedNote(seed uint64) string {
	return ui.Info.Sprint("→") + fmt.Sprintf(" Seed %d. Replay these keys with ", seed) +
		ui.Code.Sprintf("--mode random --seed %d", seed)
}
