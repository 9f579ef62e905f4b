// Package render turns keys and messages into the step-by-step text shown by
// the CLI. All styling goes through internal/ui, so NO_COLOR output is plain.
package render

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/PolarWolf314/rsatrace/internal/keys"
	"github.com/PolarWolf314/rsatrace/internal/pipeline"
	"github.com/PolarWolf314/rsatrace/internal/ui"
)

// Keys prints one party's public and private key.
func Keys(w io.Writer, party pipeline.Party, k keys.KeyPair) {
	name := ui.Party.Sprint(party.Title())
	n, e := k.PublicKey()
	_, d := k.PrivateKey()

	fmt.Fprintf(w, "%s's public key: %s\n", name, ui.Key.Sprintf("(n=%d, e=%d)", n, e))
	fmt.Fprintf(w, "%s's private key: %s\n", name, ui.Key.Sprintf("(n=%d, d=%d)", n, d))
	fmt.Fprintf(w, "  %s\n", ui.Muted.Sprintf("p=%d, q=%d, phi=%d", k.P, k.Q, k.Phi))
}

// Message prints the i-th message (1-based) with every encryption and
// decryption step.
func Message(w io.Writer, i int, m pipeline.Message) {
	fmt.Fprintf(w, "Message %d: %s %s %s\n", i, ui.Party.Sprint(m.Sender.Title()), ui.Info.Sprint("→"), ui.Party.Sprint(m.Recipient.Title()))
	fmt.Fprintf(w, "Original message: %s\n", m.Plaintext)
	if m.WasFiltered() {
		fmt.Fprintf(w, "Filtered uppercase letters: %s %s\n", m.FilteredText, ui.Muted.Sprint("only letters A-Z are encrypted"))
	}
	fmt.Fprintf(w, "Letters mapped to numbers: %s\n", Numbers(m.PlainNums))

	fmt.Fprintln(w, "Encryption steps:")
	for _, s := range m.EncSteps {
		fmt.Fprintf(w, "  - Char %d: %s (%s) %s %s\n",
			s.Index, ui.Letter.Sprint(s.SourceChar), ui.Number.Sprint(s.SourceNum), ui.Info.Sprint("→"), ui.Trace.Sprint(s.Trace))
	}
	fmt.Fprintf(w, "Ciphertext numbers: %s\n", Numbers(m.CipherNums))

	fmt.Fprintln(w, "Decryption steps:")
	for _, s := range m.DecSteps {
		fmt.Fprintf(w, "  - Char %d: ciphertext %s %s %s %s decrypted number: %s\n",
			s.Index, ui.Number.Sprint(s.CipherNum), ui.Info.Sprint("→"), ui.Trace.Sprint(s.Trace), ui.Info.Sprint("→"), ui.Number.Sprint(s.RecoveredNum))
	}
	fmt.Fprintf(w, "Decrypted numbers mapped to letters: %s\n", Numbers(m.DecryptedNums))
	fmt.Fprintf(w, "Decrypted text: %s\n", m.DecryptedText)

	if m.RoundTripOK() {
		fmt.Fprintf(w, "%s Decryption successful! Original message recovered.\n", ui.Success.Sprint("✓"))
	} else {
		fmt.Fprintf(w, "%s Decryption failed! Message mismatch.\n", ui.Error.Sprint("✗"))
	}
}

// History prints every message in order, separated by rules.
func History(w io.Writer, msgs iter.Seq[pipeline.Message]) {
	i := 0
	for m := range msgs {
		i++
		if i > 1 {
			fmt.Fprintln(w, Rule)
		}
		Message(w, i, m)
	}
	if i == 0 {
		fmt.Fprintf(w, "%s No messages sent yet!\n", ui.Info.Sprint("→"))
	}
}

// Rule separates rendered blocks.
const Rule = "---"

// Numbers renders a slice as "[7, 8, 1]".
func Numbers(nums []int64) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
