package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.apply(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.apply(fmt.Sprintf(format, a...))
}

func (f Formatter) apply(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Letter formats plaintext or decrypted letters.
	// Bold green with color, 'single quotes' without.
	Letter = Formatter{color.New(color.FgGreen, color.Bold), "'", "'"}

	// Number formats symbol values and ciphertext numbers.
	// Magenta with color, unchanged without.
	Number = Formatter{color.New(color.FgMagenta), "", ""}

	// Trace formats a modular exponentiation trace line.
	// Yellow with color, unchanged without.
	Trace = Formatter{color.New(color.FgYellow), "", ""}

	// Key formats public and private key components.
	// Blue with color, unchanged without.
	Key = Formatter{color.New(color.FgBlue), "", ""}

	// Party formats Alice and Bob.
	// Bold cyan with color, unchanged without.
	Party = Formatter{color.New(color.FgCyan, color.Bold), "", ""}

	// Code formats runnable commands.
	// Yellow with color, `backticks` without.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Success formats success indicators and messages.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error indicators and messages.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning formats warning indicators and messages.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats informational hints and arrows.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Muted formats de-emphasized notes.
	// Gray with color, (parentheses) without.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
