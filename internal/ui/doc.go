// Package ui provides semantic text formatting for rsatrace output.
//
// Formatters exist for each kind of value the demo prints: letters, numbers,
// keys, traces and party names, plus status indicators. When colors are
// available, content is colorized. When NO_COLOR is set or the terminal
// doesn't support colors, text decorations are used where they add meaning
// and plain text otherwise.
//
// # Semantic Formatters
//
//	ui.Letter.Sprint("H")                 // 'H'
//	ui.Number.Sprint(28)                  // ciphertext and symbol values
//	ui.Trace.Sprint("(7^7) mod 77 = 28")  // exponentiation traces
//	ui.Key.Sprint("(n=77, e=7)")          // key components
//	ui.Party.Sprint("Alice")              // sender and recipient
//	ui.Success.Sprint("✓")
//	ui.Error.Sprint("✗")
//	ui.Warning.Sprint("⚠")
//	ui.Info.Sprint("→")
//	ui.Code.Sprint("rsatrace session start")
//	ui.Muted.Sprint("only letters A-Z are encrypted")
//
// # Color Behavior
//
// Colors are disabled when the NO_COLOR environment variable is set (any
// value), or when fatih/color detects an unsupported terminal.
package ui
