// Package utils provides small helpers shared by the CLI layer.
//
// # Terminal Utilities
//
// Functions for terminal detection:
//   - IsTerminal: reports whether a file is attached to a terminal
//   - IsStdinTerminal / IsStdoutTerminal: shortcuts for the standard streams
//
// The interactive session uses these to decide whether to print prompts and
// the start-up banner.
//
// # Chat Line Utilities
//
//   - SplitChatLine: splits "alice: hello" into the speaker and the text
package utils
