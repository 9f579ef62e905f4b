// Package logger provides leveled, coloured logging for rsatrace commands.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows debug messages, such as every generated key parameter
//
// Warnings and errors are always shown on stderr.
//
// # Usage
//
// Command groups build a logger in their PersistentPreRun:
//
//	Logger = logger.Logger{Verbose: verbose, Debug: debug}
//	Logger.Infof("Generated keys in %s mode", mode)
//
// Command handlers return errors through ErrorfAndReturn so the message is
// both logged and propagated to cobra:
//
//	return Logger.ErrorfAndReturn("failed to start session: %w", err)
package logger
