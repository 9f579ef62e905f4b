// Package workflows provides high-level orchestration for rsatrace commands.
//
// Workflows coordinate the engine packages (keys, session, pipeline,
// transcript) to implement complete user-facing features, independent of CLI
// concerns like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Renders the result
//
// Workflows handle everything else:
//   - Generating keys and starting sessions
//   - Routing a message to the other party's keys
//   - Writing and reading transcripts
//
// # Available Workflows
//
//   - Keys: generates both parties' keypairs for display
//   - StartSession: creates a session with fresh keys and an empty log
//   - Deliver: sends one message inside an existing session
//   - Send: a one-shot session delivering a single message
//   - History: loads a transcript for display
//   - ParseChatInput: interprets one line of the interactive session
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching:
//
//	result, err := workflows.Keys(ctx, opts)
//	if errors.Is(err, kerrors.ErrEmptyPrimeRange) {
//	    // Suggest a wider prime range
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter
// and return ctx.Err() if it is already cancelled.
package workflows
