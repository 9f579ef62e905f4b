// Package transcript exports a session's messages to a JSON Lines file.
//
// A transcript is opt-in. It is written only when the user passes
// --transcript or sets output.transcript in the config. Sessions never load a
// transcript back; the history command only renders one.
//
// # Format
//
// One JSON object per line:
//
//	{"ts":"2026-10-18T12:00:00.000000Z","session":"<uuid>","mode":"fixed","message":{...}}
//
// The message object carries every field of a pipeline.Message, including
// the encryption and decryption step traces.
//
// # Reading
//
// Use ReadEntries() to load a transcript for display. Malformed lines are
// silently skipped to tolerate partial writes.
package transcript
