// Package pipeline runs a plaintext through the full textbook RSA round trip
// and records every step.
//
// Transform filters the input to A–Z, maps each letter to 0–25, encrypts each
// number with the recipient's public key, decrypts each ciphertext with the
// recipient's private key, and maps the results back to letters. Each
// exponentiation is kept as an EncryptStep or DecryptStep whose Trace field
// holds the exact line shown to the user:
//
//	msg := pipeline.Transform("Hi!", bobKeys)
//	msg.EncSteps[0].Trace // "(7^5) mod 65 = 37"
//	msg.RoundTripOK()     // true
//
// Transform is a pure function. It never mutates its keys and has no failure
// path. Sender, recipient and timestamp are filled in by the session that owns
// the message.
package pipeline
