// Package errors provides typed error values for rsatrace.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Key generation errors: the configured prime range cannot produce a
//     usable keypair (ErrEmptyPrimeRange, ErrModulusTooSmall, ErrNoCoprimeExponent)
//   - Key errors: a keypair breaks an RSA invariant (ErrInvalidKeyPair)
//   - Input errors: bad flags or chat lines (ErrUnknownKeyMode, ErrUnknownParty)
//   - File errors: transcript and config files (ErrTranscriptNotFound)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(primes) == 0 {
//	    return KeyPair{}, errors.ErrEmptyPrimeRange
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("primes in [%d, %d): %w", low, high, errors.ErrEmptyPrimeRange)
//
// Handle errors in the CLI layer:
//
//	sess, err := workflows.NewSession(ctx, opts)
//	if errors.Is(err, kerrors.ErrEmptyPrimeRange) {
//	    // Suggest a wider --prime-low/--prime-high range
//	}
package errors
