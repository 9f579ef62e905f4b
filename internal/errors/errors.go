package errors

import "errors"

// Key generation errors indicate the configured prime range cannot produce a keypair.
var (
	// ErrInvalidPrimeRange indicates the lower bound is not below the upper bound.
	ErrInvalidPrimeRange = errors.New("invalid prime range")

	// ErrEmptyPrimeRange indicates the sampling range contains no primes.
	ErrEmptyPrimeRange = errors.New("no primes in range")

	// ErrModulusTooSmall indicates no two distinct primes in range give a modulus above the alphabet.
	ErrModulusTooSmall = errors.New("no prime pair in range gives a modulus larger than the alphabet")

	// ErrNoCoprimeExponent indicates phi has no odd public exponent coprime to it.
	ErrNoCoprimeExponent = errors.New("no public exponent coprime to phi")

	// ErrNoModularInverse indicates e has no inverse modulo phi.
	ErrNoModularInverse = errors.New("no modular inverse")
)

// Key errors indicate a keypair breaks an RSA invariant.
var (
	// ErrInvalidKeyPair indicates the keypair fails validation.
	ErrInvalidKeyPair = errors.New("invalid keypair")
)

// Input errors indicate bad flags, arguments or chat lines.
var (
	// ErrUnknownKeyMode indicates the key mode is neither "fixed" nor "random".
	ErrUnknownKeyMode = errors.New("unknown key mode")

	// ErrUnknownParty indicates the party is neither alice nor bob.
	ErrUnknownParty = errors.New("unknown party")

	// ErrMalformedChatLine indicates a chat line is not of the form "party: text".
	ErrMalformedChatLine = errors.New("malformed chat line")
)

// File errors indicate issues with transcript or config files.
var (
	// ErrTranscriptNotFound indicates the transcript file does not exist.
	ErrTranscriptNotFound = errors.New("transcript not found")

	// ErrConfigExists indicates a config file is already present.
	ErrConfigExists = errors.New("config file already exists")
)
