// Package keys generates the textbook RSA keypairs used by Alice and Bob.
//
// Two modes are supported. Fixed mode returns the hardcoded demo keypairs
// (n=77 and n=65) so walkthroughs are reproducible by hand. Random mode
// samples small primes from a configurable range.
//
// Primes are chosen from a finite, pre-filtered candidate set and the public
// exponent from a bounded search, so generation either succeeds in one pass or
// fails with a configuration error from the internal/errors package. Ranges
// above MaxPrimeHigh are rejected, which keeps n and phi far from overflow.
package keys

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/PolarWolf314/rsatrace/internal/codec"
	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"
	"github.com/PolarWolf314/rsatrace/internal/numtheory"
)

// Mode selects how keypairs are produced.
type Mode string

const (
	ModeFixed  Mode = "fixed"
	ModeRandom Mode = "random"
)

// Default prime sampling range for random mode, [DefaultPrimeLow, DefaultPrimeHigh).
const (
	DefaultPrimeLow  int64 = 11
	DefaultPrimeHigh int64 = 100
)

// MaxPrimeHigh is the largest accepted upper bound for random mode.
// Every product of two primes below it fits in 32 bits.
const MaxPrimeHigh int64 = 1 << 16

// ParseMode converts a flag or config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeFixed:
		return ModeFixed, nil
	case ModeRandom:
		return ModeRandom, nil
	default:
		return "", fmt.Errorf("%q: %w", s, kerrors.ErrUnknownKeyMode)
	}
}

// KeyPair holds one party's RSA parameters.
type KeyPair struct {
	P   int64 `json:"p"`
	Q   int64 `json:"q"`
	N   int64 `json:"n"`
	Phi int64 `json:"phi"`
	E   int64 `json:"e"`
	D   int64 `json:"d"`
}

// PublicKey returns (n, e).
func (k KeyPair) PublicKey() (n, e int64) {
	return k.N, k.E
}

// PrivateKey returns (n, d).
func (k KeyPair) PrivateKey() (n, d int64) {
	return k.N, k.D
}

// Validate checks every RSA invariant the demo relies on, including that the
// modulus is larger than every alphabet symbol.
func (k KeyPair) Validate() error {
	switch {
	case !numtheory.IsPrime(k.P) || !numtheory.IsPrime(k.Q):
		return fmt.Errorf("%w: p=%d and q=%d must both be prime", kerrors.ErrInvalidKeyPair, k.P, k.Q)
	case k.P == k.Q:
		return fmt.Errorf("%w: p and q must differ", kerrors.ErrInvalidKeyPair)
	case k.N != k.P*k.Q:
		return fmt.Errorf("%w: n=%d is not p*q", kerrors.ErrInvalidKeyPair, k.N)
	case k.Phi != (k.P-1)*(k.Q-1):
		return fmt.Errorf("%w: phi=%d is not (p-1)(q-1)", kerrors.ErrInvalidKeyPair, k.Phi)
	case k.E <= 1 || k.E >= k.Phi:
		return fmt.Errorf("%w: e=%d is outside (1, %d)", kerrors.ErrInvalidKeyPair, k.E, k.Phi)
	case numtheory.GCD(k.E, k.Phi) != 1:
		return fmt.Errorf("%w: gcd(e, phi) != 1", kerrors.ErrInvalidKeyPair)
	case k.D <= 0 || numtheory.MulMod(k.E, k.D, k.Phi) != 1:
		return fmt.Errorf("%w: (e*d) mod phi != 1", kerrors.ErrInvalidKeyPair)
	case k.N <= codec.AlphabetSize-1:
		return fmt.Errorf("%w: n=%d does not exceed the alphabet", kerrors.ErrInvalidKeyPair, k.N)
	}
	return nil
}

// Fixed returns the hardcoded demo keypairs for Alice and Bob.
func Fixed() (alice, bob KeyPair) {
	alice = KeyPair{P: 11, Q: 7, N: 77, Phi: 60, E: 7, D: 43}
	bob = KeyPair{P: 13, Q: 5, N: 65, Phi: 48, E: 5, D: 29}
	return alice, bob
}

// Options configures GeneratePair.
type Options struct {
	Mode      Mode
	PrimeLow  int64
	PrimeHigh int64
	// Seed drives random mode. Zero seeds from the clock.
	Seed uint64
}

// WithDefaults fills zero-valued fields.
func (o Options) WithDefaults() Options {
	if o.Mode == "" {
		o.Mode = ModeFixed
	}
	if o.PrimeLow == 0 {
		o.PrimeLow = DefaultPrimeLow
	}
	if o.PrimeHigh == 0 {
		o.PrimeHigh = DefaultPrimeHigh
	}
	return o
}

// WithSeed fills in a clock seed when random mode has none, so the seed that
// was actually used can be reported and replayed.
func (o Options) WithSeed() Options {
	if o.Mode == ModeRandom && o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	return o
}

// GeneratePair produces Alice's and Bob's keypairs according to opts.
func GeneratePair(opts Options) (alice, bob KeyPair, err error) {
	opts = opts.WithDefaults().WithSeed()

	switch opts.Mode {
	case ModeFixed:
		alice, bob = Fixed()
		return alice, bob, nil
	case ModeRandom:
	default:
		return KeyPair{}, KeyPair{}, fmt.Errorf("%q: %w", opts.Mode, kerrors.ErrUnknownKeyMode)
	}

	seed := opts.Seed
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	alice, err = Generate(rng, opts.PrimeLow, opts.PrimeHigh)
	if err != nil {
		return KeyPair{}, KeyPair{}, fmt.Errorf("generating alice's keys: %w", err)
	}
	bob, err = Generate(rng, opts.PrimeLow, opts.PrimeHigh)
	if err != nil {
		return KeyPair{}, KeyPair{}, fmt.Errorf("generating bob's keys: %w", err)
	}
	return alice, bob, nil
}

// Generate samples a random keypair from primes in [low, high).
// high must not exceed MaxPrimeHigh.
func Generate(rng *rand.Rand, low, high int64) (KeyPair, error) {
	if err := CheckRange(low, high); err != nil {
		return KeyPair{}, err
	}
	primes := numtheory.PrimesInRange(low, high)
	if len(primes) == 0 {
		return KeyPair{}, fmt.Errorf("[%d, %d): %w", low, high, kerrors.ErrEmptyPrimeRange)
	}

	// Only primes with at least one usable partner can be p. The best
	// partner of p is the largest other prime.
	largest := primes[len(primes)-1]
	var firsts []int64
	for _, p := range primes {
		other := largest
		if p == largest {
			if len(primes) < 2 {
				continue
			}
			other = primes[len(primes)-2]
		}
		if p*other >= codec.AlphabetSize {
			firsts = append(firsts, p)
		}
	}
	if len(firsts) == 0 {
		return KeyPair{}, fmt.Errorf("[%d, %d): %w", low, high, kerrors.ErrModulusTooSmall)
	}

	p := firsts[rng.IntN(len(firsts))]
	qs := partners(primes, p)
	q := qs[rng.IntN(len(qs))]

	n := p * q
	phi := (p - 1) * (q - 1)

	e, ok := pickExponent(rng, phi)
	if !ok {
		return KeyPair{}, fmt.Errorf("phi=%d: %w", phi, kerrors.ErrNoCoprimeExponent)
	}

	d, ok := numtheory.ModInverse(e, phi)
	if !ok {
		return KeyPair{}, fmt.Errorf("e=%d, phi=%d: %w", e, phi, kerrors.ErrNoModularInverse)
	}

	return KeyPair{P: p, Q: q, N: n, Phi: phi, E: e, D: d}, nil
}

// partners returns the primes q != p whose product with p exceeds every symbol.
func partners(primes []int64, p int64) []int64 {
	var qs []int64
	for _, q := range primes {
		if q != p && p*q >= codec.AlphabetSize {
			qs = append(qs, q)
		}
	}
	return qs
}

// CheckRange reports whether [low, high) is a usable random-mode prime range.
func CheckRange(low, high int64) error {
	if low >= high {
		return fmt.Errorf("[%d, %d): %w", low, high, kerrors.ErrInvalidPrimeRange)
	}
	if high > MaxPrimeHigh {
		return fmt.Errorf("[%d, %d): upper bound above %d: %w", low, high, MaxPrimeHigh, kerrors.ErrInvalidPrimeRange)
	}
	return nil
}

// exponentDraws bounds the uniform draws pickExponent makes before scanning.
const exponentDraws = 64

// pickExponent returns a random odd e in [3, phi) with gcd(e, phi) == 1.
//
// It draws uniformly up to exponentDraws times. If every draw misses, the odd
// values are walked once from a random start, so the search visits at most
// every candidate and always ends.
func pickExponent(rng *rand.Rand, phi int64) (int64, bool) {
	if phi < 4 {
		return 0, false
	}
	odds := (phi - 2) / 2 // odd values in [3, phi)

	for range exponentDraws {
		e := 3 + 2*rng.Int64N(odds)
		if numtheory.GCD(e, phi) == 1 {
			return e, true
		}
	}

	start := rng.Int64N(odds)
	for i := range odds {
		e := 3 + 2*((start+i)%odds)
		if numtheory.GCD(e, phi) == 1 {
			return e, true
		}
	}
	return 0, false
}
