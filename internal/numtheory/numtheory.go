// Package numtheory implements the integer arithmetic behind textbook RSA:
// Bézout coefficients, modular inverses, trial-division primality, prime
// sampling and square-and-multiply exponentiation.
//
// All values are int64. The demo works with small primes, and ModExp keeps
// 128-bit intermediates, so no product overflows.
package numtheory

import (
	"fmt"
	"math/bits"
	"math/rand/v2"

	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"
)

// ExtendedGCD returns gcd(a, b) together with x and y such that a*x + b*y = gcd.
func ExtendedGCD(a, b int64) (gcd, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	gcd, x1, y1 := ExtendedGCD(b, a%b)
	return gcd, y1, x1 - (a/b)*y1
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int64) int64 {
	g, _, _ := ExtendedGCD(a, b)
	if g < 0 {
		return -g
	}
	return g
}

// ModInverse returns d in [0, phi) with (e*d) mod phi == 1.
// The boolean is false when gcd(e, phi) != 1 and no inverse exists.
func ModInverse(e, phi int64) (int64, bool) {
	if phi <= 0 {
		return 0, false
	}
	g, x, _ := ExtendedGCD(e, phi)
	if g != 1 {
		return 0, false
	}
	x %= phi
	if x < 0 {
		x += phi
	}
	return x, true
}

// IsPrime reports whether n is prime using trial division up to floor(sqrt(n)).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// PrimesInRange returns every prime p with low <= p < high, in ascending order.
func PrimesInRange(low, high int64) []int64 {
	var primes []int64
	for n := max(low, 2); n < high; n++ {
		if IsPrime(n) {
			primes = append(primes, n)
		}
	}
	return primes
}

// SamplePrime picks a prime uniformly from [low, high).
func SamplePrime(rng *rand.Rand, low, high int64) (int64, error) {
	if low >= high {
		return 0, fmt.Errorf("[%d, %d): %w", low, high, kerrors.ErrInvalidPrimeRange)
	}
	primes := PrimesInRange(low, high)
	if len(primes) == 0 {
		return 0, fmt.Errorf("[%d, %d): %w", low, high, kerrors.ErrEmptyPrimeRange)
	}
	return primes[rng.IntN(len(primes))], nil
}

// ModExp returns base^exp mod m by square-and-multiply.
//
// Negative bases are reduced into [0, m). It panics if exp is negative or m
// is not positive.
func ModExp(base, exp, m int64) int64 {
	if m <= 0 {
		panic("numtheory: non-positive modulus")
	}
	if exp < 0 {
		panic("numtheory: negative exponent")
	}
	if m == 1 {
		return 0
	}

	mod := uint64(m)
	b := base % m
	if b < 0 {
		b += m
	}
	acc, sq := uint64(1), uint64(b)
	for e := uint64(exp); e > 0; e >>= 1 {
		if e&1 == 1 {
			acc = mulMod(acc, sq, mod)
		}
		sq = mulMod(sq, sq, mod)
	}
	return int64(acc)
}

// MulMod returns (a*b) mod m without overflowing. a and b must be
// non-negative and m positive.
func MulMod(a, b, m int64) int64 {
	if m <= 0 {
		panic("numtheory: MulMod with non-positive modulus")
	}
	return int64(mulMod(uint64(a), uint64(b), uint64(m)))
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}
