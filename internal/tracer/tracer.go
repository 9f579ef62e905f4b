// Package tracer computes modular exponentiations together with the one-line
// trace the demo prints for each step.
package tracer

import (
	"fmt"

	"github.com/PolarWolf314/rsatrace/internal/numtheory"
)

// ModExpTrace returns base^exponent mod modulus and the trace
// "(BASE^EXPONENT) mod MODULUS = RESULT" built from the literal inputs.
func ModExpTrace(base, exponent, modulus int64) (int64, string) {
	result := numtheory.ModExp(base, exponent, modulus)
	return result, Format(base, exponent, modulus, result)
}

// Format renders a trace line for an already computed result.
func Format(base, exponent, modulus, result int64) string {
	return fmt.Sprintf("(%d^%d) mod %d = %d", base, exponent, modulus, result)
}
