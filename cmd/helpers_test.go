package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"
)

func TestKeyGenerationFailure(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name     string
		err      error
		wantOK   bool
		wantHint string
	}{
		{"empty range", fmt.Errorf("generating: %w", kerrors.ErrEmptyPrimeRange), true, "Widen the range"},
		{"modulus too small", kerrors.ErrModulusTooSmall, true, "Widen the range"},
		{"no exponent", kerrors.ErrNoCoprimeExponent, true, "Widen the range"},
		{"invalid range", kerrors.ErrInvalidPrimeRange, true, "at most 65536"},
		{"unknown party", kerrors.ErrUnknownParty, false, ""},
		{"other", errors.New("disk full"), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := keyGenerationFailure(tt.err)
			if ok != tt.wantOK {
				t.Fatalf("keyGenerationFailure(%v) ok = %t, want %t", tt.err, ok, tt.wantOK)
			}
			if !ok {
				if msg != "" {
					t.Errorf("expected no message, got %q", msg)
				}
				return
			}
			if !strings.Contains(msg, "Could not generate keys") || !strings.Contains(msg, tt.wantHint) {
				t.Errorf("message %q missing %q", msg, tt.wantHint)
			}
		})
	}
}
