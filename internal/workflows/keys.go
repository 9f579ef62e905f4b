package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/rsatrace/internal/keys"
)

// KeysOptions configures the keys workflow.
type KeysOptions struct {
	Keys keys.Options
}

// KeysResult contains both parties' keypairs.
type KeysResult struct {
	Mode  keys.Mode    `json:"mode"`
	Alice keys.KeyPair `json:"alice"`
	Bob   keys.KeyPair `json:"bob"`
	Seed  uint64       `json:"seed,omitempty"` // seed actually used in random mode
}

// Keys generates Alice's and Bob's keypairs.
//
// Returns ErrUnknownKeyMode for an unsupported mode, and ErrInvalidPrimeRange,
// ErrEmptyPrimeRange, ErrModulusTooSmall or ErrNoCoprimeExponent when the
// random-mode prime range cannot produce keys.
func Keys(ctx context.Context, opts KeysOptions) (*KeysResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o := opts.Keys.WithDefaults().WithSeed()
	alice, bob, err := keys.GeneratePair(o)
	if err != nil {
		return nil, fmt.Errorf("generating keys: %w", err)
	}

	return &KeysResult{Mode: o.Mode, Alice: alice, Bob: bob, Seed: o.Seed}, nil
}
