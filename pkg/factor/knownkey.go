package factor

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/patrickSeegmiller/cryptML/pkg/modmath"
)

// DefaultWitnessAttempts is how many random witnesses FromKnownKey tries.
// Each witness exposes a factor with probability at least 1/2, so the
// default failure odds are below 2^-64.
const DefaultWitnessAttempts = 64

// FromKnownKey recovers the prime factors of n from a full key triple
// (d, e, n) with e*d = 1 mod φ(n), using the default witness budget. See
// FromKnownKeyBounded.
func FromKnownKey(ctx context.Context, d, e, n *big.Int, randSource io.Reader) (*Result, error) {
	return FromKnownKeyBounded(ctx, d, e, n, randSource, DefaultWitnessAttempts)
}

// FromKnownKeyBounded recovers the prime factors of n from a full key
// triple (d, e, n) with e*d = 1 mod φ(n), trying at most maxAttempts
// random witnesses (0 = DefaultWitnessAttempts).
//
// Since k = d*e - 1 is a multiple of φ(n), writing k = 2^t * r makes
// g^r a "near square root of 1" for any witness g: squaring it at most t
// times reaches 1, and whenever the walk passes through a square root of 1
// other than ±1, gcd(x-1, n) is a proper factor. Witnesses are drawn from
// randSource (crypto/rand.Reader when nil) so the search is reproducible
// under an injected deterministic reader.
func FromKnownKeyBounded(ctx context.Context, d, e, n *big.Int, randSource io.Reader, maxAttempts uint64) (*Result, error) {
	if d == nil || e == nil || n == nil {
		return nil, ErrNilArgument
	}
	if d.Sign() < 1 || e.Sign() < 1 {
		return nil, fmt.Errorf("%w: d=%s e=%s", ErrBadExponent, d, e)
	}
	if n.Cmp(big.NewInt(3)) <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInputTooSmall, n)
	}
	if randSource == nil {
		randSource = rand.Reader
	}
	if maxAttempts == 0 {
		maxAttempts = DefaultWitnessAttempts
	}

	one := big.NewInt(1)
	k := new(big.Int).Mul(d, e)
	k.Sub(k, one)
	if k.Sign() <= 0 || k.Bit(0) == 1 {
		// φ(n) is even for any n > 2, so a valid exponent pair always
		// leaves d*e - 1 even.
		return nil, fmt.Errorf("%w: d*e-1=%s", ErrExponentPair, k)
	}

	// k = 2^t * r with r odd.
	r := new(big.Int).Set(k)
	t := 0
	for r.Bit(0) == 0 {
		r.Rsh(r, 1)
		t++
	}

	nMinus1 := new(big.Int).Sub(n, one)
	width := new(big.Int).Sub(n, big.NewInt(3)) // witnesses in [2, n-2]

	for attempt := uint64(1); attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return cancelledResult(MethodKnownKey, attempt-1), nil
		default:
		}

		g, err := rand.Int(randSource, width)
		if err != nil {
			return nil, fmt.Errorf("drawing witness: %w", err)
		}
		g.Add(g, big.NewInt(2))

		// A witness sharing a factor with n gives it up directly.
		if shared, err := modmath.GCD(g, n); err == nil && shared.Cmp(one) > 0 && shared.Cmp(n) < 0 {
			return foundResult(MethodKnownKey, shared, new(big.Int).Quo(n, shared), attempt), nil
		}

		x, err := modmath.ModPow(g, r, n)
		if err != nil {
			return nil, err
		}
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		for i := 0; i < t; i++ {
			y := new(big.Int).Mul(x, x)
			y.Mod(y, n)

			if y.Cmp(one) == 0 {
				// x is a nontrivial square root of 1 mod n.
				p, err := modmath.GCD(new(big.Int).Sub(x, one), n)
				if err != nil {
					return nil, err
				}
				if p.Cmp(one) > 0 && p.Cmp(n) < 0 {
					return foundResult(MethodKnownKey, p, new(big.Int).Quo(n, p), attempt), nil
				}
				break
			}
			if y.Cmp(nMinus1) == 0 {
				break // walk hit -1; this witness reveals nothing
			}
			x = y
		}
	}
	return exhaustedResult(MethodKnownKey, maxAttempts), nil
}
