package factor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/patrickSeegmiller/cryptML/pkg/modmath"
)

// Default iteration ceilings for Pollard's methods. Both trade search
// depth for latency; raise them through the Bounded variants (or the
// Attack wrappers) when deeper searches are worth the time.
const (
	DefaultPMinusOneBound = 1_000_000
	DefaultRhoBound       = 1_000_000
)

// PollardPMinusOne runs Pollard's p-1 method with the default exponent
// ceiling. See PollardPMinusOneBounded.
func PollardPMinusOne(ctx context.Context, n *big.Int) (*Result, error) {
	return PollardPMinusOneBounded(ctx, n, DefaultPMinusOneBound)
}

// PollardPMinusOneBounded factors n when some prime factor p has p-1
// smooth relative to the bound: starting from a = 2 it raises a to each
// successive exponent i mod n, so a accumulates 2^(i!) and collapses to 1
// mod p once (p-1) divides i!. The gcd of a-1 and n then exposes p.
//
// Exhausting the bound is an expected outcome for non-smooth factors and
// is reported as StatusExhausted, not an error.
func PollardPMinusOneBounded(ctx context.Context, n *big.Int, bound uint64) (*Result, error) {
	if n == nil {
		return nil, ErrNilArgument
	}
	if n.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInputTooSmall, n)
	}
	if bound == 0 {
		bound = DefaultPMinusOneBound
	}

	one := big.NewInt(1)
	a := big.NewInt(2)
	exp := new(big.Int)
	var rounds uint64

	// Iterations counts exponentiation rounds performed, as in the other
	// methods; the exponent reached is rounds + 1.
	for i := uint64(2); i < bound; i++ {
		select {
		case <-ctx.Done():
			return cancelledResult(MethodPollardPMinusOne, rounds), nil
		default:
		}
		rounds++

		exp.SetUint64(i)
		next, err := modmath.ModPow(a, exp, n)
		if err != nil {
			return nil, err
		}
		a = next

		d, err := modmath.GCD(new(big.Int).Sub(a, one), n)
		if err != nil {
			return nil, err
		}
		if d.Cmp(one) > 0 && d.Cmp(n) < 0 {
			return foundResult(MethodPollardPMinusOne, d, new(big.Int).Quo(n, d), rounds), nil
		}
	}
	return exhaustedResult(MethodPollardPMinusOne, rounds), nil
}

// PollardRho runs Pollard's rho method with the default iteration ceiling.
// See PollardRhoBounded.
func PollardRho(ctx context.Context, n *big.Int) (*Result, error) {
	return PollardRhoBounded(ctx, n, DefaultRhoBound)
}

// PollardRhoBounded factors n by iterating the pseudorandom map
// t -> t² + 1 mod n from x = 1 and y = 2, advancing y at twice the speed
// (Floyd's cycle finding) and testing gcd(|y-x|, n) each round.
//
// The method is deterministic for fixed starting values. When the tortoise
// and hare collide without exposing a factor the sequence can yield nothing
// further, so the search ends early with StatusExhausted.
func PollardRhoBounded(ctx context.Context, n *big.Int, bound uint64) (*Result, error) {
	if n == nil {
		return nil, ErrNilArgument
	}
	if n.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInputTooSmall, n)
	}
	if bound == 0 {
		bound = DefaultRhoBound
	}

	one := big.NewInt(1)
	x := big.NewInt(1)
	y := big.NewInt(2)

	step := func(t *big.Int) {
		t.Mul(t, t)
		t.Add(t, one)
		t.Mod(t, n)
	}

	for i := uint64(1); i <= bound; i++ {
		select {
		case <-ctx.Done():
			return cancelledResult(MethodPollardRho, i - 1), nil
		default:
		}

		step(x)
		step(y)
		step(y)

		g, err := modmath.GCD(modmath.Abs(new(big.Int).Sub(y, x)), n)
		if err != nil {
			return nil, err
		}
		if g.Cmp(n) == 0 {
			// Cycle closed without a factor; further rounds repeat it.
			return exhaustedResult(MethodPollardRho, i), nil
		}
		if g.Cmp(one) > 0 {
			return foundResult(MethodPollardRho, g, new(big.Int).Quo(n, g), i), nil
		}
	}
	return exhaustedResult(MethodPollardRho, bound), nil
}
