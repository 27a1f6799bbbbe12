package factor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/patrickSeegmiller/cryptML/pkg/contfrac"
	"github.com/patrickSeegmiller/cryptML/pkg/modmath"
)

// Wiener mounts the continued-fraction attack on a public key (e, n) with
// a small decryption exponent. Each convergent k/d of e/n is treated as a
// guess for the ratio hidden in e*d = 1 + k*φ(n): it yields a candidate
// φ(n), hence a candidate p+q, and the monic quadratic
//
//	x² - (p+q)x + n = 0
//
// is solved over the integers. The first convergent whose roots multiply
// back to n discloses the factorization.
//
// The attack succeeds only when d is below roughly n^(1/4)/3 (Wiener's
// bound); otherwise the convergents are exhausted and the search reports
// StatusExhausted. That outcome is the expected answer for a sound key.
func Wiener(ctx context.Context, e, n *big.Int) (*Result, error) {
	if e == nil || n == nil {
		return nil, ErrNilArgument
	}
	if e.Sign() < 1 {
		return nil, fmt.Errorf("%w: got %s", ErrBadExponent, e)
	}
	if n.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInputTooSmall, n)
	}

	terms, err := contfrac.Expand(e, n)
	if err != nil {
		return nil, err
	}
	seq := contfrac.Convergents(terms)

	one := big.NewInt(1)
	var tried uint64
	for {
		select {
		case <-ctx.Done():
			return cancelledResult(MethodWiener, tried), nil
		default:
		}

		c, ok := seq.Next()
		if !ok {
			break
		}
		if c.Num.Sign() == 0 {
			continue
		}
		tried++

		// Candidate φ(n) = (e*d - 1)/k, so the quadratic's middle
		// coefficient is φ(n) - n - 1 = -(p+q).
		phi := new(big.Int).Mul(e, c.Den)
		phi.Sub(phi, one)
		phi.Quo(phi, c.Num)

		b := new(big.Int).Sub(phi, n)
		b.Sub(b, one)

		p, q, ok := monicQuadraticRoots(b, n)
		if !ok {
			continue
		}
		if new(big.Int).Mul(p, q).Cmp(n) == 0 {
			return foundResult(MethodWiener, p, q, tried), nil
		}
	}
	return exhaustedResult(MethodWiener, tried), nil
}

// monicQuadraticRoots solves x² + bx + c = 0 over the integers. Both roots
// must be positive integers: the discriminant has to be a nonnegative
// perfect square and -b ± √disc evenly divisible by 2.
func monicQuadraticRoots(b, c *big.Int) (*big.Int, *big.Int, bool) {
	disc := new(big.Int).Mul(b, b)
	disc.Sub(disc, new(big.Int).Lsh(c, 2))
	if disc.Sign() < 0 || !modmath.IsPerfectSquare(disc) {
		return nil, nil, false
	}
	s := new(big.Int).Sqrt(disc)

	two := big.NewInt(2)
	r1 := new(big.Int).Neg(b)
	r1.Add(r1, s)
	r2 := new(big.Int).Neg(b)
	r2.Sub(r2, s)

	if new(big.Int).Mod(r1, two).Sign() != 0 || new(big.Int).Mod(r2, two).Sign() != 0 {
		return nil, nil, false
	}
	r1.Quo(r1, two)
	r2.Quo(r2, two)

	if r1.Sign() <= 0 || r2.Sign() <= 0 {
		return nil, nil, false
	}
	return r1, r2, true
}
