package factor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/patrickSeegmiller/cryptML/pkg/modmath"
)

// DefaultFermatRounds is the round budget Fermat's method gets when run
// through its Attack wrapper. The direct functions accept any budget,
// including none: the search is unbounded for widely separated factors, so
// an unbudgeted run is terminated only by its context.
const DefaultFermatRounds = 1_000_000

// Fermat factors an odd n > 1 by Fermat's difference-of-squares method,
// bounded only by ctx. See FermatBounded.
func Fermat(ctx context.Context, n *big.Int) (*Result, error) {
	return FermatBounded(ctx, n, 0)
}

// FermatBounded searches for a with a² - n a perfect square, starting at
// a = ⌈√n⌉; then n = (a-b)(a+b) with b = √(a²-n). Factors close together
// are found in very few rounds, which is exactly the weakness of a
// close-prime modulus.
//
// maxRounds of 0 means no round cap; the context is then the only way to
// stop a search over a modulus with widely separated factors.
func FermatBounded(ctx context.Context, n *big.Int, maxRounds uint64) (*Result, error) {
	if n == nil {
		return nil, ErrNilArgument
	}
	if n.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInputTooSmall, n)
	}
	if n.Bit(0) == 0 {
		return nil, fmt.Errorf("%w: got %s", ErrEvenInput, n)
	}

	if modmath.IsPerfectSquare(n) {
		root := new(big.Int).Sqrt(n)
		return foundResult(MethodFermat, root, new(big.Int).Set(root), 0), nil
	}

	one := big.NewInt(1)
	a := new(big.Int).Sqrt(n)
	a.Add(a, one) // ceil, since n is not a perfect square

	b2 := new(big.Int).Mul(a, a)
	b2.Sub(b2, n)

	b := new(big.Int)
	square := new(big.Int)
	var rounds uint64

	for {
		select {
		case <-ctx.Done():
			return cancelledResult(MethodFermat, rounds), nil
		default:
		}
		rounds++

		b.Sqrt(b2)
		square.Mul(b, b)
		if square.Cmp(b2) == 0 {
			p := new(big.Int).Sub(a, b)
			q := new(big.Int).Add(a, b)
			return foundResult(MethodFermat, p, q, rounds), nil
		}

		if maxRounds > 0 && rounds >= maxRounds {
			return exhaustedResult(MethodFermat, rounds), nil
		}

		a.Add(a, one)
		b2.Mul(a, a)
		b2.Sub(b2, n)
	}
}
