package rsakeys

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// primeCertainty is the number of Miller-Rabin rounds used to screen
// candidates. big.Int.ProbablyPrime additionally runs a Baillie-PSW test,
// for which no composite passing it is known.
const primeCertainty = 20

// maxPrimeDraws bounds the random draws PrimeInRange makes before giving
// up on a range. By the prime number theorem a range around 2^b contains a
// prime roughly every 0.7*b integers, so for any practical key size this
// budget is hit only when the range genuinely holds no reachable prime.
const maxPrimeDraws = 100000

// ErrNoPrimeFound is returned when a range yields no prime within the
// search budget.
var ErrNoPrimeFound = errors.New("no prime found in range")

// PrimeSource is the primality oracle consumed by the key generator:
// PrimeInRange returns a prime p with low <= p < high.
//
// The default implementation draws candidates from a random source and
// screens them with a probabilistic primality test; supply your own
// implementation to control prime selection entirely (e.g. fixed primes in
// tests).
type PrimeSource interface {
	PrimeInRange(low, high *big.Int) (*big.Int, error)
}

// NewRandomPrimeSource returns a PrimeSource drawing candidates from r.
// Pass nil to use crypto/rand.Reader. A deterministic reader makes the
// source reproducible.
func NewRandomPrimeSource(r io.Reader) PrimeSource {
	if r == nil {
		r = rand.Reader
	}
	return &randomPrimeSource{rand: r}
}

type randomPrimeSource struct {
	rand io.Reader
}

func (s *randomPrimeSource) PrimeInRange(low, high *big.Int) (*big.Int, error) {
	if low.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("lower bound %s is below 2", low)
	}
	if high.Cmp(low) <= 0 {
		return nil, fmt.Errorf("empty range [%s, %s)", low, high)
	}

	width := new(big.Int).Sub(high, low)
	for i := 0; i < maxPrimeDraws; i++ {
		n, err := rand.Int(s.rand, width)
		if err != nil {
			return nil, fmt.Errorf("drawing prime candidate: %w", err)
		}
		n.Add(n, low)

		if n.ProbablyPrime(primeCertainty) {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: [%s, %s) after %d draws", ErrNoPrimeFound, low, high, maxPrimeDraws)
}
