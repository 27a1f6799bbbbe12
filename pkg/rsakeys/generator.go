package rsakeys

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/patrickSeegmiller/cryptML/pkg/modmath"
)

// DefaultPublicExponent is the standard RSA public exponent.
const DefaultPublicExponent = 65537

// maxKeyAttempts bounds how many prime pairs GenerateKey tries before
// giving up. A pair is rejected only on a prime collision or when φ(N)
// shares a factor with e, both of which are rare, so hitting this limit
// indicates a broken PrimeSource.
const maxKeyAttempts = 100

// Sentinel errors for errors.Is() checks.
var (
	// ErrBitLength is returned for bit lengths below 2.
	ErrBitLength = errors.New("bit length must be at least 2")

	// ErrPublicExponent is returned for a non-positive public exponent.
	ErrPublicExponent = errors.New("public exponent must be positive")

	// ErrEmptyProfile is returned by GenerateWeakKey when no weakness flag
	// is set; use GenerateKey for a well-formed key.
	ErrEmptyProfile = errors.New("weakness profile selects no weakness")

	// ErrKeyAttemptsExceeded is returned when no usable prime pair was
	// found within the attempt budget.
	ErrKeyAttemptsExceeded = errors.New("exceeded key generation attempts")
)

// Generator produces RSA key material. Both the primality oracle and the
// random source are injectable so key generation is reproducible under a
// fixed seed.
type Generator struct {
	primes PrimeSource
	rand   io.Reader
}

// NewGenerator creates a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{
		primes: NewRandomPrimeSource(rand.Reader),
		rand:   rand.Reader,
	}
}

// WithRand sets the random source for weak-modulus sampling and rebuilds
// the default prime source on top of it. Apply before WithPrimeSource.
func (g *Generator) WithRand(r io.Reader) *Generator {
	g.rand = r
	g.primes = NewRandomPrimeSource(r)
	return g
}

// WithPrimeSource sets a custom primality oracle.
func (g *Generator) WithPrimeSource(ps PrimeSource) *Generator {
	g.primes = ps
	return g
}

// GenerateKey builds a well-formed RSA key pair: two distinct primes drawn
// from [2^(bits-1), 2^bits), resampled on collision or when gcd(e, φ) != 1,
// so the returned pair always carries a valid decryption exponent.
// A nil public exponent defaults to 65537.
func (g *Generator) GenerateKey(bits int, e *big.Int) (*KeyPair, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBitLength, bits)
	}
	if e == nil {
		e = big.NewInt(DefaultPublicExponent)
	}
	if e.Sign() < 1 {
		return nil, fmt.Errorf("%w: got %s", ErrPublicExponent, e)
	}

	low, high := primeRange(bits)
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		p, q, err := g.distinctPrimePair(low, high)
		if err != nil {
			return nil, err
		}

		primes := PrimePair{P: p, Q: q}
		d, err := modmath.ModularInverse(e, primes.Totient())
		if err != nil {
			if errors.Is(err, modmath.ErrNoInverse) {
				continue // φ(N) shares a factor with e; draw a fresh pair
			}
			return nil, err
		}

		return &KeyPair{
			Public:  PublicKey{E: new(big.Int).Set(e), N: primes.Modulus()},
			Private: PrivateKey{D: d},
			Primes:  primes,
		}, nil
	}
	return nil, fmt.Errorf("%w for e=%s", ErrKeyAttemptsExceeded, e)
}

// primeRange returns [2^(bits-1), 2^bits).
func primeRange(bits int) (low, high *big.Int) {
	low = new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	high = new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return low, high
}

// distinctPrimePair draws two distinct primes from [low, high).
func (g *Generator) distinctPrimePair(low, high *big.Int) (p, q *big.Int, err error) {
	p, err = g.primes.PrimeInRange(low, high)
	if err != nil {
		return nil, nil, err
	}
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		q, err = g.primes.PrimeInRange(low, high)
		if err != nil {
			return nil, nil, err
		}
		if q.Cmp(p) != 0 {
			return p, q, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: prime collision in [%s, %s)", ErrKeyAttemptsExceeded, low, high)
}
