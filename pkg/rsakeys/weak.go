package rsakeys

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/patrickSeegmiller/cryptML/pkg/modmath"
)

// weakPrimeBand is the width of the interval above p from which a weak q
// is drawn. Factors this close make the modulus fall to Fermat's method in
// a handful of rounds.
const weakPrimeBand = 1_000_000_000

// maxWeakDAttempts bounds the draws of a small decryption exponent; a draw
// is rejected only when gcd(d, φ) != 1.
const maxWeakDAttempts = 100

// ErrModulusTooSmall is returned when the modulus is too small to admit a
// decryption exponent below the Wiener bound.
var ErrModulusTooSmall = errors.New("modulus too small for a weak decryption exponent")

// GenerateWeakKey builds an intentionally weakened RSA key for attack
// demonstrations. Flags on the profile combine, and each requested
// weakness is applied without the others overriding it:
//
//   - WeakPrimes: q is drawn from (p, p+10⁹), so Fermat factorization
//     recovers the pair almost immediately.
//   - WeakDecryptionKey: a prime d below N^(1/4)/4 is drawn and
//     e = d⁻¹ mod φ(N) derived from it, satisfying the bound the
//     continued-fraction attack needs. Uses the close pair when WeakPrimes
//     is also set.
//   - WeakModulus: both primes are replaced by uniform random integers in
//     [2, 2^bits) with no primality guarantee; any exponent weakness
//     already derived is kept on the published exponent.
//
// An empty profile is rejected; use GenerateKey for well-formed keys.
func (g *Generator) GenerateWeakKey(profile WeaknessProfile, bits int) (*KeyPair, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBitLength, bits)
	}
	if profile.Empty() {
		return nil, ErrEmptyProfile
	}

	low, high := primeRange(bits)

	// A genuine prime pair is needed whenever the primes survive into the
	// key or φ(N) feeds an exponent derivation.
	var p, q *big.Int
	var err error
	switch {
	case profile.WeakPrimes:
		p, q, err = g.closePrimePair(low, high)
	case profile.WeakDecryptionKey || !profile.WeakModulus:
		p, q, err = g.distinctPrimePair(low, high)
	}
	if err != nil {
		return nil, err
	}

	e := big.NewInt(DefaultPublicExponent)
	var d *big.Int
	if profile.WeakDecryptionKey {
		d, e, err = g.smallExponentPair(PrimePair{P: p, Q: q})
		if err != nil {
			return nil, err
		}
	} else if p != nil {
		// Best-effort decryption exponent for the fixed e. Weak keys keep
		// the drawn primes even when gcd(e, φ) != 1; the invariant is
		// relaxed here on purpose.
		if inv, ierr := modmath.ModularInverse(e, (PrimePair{P: p, Q: q}).Totient()); ierr == nil {
			d = inv
		}
	}

	if profile.WeakModulus {
		p, err = g.randomFactor(high)
		if err != nil {
			return nil, err
		}
		q, err = g.randomFactor(high)
		if err != nil {
			return nil, err
		}
		// The replaced factors carry no primality guarantee, so no
		// decryption exponent is valid against the published modulus.
		d = nil
	}

	primes := PrimePair{P: p, Q: q}
	return &KeyPair{
		Public:  PublicKey{E: e, N: primes.Modulus()},
		Private: PrivateKey{D: d},
		Primes:  primes,
	}, nil
}

// closePrimePair draws p from [low, high) and q from the narrow band just
// above it.
func (g *Generator) closePrimePair(low, high *big.Int) (p, q *big.Int, err error) {
	p, err = g.primes.PrimeInRange(low, high)
	if err != nil {
		return nil, nil, err
	}

	bandLow := new(big.Int).Add(p, big.NewInt(2))
	bandHigh := new(big.Int).Add(p, big.NewInt(weakPrimeBand))
	q, err = g.primes.PrimeInRange(bandLow, bandHigh)
	if err != nil {
		return nil, nil, fmt.Errorf("drawing close prime above %s: %w", p, err)
	}
	return p, q, nil
}

// smallExponentPair derives a decryption exponent below the Wiener bound
// and the matching public exponent: d prime in [2, ⌊N^(1/4)/4⌋),
// e = d⁻¹ mod φ(N).
func (g *Generator) smallExponentPair(primes PrimePair) (d, e *big.Int, err error) {
	n := primes.Modulus()
	phi := primes.Totient()

	fourthRoot, err := modmath.NthRoot(n, 4)
	if err != nil {
		return nil, nil, err
	}
	dMax := fourthRoot.Rsh(fourthRoot, 2)
	if dMax.Cmp(big.NewInt(3)) <= 0 {
		return nil, nil, fmt.Errorf("%w: N=%s", ErrModulusTooSmall, n)
	}

	for attempt := 0; attempt < maxWeakDAttempts; attempt++ {
		d, err = g.primes.PrimeInRange(big.NewInt(2), dMax)
		if err != nil {
			return nil, nil, err
		}
		e, err = modmath.ModularInverse(d, phi)
		if err == nil {
			return d, e, nil
		}
		if !errors.Is(err, modmath.ErrNoInverse) {
			return nil, nil, err
		}
	}
	return nil, nil, fmt.Errorf("%w: no invertible small exponent", ErrKeyAttemptsExceeded)
}

// randomFactor draws a uniform integer from [2, high) with no primality
// guarantee.
func (g *Generator) randomFactor(high *big.Int) (*big.Int, error) {
	width := new(big.Int).Sub(high, big.NewInt(2))
	n, err := rand.Int(g.rand, width)
	if err != nil {
		return nil, fmt.Errorf("drawing weak factor: %w", err)
	}
	return n.Add(n, big.NewInt(2)), nil
}
