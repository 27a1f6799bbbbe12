// Package contfrac implements continued-fraction expansion of a rational
// number and lazy enumeration of its convergents. It exists to feed the
// Wiener-style attack on RSA keys with small decryption exponents, where
// the convergents of e/N expose the private exponent.
package contfrac

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrZeroDenominator is returned by Expand for a non-positive denominator.
	ErrZeroDenominator = errors.New("denominator must be positive")

	// ErrNegativeNumerator is returned by Expand for a negative numerator.
	ErrNegativeNumerator = errors.New("numerator must be non-negative")
)

// Convergent is one best rational approximation Num/Den drawn from a
// continued-fraction expansion.
type Convergent struct {
	Num *big.Int
	Den *big.Int
}

func (c Convergent) String() string {
	return fmt.Sprintf("%s/%s", c.Num, c.Den)
}

// Expand produces the continued-fraction term sequence of num/den via
// repeated Euclidean division. The sequence is finite with
// O(log min(num, den)) terms.
func Expand(num, den *big.Int) ([]*big.Int, error) {
	if den.Sign() <= 0 {
		return nil, ErrZeroDenominator
	}
	if num.Sign() < 0 {
		return nil, ErrNegativeNumerator
	}

	var terms []*big.Int
	x := new(big.Int).Set(num)
	y := new(big.Int).Set(den)

	for y.Sign() != 0 {
		q, r := new(big.Int), new(big.Int)
		q.DivMod(x, y, r)
		terms = append(terms, q)
		x, y = y, r
	}
	return terms, nil
}

// Sequence lazily produces the convergents of a term sequence using the
// standard recurrence
//
//	h_k = a_k*h_{k-1} + h_{k-2}
//	k_k = a_k*k_{k-1} + k_{k-2}
//
// seeded h_{-1}=1, h_{-2}=0, k_{-1}=0, k_{-2}=1. A Sequence can be rewound
// with Reset and replayed from the same terms.
type Sequence struct {
	terms []*big.Int
	idx   int

	hPrev, hPrev2 *big.Int
	kPrev, kPrev2 *big.Int
}

// Convergents creates a Sequence over the given continued-fraction terms.
// The terms slice is not copied; callers must not mutate it while iterating.
func Convergents(terms []*big.Int) *Sequence {
	s := &Sequence{terms: terms}
	s.Reset()
	return s
}

// Reset rewinds the sequence to its first convergent.
func (s *Sequence) Reset() {
	s.idx = 0
	s.hPrev, s.hPrev2 = big.NewInt(1), big.NewInt(0)
	s.kPrev, s.kPrev2 = big.NewInt(0), big.NewInt(1)
}

// Next returns the next convergent and true, or a zero Convergent and false
// once the term sequence is exhausted.
func (s *Sequence) Next() (Convergent, bool) {
	if s.idx >= len(s.terms) {
		return Convergent{}, false
	}
	a := s.terms[s.idx]
	s.idx++

	h := new(big.Int).Mul(a, s.hPrev)
	h.Add(h, s.hPrev2)
	k := new(big.Int).Mul(a, s.kPrev)
	k.Add(k, s.kPrev2)

	s.hPrev2, s.hPrev = s.hPrev, h
	s.kPrev2, s.kPrev = s.kPrev, k

	return Convergent{Num: new(big.Int).Set(h), Den: new(big.Int).Set(k)}, true
}

// Len returns the total number of convergents the sequence will produce.
func (s *Sequence) Len() int {
	return len(s.terms)
}
