package rsakeys

import (
	"fmt"
	"math/big"
)

// PublicKey is the published half of an RSA key: the encryption exponent e
// and the modulus N = p*q.
type PublicKey struct {
	E *big.Int // public exponent
	N *big.Int // modulus
}

func (k PublicKey) String() string {
	return fmt.Sprintf("(e=%s, N=%s)", k.E, k.N)
}

// PrivateKey holds the decryption exponent d = e⁻¹ mod φ(N).
type PrivateKey struct {
	D *big.Int
}

// PrimePair is the hidden factorization of a modulus. The generator owns it
// until it is deliberately disclosed, e.g. as ground truth in tests.
type PrimePair struct {
	P *big.Int
	Q *big.Int
}

// Modulus returns p*q.
func (pp PrimePair) Modulus() *big.Int {
	return new(big.Int).Mul(pp.P, pp.Q)
}

// Totient returns Euler's totient (p-1)*(q-1). It is only meaningful when
// both factors are prime.
func (pp PrimePair) Totient() *big.Int {
	pm1 := new(big.Int).Sub(pp.P, big.NewInt(1))
	qm1 := new(big.Int).Sub(pp.Q, big.NewInt(1))
	return pm1.Mul(pm1, qm1)
}

// KeyPair bundles the public key with the secret material it was built
// from. All fields are immutable after generation.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey // D is nil when no decryption exponent exists (weak moduli)
	Primes  PrimePair
}

// WeaknessProfile selects which security assumptions GenerateWeakKey
// relaxes. Flags combine; each weakness is applied independently.
type WeaknessProfile struct {
	// WeakPrimes draws q from a narrow band just above p, leaving the
	// modulus open to Fermat factorization.
	WeakPrimes bool

	// WeakDecryptionKey picks a small decryption exponent and derives e
	// from it, leaving the key open to the continued-fraction attack.
	WeakDecryptionKey bool

	// WeakModulus replaces both primes with uniform random integers with
	// no primality guarantee.
	WeakModulus bool
}

// Empty reports whether no weakness was requested.
func (w WeaknessProfile) Empty() bool {
	return !w.WeakPrimes && !w.WeakDecryptionKey && !w.WeakModulus
}
