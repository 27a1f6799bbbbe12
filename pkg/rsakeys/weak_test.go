package rsakeys

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickSeegmiller/cryptML/pkg/modmath"
)

func TestGenerateWeakKey_WeakPrimes(t *testing.T) {
	gen := seededGenerator(1)
	kp, err := gen.GenerateWeakKey(WeaknessProfile{WeakPrimes: true}, 64)
	require.NoError(t, err)

	p, q := kp.Primes.P, kp.Primes.Q
	require.True(t, q.Cmp(p) > 0, "q must lie above p")

	gap := new(big.Int).Sub(q, p)
	assert.True(t, gap.Cmp(big.NewInt(weakPrimeBand)) < 0, "gap %s exceeds the weak band", gap)

	low, _ := primeRange(64)
	assert.True(t, p.Cmp(low) >= 0, "p below the requested size")
	assert.Equal(t, int64(DefaultPublicExponent), kp.Public.E.Int64())
	assert.Zero(t, kp.Primes.Modulus().Cmp(kp.Public.N))
}

func TestGenerateWeakKey_WeakDecryptionKey(t *testing.T) {
	gen := seededGenerator(2)
	kp, err := gen.GenerateWeakKey(WeaknessProfile{WeakDecryptionKey: true}, 64)
	require.NoError(t, err)

	require.NotNil(t, kp.Private.D)

	// d stays below the Wiener bound N^(1/4)/4.
	fourth, err := modmath.NthRoot(kp.Public.N, 4)
	require.NoError(t, err)
	bound := fourth.Rsh(fourth, 2)
	assert.True(t, kp.Private.D.Cmp(bound) < 0, "d=%s is not small", kp.Private.D)

	// e really is d's inverse.
	phi := kp.Primes.Totient()
	ed := new(big.Int).Mul(kp.Public.E, kp.Private.D)
	assert.Zero(t, ed.Mod(ed, phi).Cmp(big.NewInt(1)))
}

func TestGenerateWeakKey_WeakModulus(t *testing.T) {
	gen := seededGenerator(3)
	kp, err := gen.GenerateWeakKey(WeaknessProfile{WeakModulus: true}, 32)
	require.NoError(t, err)

	_, high := primeRange(32)
	for _, f := range []*big.Int{kp.Primes.P, kp.Primes.Q} {
		assert.True(t, f.Cmp(big.NewInt(2)) >= 0 && f.Cmp(high) < 0, "factor %s out of [2, 2^32)", f)
	}
	assert.Nil(t, kp.Private.D, "random factors admit no decryption exponent")
	assert.Equal(t, int64(DefaultPublicExponent), kp.Public.E.Int64())
}

func TestGenerateWeakKey_CombinedFlags(t *testing.T) {
	// WeakPrimes and WeakDecryptionKey together: neither may override the
	// other, so the close pair must also carry the small exponent.
	gen := seededGenerator(4)
	kp, err := gen.GenerateWeakKey(WeaknessProfile{WeakPrimes: true, WeakDecryptionKey: true}, 64)
	require.NoError(t, err)

	gap := new(big.Int).Sub(kp.Primes.Q, kp.Primes.P)
	assert.True(t, gap.Sign() > 0 && gap.Cmp(big.NewInt(weakPrimeBand)) < 0, "close-prime weakness lost")

	fourth, err := modmath.NthRoot(kp.Public.N, 4)
	require.NoError(t, err)
	assert.True(t, kp.Private.D.Cmp(fourth.Rsh(fourth, 2)) < 0, "small-exponent weakness lost")
}

func TestGenerateWeakKey_ExponentWeaknessSurvivesWeakModulus(t *testing.T) {
	gen := seededGenerator(5)
	kp, err := gen.GenerateWeakKey(WeaknessProfile{WeakDecryptionKey: true, WeakModulus: true}, 32)
	require.NoError(t, err)

	// The published exponent comes from a small-d derivation even though
	// the modulus was replaced afterwards.
	assert.NotEqual(t, int64(DefaultPublicExponent), kp.Public.E.Int64())
	assert.Nil(t, kp.Private.D, "d cannot be valid against the replaced modulus")
}

func TestGenerateWeakKey_Validation(t *testing.T) {
	gen := seededGenerator(1)

	_, err := gen.GenerateWeakKey(WeaknessProfile{}, 64)
	assert.ErrorIs(t, err, ErrEmptyProfile)

	_, err = gen.GenerateWeakKey(WeaknessProfile{WeakPrimes: true}, 1)
	assert.ErrorIs(t, err, ErrBitLength)
}

func TestGenerateWeakKey_TooSmallForWeakD(t *testing.T) {
	// A 4-bit modulus has no room below N^(1/4)/4 for a prime exponent.
	gen := seededGenerator(1)
	_, err := gen.GenerateWeakKey(WeaknessProfile{WeakDecryptionKey: true}, 4)
	assert.ErrorIs(t, err, ErrModulusTooSmall)
}
