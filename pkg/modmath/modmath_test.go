package modmath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"coprime", 17, 5, 1},
		{"common factor", 48, 36, 12},
		{"zero left", 0, 7, 7},
		{"zero right", 7, 0, 7},
		{"negative operand", -48, 36, 12},
		{"equal", 13, 13, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GCD(big.NewInt(tt.a), big.NewInt(tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestGCD_BothZero(t *testing.T) {
	_, err := GCD(big.NewInt(0), big.NewInt(0))
	assert.ErrorIs(t, err, ErrGCDUndefined)
}

func TestModularInverse(t *testing.T) {
	inv, err := ModularInverse(big.NewInt(3), big.NewInt(11))
	require.NoError(t, err)
	assert.Equal(t, int64(4), inv.Int64()) // 3*4 = 12 = 1 mod 11

	// e = 17, phi = 3120 is the textbook RSA example: d = 2753.
	inv, err = ModularInverse(big.NewInt(17), big.NewInt(3120))
	require.NoError(t, err)
	assert.Equal(t, int64(2753), inv.Int64())
}

func TestModularInverse_NoInverse(t *testing.T) {
	_, err := ModularInverse(big.NewInt(6), big.NewInt(9))
	assert.ErrorIs(t, err, ErrNoInverse)
}

func TestModularInverse_BadModulus(t *testing.T) {
	_, err := ModularInverse(big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, ErrBadModulus)
}

func TestModPow(t *testing.T) {
	tests := []struct {
		name              string
		base, exp, m, want int64
	}{
		{"small", 2, 10, 1000, 24},
		{"carmichael", 7, 560, 561, 1}, // 561 = 3*11*17 is Carmichael, so a^560 = 1 for gcd(a, 561) = 1
		{"exp zero", 5, 0, 13, 1},
		{"base zero", 0, 5, 13, 0},
		{"mod one", 9, 9, 1, 0},
		{"negative base", -2, 3, 5, 2}, // (-8) mod 5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModPow(big.NewInt(tt.base), big.NewInt(tt.exp), big.NewInt(tt.m))
			require.NoError(t, err)

			// Compare by value: two equal big.Ints can differ in internal
			// representation (a zero from Mod has an empty abs slice, a
			// zero from Exp a nil one), which trips deep equality.
			want := new(big.Int).Exp(big.NewInt(tt.base), big.NewInt(tt.exp), big.NewInt(tt.m))
			require.Zero(t, want.Cmp(got), "disagrees with big.Exp")
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestModPow_Validation(t *testing.T) {
	_, err := ModPow(big.NewInt(2), big.NewInt(-1), big.NewInt(5))
	assert.ErrorIs(t, err, ErrNegativeExponent)

	_, err = ModPow(big.NewInt(2), big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, ErrBadModulus)
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n, want int64
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{8051, 89},
		{9409, 97},
	}

	for _, tt := range tests {
		got, err := Isqrt(big.NewInt(tt.n))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Int64(), "isqrt(%d)", tt.n)
	}

	_, err := Isqrt(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrNegativeInput)
}

func TestIsPerfectSquare(t *testing.T) {
	assert.True(t, IsPerfectSquare(big.NewInt(0)))
	assert.True(t, IsPerfectSquare(big.NewInt(1)))
	assert.True(t, IsPerfectSquare(big.NewInt(9409)))
	assert.False(t, IsPerfectSquare(big.NewInt(8051)))
	assert.False(t, IsPerfectSquare(big.NewInt(-4)))

	// A square too large for int64.
	n, ok := new(big.Int).SetString("12345678901234567890", 10)
	require.True(t, ok)
	sq := new(big.Int).Mul(n, n)
	assert.True(t, IsPerfectSquare(sq))
	assert.False(t, IsPerfectSquare(new(big.Int).Add(sq, big.NewInt(1))))
}

func TestNthRoot(t *testing.T) {
	tests := []struct {
		n    int64
		k    int
		want int64
	}{
		{27, 3, 3},
		{26, 3, 2},
		{28, 3, 3},
		{81, 4, 3},
		{80, 4, 2},
		{1, 7, 1},
		{0, 5, 0},
		{1000000, 2, 1000},
		{123456, 1, 123456},
	}

	for _, tt := range tests {
		got, err := NthRoot(big.NewInt(tt.n), tt.k)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Int64(), "nthroot(%d, %d)", tt.n, tt.k)
	}
}

func TestNthRoot_Validation(t *testing.T) {
	_, err := NthRoot(big.NewInt(10), 0)
	assert.ErrorIs(t, err, ErrBadRootDegree)

	_, err = NthRoot(big.NewInt(-10), 3)
	assert.ErrorIs(t, err, ErrNegativeInput)
}

func TestAbs(t *testing.T) {
	n := big.NewInt(-42)
	got := Abs(n)
	assert.Equal(t, int64(42), got.Int64())
	assert.Equal(t, int64(-42), n.Int64(), "argument must not be mutated")
}
