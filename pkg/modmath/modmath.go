package modmath

import (
	"errors"
	"math/big"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrGCDUndefined is returned by GCD when both arguments are zero.
	ErrGCDUndefined = errors.New("gcd(0, 0) is undefined")

	// ErrNoInverse is returned when no modular inverse exists, i.e. gcd(a, m) != 1.
	ErrNoInverse = errors.New("no modular inverse exists")

	// ErrNegativeExponent is returned by ModPow for a negative exponent.
	ErrNegativeExponent = errors.New("exponent must be non-negative")

	// ErrBadModulus is returned when a modulus is not positive.
	ErrBadModulus = errors.New("modulus must be positive")

	// ErrNegativeInput is returned by the root functions for negative input.
	ErrNegativeInput = errors.New("input must be non-negative")

	// ErrBadRootDegree is returned by NthRoot when the degree is less than 1.
	ErrBadRootDegree = errors.New("root degree must be at least 1")
)

var one = big.NewInt(1)

// GCD computes the greatest common divisor of a and b with the Euclidean
// algorithm. The result is always non-negative. GCD(0, 0) is rejected.
func GCD(a, b *big.Int) (*big.Int, error) {
	if a.Sign() == 0 && b.Sign() == 0 {
		return nil, ErrGCDUndefined
	}

	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, new(big.Int).Mod(x, y)
	}
	return x, nil
}

// ModularInverse computes a⁻¹ mod m. It fails with ErrNoInverse when
// gcd(a, m) != 1, so the caller can distinguish "not invertible" from
// malformed input.
func ModularInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, ErrBadModulus
	}

	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, ErrNoInverse
	}
	return inv, nil
}

// ModPow computes base^exp mod m by repeated squaring.
// The exponent must be non-negative and the modulus positive.
func ModPow(base, exp, m *big.Int) (*big.Int, error) {
	if exp.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	if m.Sign() <= 0 {
		return nil, ErrBadModulus
	}
	if m.Cmp(one) == 0 {
		return big.NewInt(0), nil
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, m)
	e := new(big.Int).Set(exp)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
		e.Rsh(e, 1)
		b.Mul(b, b)
		b.Mod(b, m)
	}
	return result, nil
}

// Isqrt computes the integer square root of n: the largest k with k² <= n.
// Negative input is rejected.
func Isqrt(n *big.Int) (*big.Int, error) {
	if n.Sign() < 0 {
		return nil, ErrNegativeInput
	}
	return new(big.Int).Sqrt(n), nil
}

// IsPerfectSquare reports whether n is the square of an integer.
// Negative numbers are never perfect squares.
func IsPerfectSquare(n *big.Int) bool {
	if n.Sign() < 0 {
		return false
	}
	root := new(big.Int).Sqrt(n)
	root.Mul(root, root)
	return root.Cmp(n) == 0
}

// NthRoot computes the integer k-th root of n: the largest r with r^k <= n.
// math/big has no k-th root, so this binary-searches on the root's bit length.
func NthRoot(n *big.Int, k int) (*big.Int, error) {
	if k < 1 {
		return nil, ErrBadRootDegree
	}
	if n.Sign() < 0 {
		return nil, ErrNegativeInput
	}
	if k == 1 || n.Sign() == 0 || n.Cmp(one) == 0 {
		return new(big.Int).Set(n), nil
	}
	if k == 2 {
		return new(big.Int).Sqrt(n), nil
	}

	// The root has at most ceil(bitlen(n)/k) bits.
	kBig := big.NewInt(int64(k))
	lo := big.NewInt(1)
	hi := new(big.Int).Lsh(one, uint(n.BitLen()/k)+1)

	for lo.Cmp(hi) < 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Add(mid, one)
		mid.Rsh(mid, 1)

		if new(big.Int).Exp(mid, kBig, nil).Cmp(n) <= 0 {
			lo.Set(mid)
		} else {
			hi.Sub(mid, one)
		}
	}
	return lo, nil
}

// Abs returns |n| as a new value, leaving n untouched.
func Abs(n *big.Int) *big.Int {
	return new(big.Int).Abs(n)
}
