// Package modmath provides the modular-arithmetic primitives shared by the
// factorization engines and the RSA key generator: gcd, modular inverse,
// fast modular exponentiation, integer roots, and perfect-square testing.
//
// All functions are pure and operate on *math/big.Int without mutating
// their arguments. Invalid input (gcd(0,0), negative exponents or radicands,
// non-positive moduli) is rejected with a typed error rather than a panic,
// so callers can validate untrusted key material cheaply.
package modmath
