// Package rsakeys generates RSA key material, including deliberately
// weakened variants for demonstrating the classical factorization attacks
// in pkg/factor.
//
// # Quick Start
//
//	import "github.com/patrickSeegmiller/cryptML/pkg/rsakeys"
//
//	gen := rsakeys.NewGenerator()
//
//	// A well-formed 1024-bit-prime key pair
//	kp, err := gen.GenerateKey(1024, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(kp.Public)
//
//	// A key whose primes are close enough for Fermat's method
//	weak, err := gen.GenerateWeakKey(rsakeys.WeaknessProfile{WeakPrimes: true}, 512)
//
// # Reproducibility
//
// Both the primality oracle and the random source are injectable:
//
//	gen := rsakeys.NewGenerator().WithRand(deterministicReader)
//
// The primality test itself is consumed, not implemented: the default
// PrimeSource screens random candidates with math/big's ProbablyPrime.
package rsakeys
