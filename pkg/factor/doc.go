// Package factor recovers the prime factors of an RSA modulus with four
// classical methods: Fermat's difference of squares, Pollard's p-1,
// Pollard's rho, and the continued-fraction (Wiener) attack on small
// decryption exponents, plus factorization from a fully known key triple.
//
// # Quick Start
//
//	import "github.com/patrickSeegmiller/cryptML/pkg/factor"
//
//	res, err := factor.Fermat(ctx, n)
//	if err != nil {
//	    log.Fatal(err) // malformed input
//	}
//	switch res.Status {
//	case factor.StatusFound:
//	    fmt.Printf("n = %s * %s\n", res.P, res.Q)
//	case factor.StatusExhausted:
//	    fmt.Printf("%s gave up after %d iterations\n", res.Method, res.Iterations)
//	case factor.StatusCancelled:
//	    fmt.Println("search cancelled")
//	}
//
// # Outcome contract
//
// Malformed input (even n for Fermat, n <= 1, bad exponents) fails fast
// with a typed error and no work performed. Consuming a search budget
// without success is a normal outcome and comes back as StatusExhausted,
// never an error — many moduli are genuinely resistant to a given method.
// Cancelling the context mid-search yields StatusCancelled; partial or
// inconsistent factor pairs are never returned.
//
// Every search is synchronous, CPU-bound and keeps all state local to the
// call, so concurrent invocations are safe.
//
// # Attacking keys
//
// The Attack interface runs a method against an rsakeys.PublicKey from the
// attacker's view:
//
//	for _, atk := range factor.All() {
//	    res, err := atk.Run(ctx, key)
//	    if err == nil && res.Found() {
//	        fmt.Printf("%s broke the key: %s\n", atk.Name(), res)
//	        break
//	    }
//	}
package factor
