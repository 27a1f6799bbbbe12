package factor

import (
	"errors"
	"fmt"
	"math/big"
)

// Method names reported in Result.Method for diagnostics.
const (
	MethodFermat           = "fermat"
	MethodPollardPMinusOne = "pollard-p-1"
	MethodPollardRho       = "pollard-rho"
	MethodWiener           = "wiener"
	MethodKnownKey         = "known-key"
)

// Sentinel errors for errors.Is() checks. These are input-validation
// faults; a search that merely fails to find a factor is not an error (see
// StatusExhausted).
var (
	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("argument must not be nil")

	// ErrInputTooSmall is returned for inputs that cannot be composite.
	ErrInputTooSmall = errors.New("input must be greater than 1")

	// ErrEvenInput is returned by Fermat's method, which requires odd input.
	ErrEvenInput = errors.New("input must be odd")

	// ErrBadExponent is returned for a non-positive public exponent.
	ErrBadExponent = errors.New("exponent must be positive")

	// ErrExponentPair is returned by FromKnownKey when d*e - 1 is not a
	// positive even number, which rules out e*d = 1 mod φ(N).
	ErrExponentPair = errors.New("d*e - 1 must be positive and even")
)

// Status classifies the outcome of one factorization attempt.
type Status int

const (
	// StatusFound means a proper factor pair was recovered.
	StatusFound Status = iota

	// StatusExhausted means the method consumed its iteration or
	// convergent budget without success. This is an expected outcome for
	// inputs resistant to the method, not a fault.
	StatusExhausted

	// StatusCancelled means the caller's context was cancelled mid-search.
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the terminal outcome of one engine invocation. P and Q are set
// only when Status is StatusFound and always satisfy P*Q = n; the other
// statuses carry the method name and the number of iterations performed so
// a caller can report how far the search got.
type Result struct {
	Status     Status
	P, Q       *big.Int
	Method     string
	Iterations uint64
}

// Found reports whether the search recovered a factor pair.
func (r *Result) Found() bool {
	return r.Status == StatusFound
}

func (r *Result) String() string {
	if r.Found() {
		return fmt.Sprintf("%s: %s * %s (after %d iterations)", r.Method, r.P, r.Q, r.Iterations)
	}
	return fmt.Sprintf("%s: %s after %d iterations", r.Method, r.Status, r.Iterations)
}

func foundResult(method string, p, q *big.Int, iterations uint64) *Result {
	return &Result{Status: StatusFound, P: p, Q: q, Method: method, Iterations: iterations}
}

func exhaustedResult(method string, iterations uint64) *Result {
	return &Result{Status: StatusExhausted, Method: method, Iterations: iterations}
}

func cancelledResult(method string, iterations uint64) *Result {
	return &Result{Status: StatusCancelled, Method: method, Iterations: iterations}
}
