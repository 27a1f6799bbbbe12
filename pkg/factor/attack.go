package factor

import (
	"context"

	"github.com/patrickSeegmiller/cryptML/pkg/rsakeys"
)

// Attack is a factorization strategy run against an RSA public key from
// the attacker's point of view: only the published (e, N) is available.
// Implement it to plug a custom strategy into the CLI's auto mode.
type Attack interface {
	// Name returns the method name used in diagnostics.
	Name() string

	// Run attempts to factor the key's modulus. The context can be used
	// for cancellation.
	Run(ctx context.Context, key rsakeys.PublicKey) (*Result, error)
}

// FermatAttack wraps Fermat's method. A zero MaxRounds falls back to
// DefaultFermatRounds so the wrapper always terminates on its own.
type FermatAttack struct {
	MaxRounds uint64
}

func (a *FermatAttack) Name() string { return MethodFermat }

func (a *FermatAttack) Run(ctx context.Context, key rsakeys.PublicKey) (*Result, error) {
	rounds := a.MaxRounds
	if rounds == 0 {
		rounds = DefaultFermatRounds
	}
	return FermatBounded(ctx, key.N, rounds)
}

// PMinusOneAttack wraps Pollard's p-1 method.
type PMinusOneAttack struct {
	Bound uint64 // 0 = DefaultPMinusOneBound
}

func (a *PMinusOneAttack) Name() string { return MethodPollardPMinusOne }

func (a *PMinusOneAttack) Run(ctx context.Context, key rsakeys.PublicKey) (*Result, error) {
	return PollardPMinusOneBounded(ctx, key.N, a.Bound)
}

// RhoAttack wraps Pollard's rho method.
type RhoAttack struct {
	Bound uint64 // 0 = DefaultRhoBound
}

func (a *RhoAttack) Name() string { return MethodPollardRho }

func (a *RhoAttack) Run(ctx context.Context, key rsakeys.PublicKey) (*Result, error) {
	return PollardRhoBounded(ctx, key.N, a.Bound)
}

// WienerAttack wraps the continued-fraction attack. It is the only
// strategy consuming the public exponent as well as the modulus.
type WienerAttack struct{}

func (a *WienerAttack) Name() string { return MethodWiener }

func (a *WienerAttack) Run(ctx context.Context, key rsakeys.PublicKey) (*Result, error) {
	return Wiener(ctx, key.E, key.N)
}

// All returns the default attack set in the order the CLI's auto mode
// tries them: Wiener first (a handful of convergents), then the bounded
// searches.
func All() []Attack {
	return []Attack{
		&WienerAttack{},
		&FermatAttack{},
		&RhoAttack{},
		&PMinusOneAttack{},
	}
}
