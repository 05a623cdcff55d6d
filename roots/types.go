// Package roots provides tunable options, error definitions and the shared
// calling convention for the scalar root-finding solvers.
package roots

import (
	"errors"
	"fmt"
)

// Func is a scalar real-valued function of one real variable.
//
// A Func is an opaque capability: the solvers call it any number of times
// and assume it is pure, fast and side-effect free. Closures, method values
// and compiled expressions (see the expr package) all satisfy it.
type Func func(x float64) float64

// Default solve configuration, shared by every solver.
const (
	// DefaultTolerance is the convergence threshold used when no
	// WithTolerance option is supplied.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations is the iteration budget used when no
	// WithMaxIterations option is supplied.
	DefaultMaxIterations = 1_000_000
)

// Sentinel errors for solver execution.
var (
	// ErrFuncNil is returned if a nil Func is passed.
	ErrFuncNil = errors.New("roots: function is nil")

	// ErrBracket is returned by the bracketing solvers when the function
	// values at the two starting points do not have opposite signs.
	ErrBracket = errors.New("roots: function values at the bounds must have opposite signs")

	// ErrDerivativeZero is returned by NewtonRaphson when the estimated
	// derivative is exactly zero at the current iterate.
	ErrDerivativeZero = errors.New("roots: derivative estimate is zero at the current iterate")

	// ErrAitkenDegenerate is returned by Steffensen when the Δ² denominator
	// is too close to zero for the acceleration step to be trusted.
	ErrAitkenDegenerate = errors.New("roots: aitken denominator is degenerate")

	// ErrNoConvergence is returned when the iteration budget is exhausted
	// before the convergence criterion is met.
	ErrNoConvergence = errors.New("roots: no convergence within the iteration budget")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("roots: invalid option supplied")
)

// Option configures a solve call via functional arguments.
// If an Option is invalid (e.g. a non-positive tolerance), it is recorded
// internally and surfaced as ErrOptionViolation when the solver is invoked.
type Option func(*Options)

// Options holds the configuration for one solve call. It is immutable for
// the duration of the call; no state carries over between calls.
type Options struct {
	// Tolerance is the convergence threshold. Each solver documents its own
	// criterion (function-value magnitude for Bisection, iterate distance
	// for the rest).
	Tolerance float64

	// MaxIterations bounds the iteration loop; it is the sole stop
	// mechanism besides convergence.
	MaxIterations int

	// OnIterate is called once per iteration with the working variables of
	// that step. It is an observability side channel: returning is the only
	// thing it can do, and the solver ignores whatever it observes.
	OnIterate func(Record)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the standard configuration:
//   - Tolerance 1e-6
//   - MaxIterations 1,000,000
//   - no-op OnIterate hook
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		OnIterate:     func(Record) {},
		err:           nil,
	}
}

// WithTolerance sets the convergence threshold.
//
//	t > 0: use t
//	t <= 0: invalid option → ErrOptionViolation
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be positive, got %g", ErrOptionViolation, t)
			return
		}
		o.Tolerance = t
	}
}

// WithMaxIterations sets the iteration budget.
//
//	n > 0: use n
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithOnIterate registers a hook to run once per iteration.
// See Record for the field conventions of each solver.
func WithOnIterate(fn func(Record)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIterate = fn
		}
	}
}

// buildOptions applies opts over the defaults and surfaces any recorded
// option error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// noConvergence reports budget exhaustion, carrying the exhausted budget.
func noConvergence(maxIterations int) error {
	return fmt.Errorf("%w: %d iterations", ErrNoConvergence, maxIterations)
}
