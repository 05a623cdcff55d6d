package roots

import "math"

// Secant finds a root of f starting from the two iterates p0 and p1, with
// no sign constraint between them. Each step intersects the secant line
// through the two trailing iterates with the x-axis and shifts the window.
//
// Convergence is declared when |p - p0| < tolerance, measured against the
// older of the two retained iterates; kept so for compatibility with the
// classic formulation of the stop rule.
//
// The secant step divides by q1 - q0. When two consecutive function values
// coincide exactly, the division is not guarded: the step yields ±Inf or
// NaN, every later iterate stays non-finite, and the solve ends in
// ErrNoConvergence once the budget runs out.
//
// Errors: ErrFuncNil, ErrNoConvergence, ErrOptionViolation.
func Secant(p0, p1 float64, f Func, opts ...Option) (float64, error) {
	if f == nil {
		return 0, ErrFuncNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	q0, q1 := f(p0), f(p1)

	for i := 2; i <= o.MaxIterations; i++ {
		p := p1 - q1*(p1-p0)/(q1-q0)

		o.OnIterate(Record{K: i, P0: p0, P1: p1, Q0: q0, Q1: q1, X: p})

		if math.Abs(p-p0) < o.Tolerance {
			return p, nil
		}

		p0, q0 = p1, q1
		p1, q1 = p, f(p)
	}

	return 0, noConvergence(o.MaxIterations)
}
