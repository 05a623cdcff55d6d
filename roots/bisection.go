package roots

import "math"

// Bisection finds a root of f inside [left, right] by repeated interval
// halving.
//
// Preconditions:
//   - f(left) and f(right) must have strictly opposite signs. A positive
//     sign product fails immediately with ErrBracket, before any iteration.
//     A bound whose function value is exactly zero passes the test (the
//     product is zero, not positive) and converges within the first steps.
//
// Each iteration takes the midpoint p of the current bracket, then replaces
// the bound whose function value shares the sign of f(p), so the bracket
// invariant holds at every step. Convergence is declared when |f(p)| drops
// below the tolerance: a function-value criterion, unlike the open methods,
// which compare consecutive iterates.
//
// Errors: ErrFuncNil, ErrBracket, ErrNoConvergence, ErrOptionViolation.
func Bisection(left, right float64, f Func, opts ...Option) (float64, error) {
	if f == nil {
		return 0, ErrFuncNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	a, b := left, right
	fa, fb := f(a), f(b)
	if fa*fb > 0 {
		return 0, ErrBracket
	}

	for i := 1; i <= o.MaxIterations; i++ {
		p := a + (b-a)/2
		fp := f(p)

		o.OnIterate(Record{K: i, P0: a, P1: b, Q0: fa, Q1: fb, X: p, FX: fp})

		if math.Abs(fp) < o.Tolerance {
			return p, nil
		}

		// Keep the sub-interval whose endpoints still straddle the root.
		if fa*fp > 0 {
			a, fa = p, fp
		} else {
			b, fb = p, fp
		}
	}

	return 0, noConvergence(o.MaxIterations)
}
