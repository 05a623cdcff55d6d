package roots

import "math"

// FalsePosition (regula falsi) finds a root of f between p0 and p1 by
// intersecting the secant line through the two retained points with the
// x-axis, keeping the pair bracketing at all times.
//
// Preconditions:
//   - f(p0) and f(p1) must have strictly opposite signs; a positive sign
//     product fails immediately with ErrBracket.
//
// Convergence is declared when |p - p1| < tolerance, the distance from the
// most recently replaced point. When the new point's function value has the
// opposite sign to the retained f(p1), the older endpoint is discarded in
// favor of the old p1; otherwise that endpoint is kept, which is what lets
// the method stall one-sidedly on convex functions while never losing the
// bracket.
//
// Errors: ErrFuncNil, ErrBracket, ErrNoConvergence, ErrOptionViolation.
func FalsePosition(p0, p1 float64, f Func, opts ...Option) (float64, error) {
	if f == nil {
		return 0, ErrFuncNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	q0, q1 := f(p0), f(p1)
	if q0*q1 > 0 {
		return 0, ErrBracket
	}

	for i := 2; i <= o.MaxIterations; i++ {
		p := p1 - q1*(p1-p0)/(q1-q0)

		o.OnIterate(Record{K: i, P0: p0, P1: p1, Q0: q0, Q1: q1, X: p})

		if math.Abs(p-p1) < o.Tolerance {
			return p, nil
		}

		q := f(p)
		if q*q1 < 0 {
			p0, q0 = p1, q1
		}
		p1, q1 = p, q
	}

	return 0, noConvergence(o.MaxIterations)
}
