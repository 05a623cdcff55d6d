package roots

import "math"

// FixedPoint finds a fixed point of g, a value p with g(p) = p, by plain
// successive substitution: p ← g(p) until two consecutive iterates are
// within the tolerance of each other.
//
// The caller asserts (the solver cannot verify) that a fixed point of g
// corresponds to the desired root of the original equation, and that g is
// a contraction near it. When it is not, the iterates wander or blow up
// and the only symptom is ErrNoConvergence once the budget runs out.
//
// Errors: ErrFuncNil, ErrNoConvergence, ErrOptionViolation.
func FixedPoint(p0 float64, g Func, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrFuncNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	for i := 1; i <= o.MaxIterations; i++ {
		p := g(p0)

		o.OnIterate(Record{K: i, P0: p0, Q0: p, X: p})

		if math.Abs(p-p0) < o.Tolerance {
			return p, nil
		}
		p0 = p
	}

	return 0, noConvergence(o.MaxIterations)
}
