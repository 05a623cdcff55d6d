package roots

import "math"

// DerivativeStep is the central-difference step used by NewtonRaphson.
//
// The step is fixed, not scaled to the magnitude of x, which limits the
// precision of the estimate far from the unit scale. Kept as-is for
// compatibility; callers who need a different step can call Derivative
// directly.
const DerivativeStep = 1e-10

// Derivative estimates f'(x) by the central difference (f(x+h)-f(x-h))/2h.
func Derivative(f Func, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

// NewtonRaphson finds a root of f starting from p0, using the tangent-line
// update p ← p0 - f(p0)/f'(p0) with the derivative estimated numerically
// via Derivative and DerivativeStep.
//
// Convergence is declared when |p - p0| < tolerance. If the derivative
// estimate is exactly zero at some iterate the tangent has no x-intercept
// and the solve fails immediately with ErrDerivativeZero, a structural
// failure distinct from running out of budget.
//
// Errors: ErrFuncNil, ErrDerivativeZero, ErrNoConvergence,
// ErrOptionViolation.
func NewtonRaphson(p0 float64, f Func, opts ...Option) (float64, error) {
	if f == nil {
		return 0, ErrFuncNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	for i := 1; i <= o.MaxIterations; i++ {
		fp := f(p0)
		df := Derivative(f, p0, DerivativeStep)
		if df == 0 {
			return 0, ErrDerivativeZero
		}

		p := p0 - fp/df

		o.OnIterate(Record{K: i, P0: p0, Q0: fp, DF: df, X: p})

		if math.Abs(p-p0) < o.Tolerance {
			return p, nil
		}
		p0 = p
	}

	return 0, noConvergence(o.MaxIterations)
}
