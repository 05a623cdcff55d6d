package roots

import (
	"fmt"
	"math"
)

// aitkenEps bounds the Δ² denominator away from zero; below it the
// extrapolation is numerically meaningless.
const aitkenEps = 1e-12

// Steffensen finds a fixed point of g, a value p with g(p) = p, by
// accelerating the plain substitution sequence with Aitken's Δ² process:
// from p0 it stages p1 = g(p0) and p2 = g(p1), then extrapolates
//
//	p = p0 - (p1-p0)² / (p2 - 2·p1 + p0)
//
// which typically reaches the tolerance in far fewer iterations than
// FixedPoint on the same contraction map, without needing a derivative.
//
// Convergence is declared when |p - p0| < tolerance. When the Δ²
// denominator falls below 1e-12 in magnitude the staged sequence is
// near-linear and the extrapolation ill-conditioned, so the solve fails
// immediately with ErrAitkenDegenerate, carrying the iteration index.
//
// Errors: ErrFuncNil, ErrAitkenDegenerate, ErrNoConvergence,
// ErrOptionViolation.
func Steffensen(p0 float64, g Func, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrFuncNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	for i := 1; i <= o.MaxIterations; i++ {
		p1 := g(p0)
		p2 := g(p1)

		den := p2 - 2*p1 + p0
		if math.Abs(den) < aitkenEps {
			return 0, fmt.Errorf("%w at iteration %d", ErrAitkenDegenerate, i)
		}

		p := p0 - (p1-p0)*(p1-p0)/den

		o.OnIterate(Record{K: i, P0: p0, P1: p1, Q0: p1, Q1: p2, X: p})

		if math.Abs(p-p0) < o.Tolerance {
			return p, nil
		}
		p0 = p
	}

	return 0, noConvergence(o.MaxIterations)
}
