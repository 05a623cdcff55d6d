package roots

import (
	"fmt"
	"io"
)

// Record is one solver iteration as seen by an OnIterate hook.
//
// The struct is the superset of every method's working variables; each
// solver fills the fields that exist for it and leaves the rest zero:
//
//	Bisection:     P0,P1 = bracket bounds, Q0,Q1 = f at the bounds,
//	               X = midpoint, FX = f(X)
//	FalsePosition: P0,P1 = retained points, Q0,Q1 = f at them,
//	               X = secant-line root
//	FixedPoint:    P0 = current iterate, Q0 = X = g(P0)
//	NewtonRaphson: P0 = current iterate, Q0 = f(P0), DF = derivative
//	               estimate, X = next iterate
//	Secant:        P0,P1 = trailing iterates, Q0,Q1 = f at them,
//	               X = secant-line root
//	Steffensen:    P0 = current iterate, P1 = Q0 = g(P0), Q1 = g(P1),
//	               X = accelerated iterate
//
// K is the 1-based iteration index; the two-point methods start counting
// at 2, since their two starting points consume the first evaluations.
type Record struct {
	K  int     `json:"k"`
	P0 float64 `json:"p0"`
	P1 float64 `json:"p1"`
	Q0 float64 `json:"q0"`
	Q1 float64 `json:"q1"`
	X  float64 `json:"x"`
	FX float64 `json:"fx"`
	DF float64 `json:"df"`
}

// WriterSink returns an OnIterate hook that renders each record as one
// fixed-width line on w, in the classic iteration-table layout:
// index, retained point(s), candidate, function value.
//
// Write errors are ignored: the trace is an observability side channel and
// must never disturb the solve.
func WriterSink(w io.Writer) func(Record) {
	return func(r Record) {
		_, _ = fmt.Fprintf(w, "%10d %15.6f %15.6f %15.6f %15.6f\n", r.K, r.P0, r.P1, r.X, r.FX)
	}
}
