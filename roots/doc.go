// Package roots implements six classical iterative solvers for f(x) = 0
// (or g(x) = x) over a black-box scalar function, sharing one calling
// convention, one options set and one per-iteration trace shape.
//
// What
//
//   - Bracketing solvers — Bisection, FalsePosition: take two points whose
//     function values straddle zero and keep that bracket at every step.
//     A bad bracket fails up-front with ErrBracket.
//   - Open solvers — FixedPoint, NewtonRaphson, Secant: take one or two
//     starting points with no sign constraint; fast near a root, but with
//     no safety net — divergence surfaces as ErrNoConvergence.
//   - Accelerated solver — Steffensen: Aitken's Δ² on top of fixed-point
//     substitution; derivative-free quadratic-ish convergence.
//   - Derivative: the central-difference estimator NewtonRaphson uses.
//
// Stopping criteria (per method, on purpose not uniform)
//
//	Bisection      |f(p)|     < tol   — function-value magnitude
//	FalsePosition  |p - p1|   < tol   — distance from the newest point
//	FixedPoint     |p - p0|   < tol
//	NewtonRaphson  |p - p0|   < tol
//	Secant         |p - p0|   < tol   — against the older retained point
//	Steffensen     |p - p0|   < tol
//
// Failure taxonomy
//
//   - ErrBracket           — bracketing precondition violated; no iteration runs.
//   - ErrDerivativeZero    — Newton's tangent is flat; immediate, structural.
//   - ErrAitkenDegenerate  — Δ² denominator under 1e-12; immediate, structural.
//   - ErrNoConvergence     — budget exhausted; the message carries the budget.
//   - ErrOptionViolation   — bad tolerance or iteration budget.
//   - ErrFuncNil           — nil function capability.
//
// Every failure aborts the solve outright; no partial result is returned
// and nothing is retried. Retrying from different starting points is the
// caller's decision.
//
// Observability
//
//	Every solver emits one Record per iteration through the WithOnIterate
//	hook (iteration index, retained iterate(s), function value(s)), so
//	tests and UIs can replay the run without parsing text. WriterSink
//	adapts the hook to a plain io.Writer iteration table.
//
// Concurrency
//
//	Solvers hold no shared state: each call owns its iterates exclusively,
//	so independent goroutines may solve concurrently with the same Func as
//	long as the Func itself is safe for concurrent calls.
//
// Usage
//
//	f := func(x float64) float64 { return x*x*x + 4*x*x - 10 }
//
//	root, err := roots.Bisection(1, 2, f,
//	    roots.WithTolerance(1e-4),
//	    roots.WithOnIterate(roots.WriterSink(os.Stdout)),
//	)
//	if err != nil {
//	    // handle ErrBracket, ErrNoConvergence, ErrOptionViolation
//	}
//	fmt.Println("root:", root)
//
// See example_test.go for each method on the same cubic.
package roots
