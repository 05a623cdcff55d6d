// Package rootfind is a small toolbox of classical iterative methods for
// locating a root (or fixed point) of a continuous scalar function of one
// real variable, given nothing but a black-box evaluator for it.
//
// 🚀 What is rootfind?
//
//	Six textbook solvers behind one calling convention:
//	  • Bisection & False Position — bracketing, sign-safe, slow but sure
//	  • Fixed-Point, Newton-Raphson, Secant — open methods, fast but fragile
//	  • Steffensen — fixed-point iteration accelerated by Aitken's Δ²
//
// ✨ Why choose rootfind?
//
//   - One contract — every solver takes a Func, a tolerance and an
//     iteration budget, and returns (root, error)
//   - Typed failures — precondition, singular-derivative, degenerate
//     acceleration and budget exhaustion are distinct sentinel errors
//   - Observable — an injectable per-iteration hook replays every working
//     variable without touching the return contract
//   - Pure Go core — the solvers depend on nothing outside the stdlib
//
// Everything is organized under four subpackages:
//
//	roots/           — the six solvers, the derivative estimator & trace types
//	expr/            — compile "x*x*x + 4*x*x - 10" into a roots.Func
//	internal/server/ — demonstration HTTP API streaming iteration traces
//	cmd/             — the rootfind-server binary
//
// Quick start:
//
//	f := func(x float64) float64 { return x*x*x + 4*x*x - 10 }
//	root, err := roots.Bisection(1, 2, f, roots.WithTolerance(1e-4))
//
// Dive into roots/doc.go for the method-by-method walkthrough.
//
//	go get github.com/katalvlaran/rootfind/roots
package rootfind
