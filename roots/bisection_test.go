package roots_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cubic is the shared workhorse f(x) = x³ + 4x² − 10, whose positive root
// is ≈ 1.365230013.
func cubic(x float64) float64 { return x*x*x + 4*x*x - 10 }

// TestBisection_ConvergesOnCubic verifies the [1,2] bracket converges near
// the known root and that the answer honors the function-value criterion.
func TestBisection_ConvergesOnCubic(t *testing.T) {
	root, err := roots.Bisection(1, 2, cubic, roots.WithTolerance(1e-4))
	require.NoError(t, err)

	assert.InDelta(t, 1.3652, root, 1e-3, "root should land near 1.3652")
	assert.Less(t, math.Abs(cubic(root)), 1e-4, "|f(root)| must be under the tolerance")
	assert.GreaterOrEqual(t, root, 1.0, "root must stay inside the bracket")
	assert.LessOrEqual(t, root, 2.0, "root must stay inside the bracket")
}

// TestBisection_DefaultTolerance checks the default 1e-6 configuration.
func TestBisection_DefaultTolerance(t *testing.T) {
	root, err := roots.Bisection(1, 2, cubic)
	require.NoError(t, err)
	assert.Less(t, math.Abs(cubic(root)), 1e-6)
}

// TestBisection_BracketViolation ensures a same-sign bracket fails with
// ErrBracket before a single iteration runs, for both sign combinations.
func TestBisection_BracketViolation(t *testing.T) {
	var iterations int
	count := roots.WithOnIterate(func(roots.Record) { iterations++ })

	// Positive at both ends on [0,1]
	_, err := roots.Bisection(0, 1, func(x float64) float64 { return x*x + 1 }, count)
	assert.ErrorIs(t, err, roots.ErrBracket, "both-positive bracket must error")

	// Negative at both ends
	_, err = roots.Bisection(0, 1, func(x float64) float64 { return -x*x - 1 }, count)
	assert.ErrorIs(t, err, roots.ErrBracket, "both-negative bracket must error")

	assert.Zero(t, iterations, "no iteration may run on a bad bracket")
}

// TestBisection_ZeroValuedBound confirms that a bound sitting exactly on a
// root passes the sign-product precondition (the product is zero, not
// positive) and the solve converges.
func TestBisection_ZeroValuedBound(t *testing.T) {
	root, err := roots.Bisection(0, 2, func(x float64) float64 { return x }, roots.WithTolerance(1e-6))
	require.NoError(t, err)
	assert.InDelta(t, 0, root, 1e-5)
}

// TestBisection_BudgetExhausted verifies ErrNoConvergence when the budget
// is too small for the requested tolerance.
func TestBisection_BudgetExhausted(t *testing.T) {
	_, err := roots.Bisection(1, 2, cubic,
		roots.WithTolerance(1e-12),
		roots.WithMaxIterations(3),
	)
	assert.ErrorIs(t, err, roots.ErrNoConvergence)
	assert.Contains(t, err.Error(), "3", "the exhausted budget must be reported")
}

// TestBisection_TraceConfinesMidpoint replays the trace and checks every
// midpoint lies inside its recorded bracket with a consecutive index.
func TestBisection_TraceConfinesMidpoint(t *testing.T) {
	var recs []roots.Record
	_, err := roots.Bisection(1, 2, cubic,
		roots.WithTolerance(1e-4),
		roots.WithOnIterate(func(r roots.Record) { recs = append(recs, r) }),
	)
	require.NoError(t, err)
	require.Len(t, recs, 9, "the 1e-4 bracket halving takes nine steps")

	for i, r := range recs {
		assert.Equal(t, i+1, r.K, "iteration indices must be consecutive from 1")
		assert.GreaterOrEqual(t, r.X, r.P0, "midpoint below left bound")
		assert.LessOrEqual(t, r.X, r.P1, "midpoint above right bound")
		assert.Equal(t, cubic(r.X), r.FX, "FX must be f at the midpoint")
		assert.True(t, r.Q0*r.Q1 <= 0, "bracket invariant must hold at every step")
	}
}

// TestBisection_Idempotent checks that two identical calls return identical
// results: no state survives a solve.
func TestBisection_Idempotent(t *testing.T) {
	first, err1 := roots.Bisection(1, 2, cubic, roots.WithTolerance(1e-4))
	second, err2 := roots.Bisection(1, 2, cubic, roots.WithTolerance(1e-4))
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

// TestBisection_NilFunc ensures a nil capability is rejected.
func TestBisection_NilFunc(t *testing.T) {
	_, err := roots.Bisection(1, 2, nil)
	assert.ErrorIs(t, err, roots.ErrFuncNil)
}
