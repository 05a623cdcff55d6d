// Package expr compiles textual expressions in the variable x into
// solver-ready roots.Func values.
//
// The grammar is govaluate's arithmetic with a small math vocabulary bound
// in: sin, cos, tan, exp, log, sqrt, abs, pow. Decimal commas are accepted
// and normalized, so "x*x*x + 4*x*x - 10" and "0,5 * sqrt(10 - x*x*x)"
// both compile.
//
// A compiled Func is pure from the solver's point of view: evaluation
// faults (bad domain, non-numeric result) surface as NaN rather than an
// error, which keeps the capability contract and lets the solver's own
// failure taxonomy report the consequences.
package expr

import (
	"math"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/katalvlaran/rootfind/roots"
)

// mathFuncs is the function vocabulary available inside expressions.
var mathFuncs = map[string]govaluate.ExpressionFunction{
	"sin":  func(args ...interface{}) (interface{}, error) { return math.Sin(toFloat(args[0])), nil },
	"cos":  func(args ...interface{}) (interface{}, error) { return math.Cos(toFloat(args[0])), nil },
	"tan":  func(args ...interface{}) (interface{}, error) { return math.Tan(toFloat(args[0])), nil },
	"exp":  func(args ...interface{}) (interface{}, error) { return math.Exp(toFloat(args[0])), nil },
	"log":  func(args ...interface{}) (interface{}, error) { return math.Log(toFloat(args[0])), nil },
	"sqrt": func(args ...interface{}) (interface{}, error) { return math.Sqrt(toFloat(args[0])), nil },
	"abs":  func(args ...interface{}) (interface{}, error) { return math.Abs(toFloat(args[0])), nil },
	"pow": func(args ...interface{}) (interface{}, error) {
		return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
	},
}

// Compile parses src into a roots.Func of the single variable x.
// Syntax errors are reported at compile time; evaluation faults at solve
// time yield NaN.
//
// The returned Func is safe for concurrent calls: each evaluation builds
// its own parameter map.
func Compile(src string) (roots.Func, error) {
	// Normalize decimal commas before parsing.
	src = strings.ReplaceAll(src, ",", ".")

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(src, mathFuncs)
	if err != nil {
		return nil, err
	}

	return func(x float64) float64 {
		v, err := parsed.Evaluate(map[string]interface{}{"x": x})
		if err != nil {
			return math.NaN()
		}

		return toFloat(v)
	}, nil
}

// toFloat coerces govaluate results into float64, NaN when impossible.
func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}

		return f
	default:
		return math.NaN()
	}
}
