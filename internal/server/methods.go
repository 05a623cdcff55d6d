package server

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rootfind/roots"
)

// methodSpec binds a wire name to a solver invocation.
type methodSpec struct {
	// twoPoint methods consume both P0 and P1.
	twoPoint bool
	run      func(p RunParams, f roots.Func, opts ...roots.Option) (float64, error)
}

// methods is the dispatch table for RunParams.Method.
var methods = map[string]methodSpec{
	"bisection": {twoPoint: true, run: func(p RunParams, f roots.Func, opts ...roots.Option) (float64, error) {
		return roots.Bisection(p.P0, p.P1, f, opts...)
	}},
	"falseposition": {twoPoint: true, run: func(p RunParams, f roots.Func, opts ...roots.Option) (float64, error) {
		return roots.FalsePosition(p.P0, p.P1, f, opts...)
	}},
	"fixedpoint": {run: func(p RunParams, f roots.Func, opts ...roots.Option) (float64, error) {
		return roots.FixedPoint(p.P0, f, opts...)
	}},
	"newton": {run: func(p RunParams, f roots.Func, opts ...roots.Option) (float64, error) {
		return roots.NewtonRaphson(p.P0, f, opts...)
	}},
	"secant": {twoPoint: true, run: func(p RunParams, f roots.Func, opts ...roots.Option) (float64, error) {
		return roots.Secant(p.P0, p.P1, f, opts...)
	}},
	"steffensen": {run: func(p RunParams, f roots.Func, opts ...roots.Option) (float64, error) {
		return roots.Steffensen(p.P0, f, opts...)
	}},
}

// MethodNames lists the accepted method names, sorted.
func MethodNames() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// lookupMethod resolves a wire name or reports the accepted set.
func lookupMethod(name string) (methodSpec, error) {
	spec, ok := methods[name]
	if !ok {
		return methodSpec{}, fmt.Errorf("unknown method %q, expected one of %v", name, MethodNames())
	}

	return spec, nil
}
