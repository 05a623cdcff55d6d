// Package server exposes the demonstration HTTP API: compile an expression,
// run one of the root-finding methods on it, stream the per-iteration trace
// over SSE and export the iteration table as CSV.
package server

import (
	"sync"
	"time"

	"github.com/katalvlaran/rootfind/roots"
)

// RunParams are the solve parameters accepted by POST /solve.
type RunParams struct {
	// Method names one of the solvers; see MethodNames.
	Method string `json:"method"`
	// Func is the expression in x to solve, e.g. "x*x*x + 4*x*x - 10".
	Func string `json:"func"`
	// P0 is the starting point; for two-point methods the left one.
	P0 float64 `json:"p0"`
	// P1 is the second starting point; ignored by one-point methods.
	P1 float64 `json:"p1"`
	// Tol is the convergence tolerance; defaulted when non-positive.
	Tol float64 `json:"tol"`
	// MaxIter is the iteration budget; defaulted and clamped server-side
	// so a run always terminates quickly.
	MaxIter int `json:"maxIter"`
}

// RunState is the retained record of one solve run.
type RunState struct {
	ID        string
	Params    RunParams
	CreatedAt time.Time

	mu       sync.Mutex
	records  []roots.Record
	root     float64
	errMsg   string
	done     bool
	finished chan struct{}
}

func newRunState(id string, p RunParams) *RunState {
	return &RunState{
		ID:        id,
		Params:    p,
		CreatedAt: time.Now(),
		finished:  make(chan struct{}),
	}
}

func (rs *RunState) append(r roots.Record) {
	rs.mu.Lock()
	rs.records = append(rs.records, r)
	rs.mu.Unlock()
}

func (rs *RunState) finish(root float64, err error) {
	rs.mu.Lock()
	rs.root = root
	if err != nil {
		rs.errMsg = err.Error()
	}
	rs.done = true
	rs.mu.Unlock()
	close(rs.finished)
}

// snapshot returns a consistent copy of the run's outcome so far.
func (rs *RunState) snapshot() (records []roots.Record, root float64, errMsg string, done bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	records = append([]roots.Record(nil), rs.records...)

	return records, rs.root, rs.errMsg, rs.done
}

// registry is the in-memory run store.
type registry struct {
	mu   sync.Mutex
	runs map[string]*RunState
}

func newRegistry() *registry {
	return &registry{runs: map[string]*RunState{}}
}

func (g *registry) save(rs *RunState) {
	g.mu.Lock()
	g.runs[rs.ID] = rs
	g.mu.Unlock()
}

func (g *registry) get(id string) *RunState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.runs[id]
}
