package server

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/internal/sse"
	"github.com/katalvlaran/rootfind/roots"
)

// Server-side solve limits: a demonstration run must terminate promptly,
// whatever budget the client asks for.
const (
	defaultMaxIter = 10_000
	maxMaxIter     = 100_000
	defaultTol     = 1e-6
)

// Server holds the run registry and the SSE hub.
type Server struct {
	runs *registry
	hub  *sse.Hub
}

// New returns a Server with an empty registry.
func New() *Server {
	return &Server{runs: newRegistry(), hub: sse.NewHub()}
}

// Router wires the API endpoints.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/solve", s.handleSolve)
	mux.HandleFunc("/stream", s.handleStream)
	mux.HandleFunc("/export", s.handleExport)
	mux.HandleFunc("/methods", s.handleMethods)

	return mux
}

// handleSolve starts a new solve run and returns its ID; the iteration
// trace is delivered on /stream and retained for /export.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var p RunParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	spec, err := lookupMethod(p.Method)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if spec.twoPoint && p.P0 == p.P1 {
		http.Error(w, "two-point methods need distinct p0 and p1", http.StatusBadRequest)
		return
	}

	if p.Tol <= 0 {
		p.Tol = defaultTol
	}
	if p.MaxIter <= 0 {
		p.MaxIter = defaultMaxIter
	}
	if p.MaxIter > maxMaxIter {
		p.MaxIter = maxMaxIter
	}

	f, err := expr.Compile(p.Func)
	if err != nil {
		http.Error(w, "bad function expression: "+err.Error(), http.StatusBadRequest)
		return
	}

	rs := newRunState(uuid.NewString(), p)
	s.runs.save(rs)

	go s.solve(rs, spec, f)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"id": rs.ID})
}

// solve runs the chosen method, fanning every trace record out to the
// run's subscribers and retaining it for export.
func (s *Server) solve(rs *RunState, spec methodSpec, f roots.Func) {
	s.publish(rs.ID, map[string]any{"type": "start", "id": rs.ID})

	root, err := spec.run(rs.Params, f,
		roots.WithTolerance(rs.Params.Tol),
		roots.WithMaxIterations(rs.Params.MaxIter),
		roots.WithOnIterate(func(rec roots.Record) {
			rs.append(rec)
			s.publish(rs.ID, map[string]any{"type": "iter", "iter": rec})
		}),
	)

	rs.finish(root, err)

	if err != nil {
		s.publish(rs.ID, map[string]any{"type": "error", "err": err.Error()})
		return
	}
	s.publish(rs.ID, map[string]any{"type": "done", "x": root})
}

func (s *Server) publish(id string, event map[string]any) {
	msg, _ := json.Marshal(event)
	s.hub.Publish(id, string(msg))
}

// handleStream replays a run's events as server-sent events.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}
	if s.runs.get(id) == nil {
		http.Error(w, "unknown id", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch, cancel := s.hub.Subscribe(id)
	defer cancel()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-ch:
			fmt.Fprintf(w, "event: msg\n")
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// handleExport renders a run's iteration table as CSV.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	rs := s.runs.get(id)
	if rs == nil {
		http.Error(w, "unknown id", http.StatusNotFound)
		return
	}

	records, _, _, _ := rs.snapshot()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=iterations_"+id+".csv")

	cw := csv.NewWriter(w)
	defer cw.Flush()

	_ = cw.Write([]string{"k", "p0", "p1", "q0", "q1", "x", "fx", "df"})
	for _, rec := range records {
		_ = cw.Write([]string{
			strconv.Itoa(rec.K),
			fmtFloat(rec.P0),
			fmtFloat(rec.P1),
			fmtFloat(rec.Q0),
			fmtFloat(rec.Q1),
			fmtFloat(rec.X),
			fmtFloat(rec.FX),
			fmtFloat(rec.DF),
		})
	}
}

// handleMethods lists the accepted method names.
func (s *Server) handleMethods(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"methods": MethodNames()})
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 16, 64)
}
