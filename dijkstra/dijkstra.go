// Observable Dijkstra over a caller-supplied graph capability.
//
// The engine computes single- or multi-source shortest paths on weighted
// graphs with non-negative edge weights, firing visitor hooks at every
// discovery, finalization, improvement and closing of a vertex. Vertices are
// finalized in non-decreasing distance order; the frontier lives on an
// indexed min-heap kept synchronized with the distance slice via in-place
// decrease-key.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex enters and leaves the heap at most once: ≤ V pushes/pops.
//   - Each edge relaxation is one weight lookup plus at most one O(log V)
//     decrease-key; no stale duplicates are ever pushed.
//   - Space: O(V) for the state slices plus the heap.
package dijkstra

import (
	"fmt"
	"os"
)

// ShortestPaths computes shortest paths from a single source.
// It builds a fresh State for g with noParent as the "no predecessor"
// sentinel, runs the traversal and returns the populated State.
//
// Edge weights must hold one non-negative entry per dense edge index; this
// precondition is not validated, and violating it yields incorrect results
// rather than an error.
func ShortestPaths[V comparable](g Graph[V], weights []int64, source, noParent V, opts ...Option[V]) (*State[V], error) {
	return ShortestPathsMulti(g, weights, []V{source}, noParent, opts...)
}

// ShortestPathsMulti computes shortest paths from a set of sources, in the
// caller-supplied order. Every reported distance is measured from the
// nearest source. See ShortestPaths for the weight-slice contract.
func ShortestPathsMulti[V comparable](g Graph[V], weights []int64, sources []V, noParent V, opts ...Option[V]) (*State[V], error) {
	// 1) Build Options from functional arguments.
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) The graph must exist before a State can be sized for it.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Fresh state per run; Traverse validates the rest.
	st := NewState(g, noParent)
	if err := Traverse(g, weights, cfg.Visitor, sources, st); err != nil {
		return nil, err
	}

	return st, nil
}

// ShortestPathsWithLog is ShortestPaths pre-wired with a LogVisitor writing
// every hook invocation to standard output.
func ShortestPathsWithLog[V comparable](g Graph[V], weights []int64, source, noParent V) (*State[V], error) {
	return ShortestPaths(g, weights, source, noParent, WithVisitor[V](NewLogVisitor[V](os.Stdout)))
}

// Traverse runs the algorithm loop over st, which must come fresh from
// NewState for g. Sources are initialized and relaxed in the order given;
// the main loop then drains the frontier heap. A false return from the
// visitor's IncludeVertex halts the run immediately — st then reflects
// everything finalized up to that point, and Traverse returns nil.
//
// Traverse fails fast with ErrNilGraph, ErrNilVisitor, ErrNoSources,
// ErrStateSize or ErrVertexNotFound on malformed arguments. Deeper input
// malformation (sparse edge indices, negative weights) is not detected.
func Traverse[V comparable](g Graph[V], weights []int64, visitor Visitor[V], sources []V, st *State[V]) error {
	if g == nil {
		return ErrNilGraph
	}
	if visitor == nil {
		return ErrNilVisitor
	}
	if len(sources) == 0 {
		return ErrNoSources
	}
	n := g.Order()
	if st == nil || st.heap == nil || len(st.Dists) != n {
		return ErrStateSize
	}
	for _, s := range sources {
		if i := g.Index(s); i < 0 || i >= n {
			return fmt.Errorf("%w: source %v has index %d, graph order %d", ErrVertexNotFound, s, i, n)
		}
	}

	r := &runner[V]{g: g, weights: weights, visitor: visitor, st: st}
	if !r.initSources(sources) {
		return nil
	}
	r.process()

	return nil
}

// runner holds the collaborators of one traversal run.
type runner[V comparable] struct {
	g       Graph[V]
	weights []int64
	visitor Visitor[V]
	st      *State[V]
}

// initSources performs source initialization as three ordered passes and
// reports whether the traversal may continue.
//
// The pass split is deliberate: all sources become Black before the first
// IncludeVertex fires, and a false return from any source's IncludeVertex
// aborts before even the first source's neighbors are examined.
func (r *runner[V]) initSources(sources []V) bool {
	st := r.st

	// Pass 1: every source is its own parent at distance zero, finalized.
	for _, s := range sources {
		i := r.g.Index(s)
		st.Parents[i] = s
		st.Dists[i] = 0
		st.Colors[i] = Black
	}

	// Pass 2: announce each finalized source; a false return halts here,
	// before any neighbor has been touched.
	for _, s := range sources {
		if !r.visitor.IncludeVertex(s, s, 0) {
			return false
		}
	}

	// Pass 3: seed the frontier from each source's neighbors, closing each
	// source once its neighbor pass is done.
	for _, s := range sources {
		r.relax(s, 0)
		r.visitor.CloseVertex(s)
	}

	return true
}

// process drains the frontier heap, finalizing one vertex per iteration.
func (r *runner[V]) process() {
	st := r.st
	for !st.heap.Empty() {
		en := st.heap.Pop()
		i := r.g.Index(en.vertex)
		st.Colors[i] = Black
		if !r.visitor.IncludeVertex(st.Parents[i], en.vertex, en.dist) {
			return
		}
		r.relax(en.vertex, en.dist)
		r.visitor.CloseVertex(en.vertex)
	}
}

// relax examines every outgoing edge of u, whose distance du is final.
func (r *runner[V]) relax(u V, du int64) {
	st := r.st
	for _, e := range r.g.OutEdges(u) {
		v := e.To
		w := r.weights[e.Index]
		vi := r.g.Index(v)
		switch st.Colors[vi] {
		case White:
			// First sighting: discover, then join the frontier.
			st.Dists[vi] = du + w
			st.Parents[vi] = u
			st.Colors[vi] = Gray
			r.visitor.DiscoverVertex(u, v, st.Dists[vi])
			st.handles[vi] = st.heap.Push(entry[V]{vertex: v, dist: st.Dists[vi]})
		case Gray:
			// Strict improvement only; ties are not propagated.
			if cand := du + w; cand < st.Dists[vi] {
				st.Dists[vi] = cand
				st.Parents[vi] = u
				st.heap.Update(st.handles[vi], entry[V]{vertex: v, dist: cand})
				r.visitor.UpdateVertex(u, v, cand)
			}
		default:
			// Black: its distance is final; with non-negative weights no
			// candidate through u can improve it.
		}
	}
}
