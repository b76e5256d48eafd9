package dijkstra

import (
	"fmt"

	"github.com/gographs/spath/indexheap"
)

// Color is the traversal state of a vertex.
// A vertex only ever moves White→Gray→Black, never backward.
type Color uint8

const (
	// White marks a vertex not yet discovered.
	White Color = iota

	// Gray marks a discovered vertex still on the frontier heap.
	Gray

	// Black marks a vertex whose distance is final.
	Black
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// entry pairs a frontier vertex with its current best distance.
// Heap ordering is by distance only; ties break arbitrarily.
type entry[V comparable] struct {
	vertex V
	dist   int64
}

// State is the mutable heart of one traversal run: per-vertex parallel
// slices keyed by dense vertex index, plus the frontier heap. Build a fresh
// State per run via NewState; Traverse mutates it and the caller keeps it
// afterwards for distance lookup and path reconstruction.
//
// Invariants maintained by the engine:
//   - a vertex is on the heap iff its color is Gray, and its heap priority
//     always equals Dists at that moment (decrease-key, never re-insertion);
//   - Dists of a Black vertex is the final shortest distance from the
//     nearest source and is never lowered again;
//   - Parents names the vertex the current best distance was derived from;
//     sources are their own parents.
type State[V comparable] struct {
	// Parents holds the predecessor on the shortest-path tree, indexed by
	// vertex index; the no-parent sentinel until a vertex is discovered.
	Parents []V

	// Dists holds the best known distance per vertex index; Unreachable
	// until a vertex is discovered.
	Dists []int64

	// Colors holds the White/Gray/Black traversal state per vertex index.
	Colors []Color

	heap    *indexheap.Heap[entry[V]]
	handles []indexheap.Handle // heap handle per vertex, meaningful while Gray
}

// NewState builds a fresh State sized for g, with every vertex White,
// every distance Unreachable and every parent set to noParent.
// The graph must be non-nil.
func NewState[V comparable](g Graph[V], noParent V) *State[V] {
	n := g.Order()
	st := &State[V]{
		Parents: make([]V, n),
		Dists:   make([]int64, n),
		Colors:  make([]Color, n),
		heap: indexheap.NewWithCapacity(func(a, b entry[V]) bool {
			return a.dist < b.dist
		}, n),
		handles: make([]indexheap.Handle, n),
	}
	for i := 0; i < n; i++ {
		st.Parents[i] = noParent
		st.Dists[i] = Unreachable
	}

	return st
}

// PathTo reconstructs the shortest path from a source to v by walking the
// predecessor tree, stopping at a vertex that is its own parent (a source)
// or at the noParent sentinel. Returns ErrNoPath if v was never reached.
func (st *State[V]) PathTo(g Graph[V], v V, noParent V) ([]V, error) {
	if st.Dists[g.Index(v)] == Unreachable {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, v)
	}

	// Walk backwards, then reverse in place.
	path := make([]V, 0, 8)
	cur := v
	for {
		path = append(path, cur)
		parent := st.Parents[g.Index(cur)]
		if parent == cur || parent == noParent {
			break
		}
		cur = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
