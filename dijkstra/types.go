// Package dijkstra defines the capability interfaces, sentinel errors and
// configuration options for the observable shortest-path engine.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices no source can reach.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by the traversal entry points.
var (
	// ErrNilGraph indicates a nil Graph was supplied.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilVisitor indicates a nil Visitor was supplied to Traverse.
	ErrNilVisitor = errors.New("dijkstra: visitor is nil")

	// ErrNoSources indicates an empty source set.
	ErrNoSources = errors.New("dijkstra: no source vertices supplied")

	// ErrVertexNotFound indicates a source whose dense index falls outside
	// the graph's vertex range [0, Order).
	ErrVertexNotFound = errors.New("dijkstra: source vertex index out of range")

	// ErrStateSize indicates a State that was not built by NewState for the
	// graph being traversed.
	ErrStateSize = errors.New("dijkstra: state does not match graph")

	// ErrNoPath indicates a path reconstruction target that was never reached.
	ErrNoPath = errors.New("dijkstra: no path to vertex")
)

// OutEdge describes one outgoing edge of a vertex: its target and the dense
// zero-based edge index used to look up the edge's weight.
type OutEdge[V comparable] struct {
	To    V   // target vertex
	Index int // dense edge index into the caller's weight slice
}

// Graph is the narrow capability the engine needs from a caller's graph.
// Vertex and edge index spaces must be dense and zero-based. The graph is
// read-only for the duration of a traversal.
type Graph[V comparable] interface {
	// Order returns the total number of vertices.
	Order() int

	// Index maps a vertex to its dense zero-based index.
	Index(v V) int

	// OutEdges returns the outgoing edges of v. For undirected graphs the
	// same underlying edge may appear in both endpoints' lists under one
	// shared edge index.
	OutEdges(v V) []OutEdge[V]
}

// Options configures a traversal run.
//
// Visitor – observer receiving the four traversal hooks (default NopVisitor).
type Options[V comparable] struct {
	Visitor Visitor[V]
}

// Option is a functional option for the ShortestPaths entry points.
type Option[V comparable] func(*Options[V])

// WithVisitor installs vis as the traversal observer.
// Passing nil leaves the default NopVisitor in place.
func WithVisitor[V comparable](vis Visitor[V]) Option[V] {
	return func(o *Options[V]) {
		if vis != nil {
			o.Visitor = vis
		}
	}
}

// DefaultOptions returns Options with the no-op visitor installed.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{Visitor: NopVisitor[V]{}}
}
