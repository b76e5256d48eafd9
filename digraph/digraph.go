package digraph

import (
	"errors"
	"fmt"

	"github.com/gographs/spath/dijkstra"
)

// NoParent is a convenient "no predecessor" sentinel for dense integer
// vertices: it can never collide with a real vertex index.
const NoParent = -1

// Sentinel errors returned by graph construction.
var (
	// ErrVertexRange indicates an edge endpoint outside [0, Order).
	ErrVertexRange = errors.New("digraph: vertex index out of range")

	// ErrNegativeWeight indicates an edge weight below zero; the shortest-path
	// engine assumes non-negative weights and never re-checks them.
	ErrNegativeWeight = errors.New("digraph: negative edge weight")
)

// Option configures graph construction.
type Option func(*Graph)

// WithDirected makes every added edge one-way. The default is undirected:
// AddEdge installs the arc in both adjacency lists under one edge index.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// Graph is a weighted graph over the dense vertex set 0..n-1.
// It satisfies dijkstra.Graph[int].
type Graph struct {
	order    int
	directed bool
	adj      [][]dijkstra.OutEdge[int]
	weights  []int64
}

// New returns an empty graph with vertices 0..n-1 and no edges.
func New(n int, opts ...Option) *Graph {
	g := &Graph{
		order: n,
		adj:   make([][]dijkstra.OutEdge[int], n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddEdge connects u to v with weight w and returns the new dense edge
// index. On undirected graphs the edge is traversable from both endpoints
// but still occupies a single index and weight entry.
func (g *Graph) AddEdge(u, v int, w int64) (int, error) {
	if u < 0 || u >= g.order || v < 0 || v >= g.order {
		return 0, fmt.Errorf("%w: edge %d→%d, order %d", ErrVertexRange, u, v, g.order)
	}
	if w < 0 {
		return 0, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
	}

	idx := len(g.weights)
	g.weights = append(g.weights, w)
	g.adj[u] = append(g.adj[u], dijkstra.OutEdge[int]{To: v, Index: idx})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], dijkstra.OutEdge[int]{To: u, Index: idx})
	}

	return idx, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.order }

// Index maps a vertex to its dense index; vertices are their own indices.
func (g *Graph) Index(v int) int { return v }

// OutEdges returns the outgoing edges of v. The returned slice is the
// graph's own backing store; callers must not mutate it.
func (g *Graph) OutEdges(v int) []dijkstra.OutEdge[int] { return g.adj[v] }

// Directed reports whether added edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int { return len(g.weights) }

// Weights returns the edge-weight slice indexed by dense edge index, ready
// to hand to the shortest-path engine. The slice is the graph's own backing
// store; callers must not mutate it while traversals are running.
func (g *Graph) Weights() []int64 { return g.weights }
