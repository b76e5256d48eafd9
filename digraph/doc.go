// Package digraph offers a compact weighted graph over dense integer
// vertices 0..n-1, built to plug straight into the dijkstra engine: it
// satisfies dijkstra.Graph[int] and hands out the matching edge-weight
// slice.
//
// Overview:
//
//   - Vertices are their own dense indices; Index is the identity.
//   - AddEdge assigns each edge the next dense edge index and stores its
//     weight at that index. On undirected graphs the single edge appears in
//     both endpoints' adjacency lists under the shared index, so both
//     directions read the same weight entry.
//   - Construction is fail-fast: endpoints outside [0, n) return
//     ErrVertexRange and negative weights return ErrNegativeWeight, so a
//     successfully built graph is always a valid engine input.
//
// Example:
//
//	g := digraph.New(4, digraph.WithDirected())
//	g.AddEdge(0, 1, 2)
//	g.AddEdge(1, 3, 4)
//	st, err := dijkstra.ShortestPaths[int](g, g.Weights(), 0, digraph.NoParent)
//
// Thread safety: a Graph is immutable once fully built; concurrent
// traversals over a built graph are safe, concurrent AddEdge calls are not.
package digraph
