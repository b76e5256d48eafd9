// Package dijkstra provides an observable implementation of Dijkstra's
// shortest-path algorithm: the traversal fires visitor hooks at every state
// transition, so callers can log, instrument, or stop the run early without
// ever modifying the algorithm loop.
//
// Overview:
//
//   - Computes single- or multi-source shortest paths on weighted graphs
//     with non-negative edge weights in O((V + E) log V).
//   - Consumes any graph through the three-method Graph capability
//     (vertex count, dense vertex index, outgoing edges); edge weights live
//     in a plain []int64 indexed by dense edge index.
//   - Maintains an exact frontier: each gray vertex has exactly one entry on
//     an indexed min-heap whose priority always equals its current tentative
//     distance, updated via in-place decrease-key (no stale duplicates).
//   - Returns the full traversal State (distances, predecessor tree, colors)
//     for the caller to keep; PathTo rebuilds any shortest path from it.
//
// Visitor protocol (callback order is part of the contract):
//
//   - DiscoverVertex(parent, v, dist) – once per vertex, white→gray.
//   - IncludeVertex(parent, v, dist) – once per vertex, at finalization;
//     returning false halts the traversal before v's neighbors are examined.
//   - UpdateVertex(parent, v, dist) – on every strict improvement of a gray
//     vertex's distance.
//   - CloseVertex(v) – once per vertex, after its neighbor pass completes.
//
// Sources are initialized in caller order: all sources are finalized first,
// then IncludeVertex fires for each in order (a false return aborts before
// any neighbor is examined), then each source's neighbors are relaxed and
// the source is closed. The main loop then pops the nearest frontier vertex,
// finalizes it, asks IncludeVertex, relaxes, and closes — so vertices are
// always included in non-decreasing distance order.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilVisitor, ErrNoSources, ErrStateSize,
//     ErrVertexNotFound: fail-fast argument validation on the entry points.
//   - ErrNoPath: PathTo target was never reached.
//   - Negative edge weights are NOT detected; they silently produce
//     incorrect results. Sparse or out-of-range edge index spaces are
//     likewise undefined behavior on this hot path.
//
// Thread safety:
//
//   - A State and its heap belong to exactly one in-progress traversal.
//     Independent traversals over the same immutable graph and weight slice
//     may run concurrently, each with its own State.
//   - There is no cancellation primitive beyond IncludeVertex returning
//     false; it is cooperative and checked once per vertex finalization.
//
// See also:
//
//   - indexheap: the decrease-key priority queue the frontier runs on.
//   - digraph: a ready-made dense-index weighted digraph for callers
//     without their own graph abstraction.
package dijkstra
