// Package spath is an observable single- and multi-source shortest-path
// engine for weighted graphs with non-negative edge weights.
//
// 🚀 What is spath?
//
//	A small, focused library built around one idea: Dijkstra's algorithm
//	as an engine you can watch and steer, without ever touching the loop:
//		• indexheap/ — indexed binary min-heap with true O(log n) decrease-key
//		• dijkstra/  — traversal state, visitor protocol, algorithm loop
//		• digraph/   — a compact dense-index weighted digraph for callers
//		               who do not already have a graph abstraction
//
// ✨ Why choose spath?
//
//   - Bring your own graph – the engine consumes a three-method capability
//     interface; any vertex type with a dense integer index plugs in
//   - Observable – four visitor hooks (discover, include, update, close)
//     fire in a precisely documented order; early exit is one false return
//   - Honest priority queue – in-place decrease-key with stable handles,
//     not lazy duplicate pushes; the heap mirrors the frontier exactly
//   - Pure Go – no cgo, single-threaded, deterministic
//
// Quick ASCII example:
//
//	    0 ──2── 1
//	    │       │ \
//	    5       1  4
//	    │       │   \
//	    2 ──1── 3────┘
//
//	from source 0 the engine finalizes 0, 1, 2, 3 in distance order
//	0, 2, 3, 4 and hands back the predecessor tree for path rebuilding.
//
// Dive into the per-package docs for the full API, complexity notes and
// runnable examples.
//
//	go get github.com/gographs/spath
package spath
