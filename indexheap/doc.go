// Package indexheap provides an array-backed binary min-heap whose entries
// stay addressable after insertion: Push returns a Handle that remains valid
// across every internal sift move until the entry leaves the heap, enabling
// true in-place decrease-key and targeted removal in O(log n).
//
// Overview:
//
//   - The heap stores values of any type T ordered by a caller-supplied
//     less function; it knows nothing about graphs or priorities beyond that.
//   - Internally three parallel structures cooperate: items (values keyed by
//     handle), heap (handles in heap order) and pos (handle → current slot).
//     Sift operations swap handles and update pos only — the handle itself
//     never moves, which is exactly what makes it stable.
//   - Handles are allocated sequentially and never reused within one heap
//     instance, so a stale handle can always be detected.
//
// When to use:
//
//   - Dijkstra/Prim-style frontiers where an entry's priority must be lowered
//     in place instead of pushing stale duplicates.
//   - Any priority queue where membership introspection (Contains, Value)
//     matters as much as ordering.
//
// Complexity:
//
//   - Push / Pop / Update / Remove: O(log n)
//   - Min / Len / Empty / Contains / Value: O(1)
//   - Space: O(n + p) where p is the total number of pushes ever made
//     (removed slots are retired, not reclaimed).
//
// Error handling:
//
//	Misuse is a programming error, not a recoverable condition, so the
//	offending call panics with a sentinel error value:
//
//   - ErrEmptyHeap         – Pop or Min on an empty heap.
//   - ErrStaleHandle       – Update or Remove with a handle that was never
//     issued or whose entry already left the heap.
//   - ErrIncreasedPriority – Update with a value ordering strictly after the
//     entry's current value (decrease-key only; equal is allowed).
//
// Thread safety:
//
//	A Heap is not safe for concurrent use; guard it externally or give each
//	goroutine its own instance.
package indexheap
