package dijkstra

import (
	"fmt"
	"io"
)

// Visitor observes and steers a traversal without modifying the algorithm.
// The engine fires the hooks in a fixed, documented order:
//
//   - DiscoverVertex fires exactly once per vertex, the moment it turns
//     white→gray. For sources parent == vertex and dist == 0.
//   - IncludeVertex fires exactly once per vertex, the moment it turns black
//     (sources at initialization, others on heap extraction). Returning
//     false halts the traversal immediately: the vertex's neighbors are not
//     examined and no further heap entries are processed.
//   - UpdateVertex fires whenever a gray vertex's distance strictly
//     improves; never for the initial discovery.
//   - CloseVertex fires once per vertex, right after its neighbor pass.
//
// Embed NopVisitor to override only the hooks you need.
type Visitor[V comparable] interface {
	DiscoverVertex(parent, vertex V, dist int64)
	IncludeVertex(parent, vertex V, dist int64) bool
	UpdateVertex(parent, vertex V, dist int64)
	CloseVertex(vertex V)
}

// NopVisitor implements Visitor with no-op hooks; IncludeVertex always
// continues. Zero-sized, safe to embed.
type NopVisitor[V comparable] struct{}

// DiscoverVertex does nothing.
func (NopVisitor[V]) DiscoverVertex(_, _ V, _ int64) {}

// IncludeVertex always continues the traversal.
func (NopVisitor[V]) IncludeVertex(_, _ V, _ int64) bool { return true }

// UpdateVertex does nothing.
func (NopVisitor[V]) UpdateVertex(_, _ V, _ int64) {}

// CloseVertex does nothing.
func (NopVisitor[V]) CloseVertex(_ V) {}

// LogVisitor writes one human-readable line per hook invocation to Out.
// It has no other side effects and never requests early termination.
type LogVisitor[V comparable] struct {
	Out io.Writer
}

// NewLogVisitor returns a LogVisitor writing to out.
func NewLogVisitor[V comparable](out io.Writer) *LogVisitor[V] {
	return &LogVisitor[V]{Out: out}
}

// DiscoverVertex logs the first sighting of a vertex.
func (lv *LogVisitor[V]) DiscoverVertex(parent, vertex V, dist int64) {
	fmt.Fprintf(lv.Out, "discover vertex %v (parent=%v, dist=%d)\n", vertex, parent, dist)
}

// IncludeVertex logs the finalization of a vertex and always continues.
func (lv *LogVisitor[V]) IncludeVertex(parent, vertex V, dist int64) bool {
	fmt.Fprintf(lv.Out, "include vertex %v (parent=%v, dist=%d)\n", vertex, parent, dist)

	return true
}

// UpdateVertex logs a strict distance improvement of a frontier vertex.
func (lv *LogVisitor[V]) UpdateVertex(parent, vertex V, dist int64) {
	fmt.Fprintf(lv.Out, "update vertex %v (via %v, dist=%d)\n", vertex, parent, dist)
}

// CloseVertex logs the end of a vertex's neighbor pass.
func (lv *LogVisitor[V]) CloseVertex(vertex V) {
	fmt.Fprintf(lv.Out, "close vertex %v\n", vertex)
}
