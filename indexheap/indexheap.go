package indexheap

import "errors"

// Sentinel errors carried by panics on heap misuse.
var (
	// ErrEmptyHeap indicates Pop or Min was called on an empty heap.
	ErrEmptyHeap = errors.New("indexheap: heap is empty")

	// ErrStaleHandle indicates a handle that was never issued by this heap
	// or whose entry has already been popped or removed.
	ErrStaleHandle = errors.New("indexheap: stale or unknown handle")

	// ErrIncreasedPriority indicates an Update whose new value orders
	// strictly after the entry's current value. Update is decrease-key only.
	ErrIncreasedPriority = errors.New("indexheap: update must not increase priority")
)

// removed marks a handle whose entry is no longer on the heap.
const removed = -1

// Handle identifies one pushed entry for the lifetime of that entry.
// Handles stay valid across sift-up/sift-down moves; only Pop and Remove
// retire them. Handles are never reused within a single Heap.
type Handle int

// Heap is an indexed binary min-heap over values of type T.
// The zero value is not usable; construct with New or NewWithCapacity.
type Heap[T any] struct {
	less  func(a, b T) bool
	items []T       // values keyed by handle; slots of retired handles go stale
	order []Handle  // handles arranged in heap order
	pos   []int     // handle → slot in order, or removed
}

// New returns an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// NewWithCapacity returns an empty heap ordered by less with room
// pre-allocated for n entries.
func NewWithCapacity[T any](less func(a, b T) bool, n int) *Heap[T] {
	return &Heap[T]{
		less:  less,
		items: make([]T, 0, n),
		order: make([]Handle, 0, n),
		pos:   make([]int, 0, n),
	}
}

// Len returns the number of entries currently on the heap.
func (h *Heap[T]) Len() int { return len(h.order) }

// Empty reports whether the heap holds no entries.
func (h *Heap[T]) Empty() bool { return len(h.order) == 0 }

// Contains reports whether hd refers to an entry still on the heap.
func (h *Heap[T]) Contains(hd Handle) bool {
	return hd >= 0 && int(hd) < len(h.pos) && h.pos[hd] != removed
}

// Value returns the current value behind hd, or ok=false if hd is stale.
func (h *Heap[T]) Value(hd Handle) (T, bool) {
	if !h.Contains(hd) {
		var zero T
		return zero, false
	}

	return h.items[hd], true
}

// Push adds x and returns the handle addressing it until it leaves the heap.
func (h *Heap[T]) Push(x T) Handle {
	hd := Handle(len(h.items))
	h.items = append(h.items, x)
	h.pos = append(h.pos, len(h.order))
	h.order = append(h.order, hd)
	h.up(len(h.order) - 1)

	return hd
}

// Min returns the minimum value without removing it.
// Panics with ErrEmptyHeap if the heap is empty.
func (h *Heap[T]) Min() T {
	if len(h.order) == 0 {
		panic(ErrEmptyHeap)
	}

	return h.items[h.order[0]]
}

// Pop removes and returns the minimum value, retiring its handle.
// Panics with ErrEmptyHeap if the heap is empty.
func (h *Heap[T]) Pop() T {
	if len(h.order) == 0 {
		panic(ErrEmptyHeap)
	}
	n := len(h.order) - 1
	h.swap(0, n)
	hd := h.order[n]
	h.order = h.order[:n]
	h.pos[hd] = removed
	h.down(0)

	return h.items[hd]
}

// Update replaces the entry behind hd with x and restores heap order.
// The new value must not order after the current one (decrease-key only);
// replacing with an equal-priority value is permitted.
// Panics with ErrStaleHandle or ErrIncreasedPriority on misuse.
func (h *Heap[T]) Update(hd Handle, x T) {
	if !h.Contains(hd) {
		panic(ErrStaleHandle)
	}
	if h.less(h.items[hd], x) {
		panic(ErrIncreasedPriority)
	}
	h.items[hd] = x
	// The value only moved toward the root; a single sift-up suffices.
	h.up(h.pos[hd])
}

// Remove deletes the entry behind hd from anywhere in the heap and returns
// its value, retiring the handle. Panics with ErrStaleHandle on misuse.
func (h *Heap[T]) Remove(hd Handle) T {
	if !h.Contains(hd) {
		panic(ErrStaleHandle)
	}
	i := h.pos[hd]
	n := len(h.order) - 1
	if i != n {
		h.swap(i, n)
	}
	h.order = h.order[:n]
	h.pos[hd] = removed
	if i != n {
		if !h.down(i) {
			h.up(i)
		}
	}

	return h.items[hd]
}

// lessAt compares the values at two heap slots.
func (h *Heap[T]) lessAt(i, j int) bool {
	return h.less(h.items[h.order[i]], h.items[h.order[j]])
}

// swap exchanges two heap slots and keeps the handle→slot table in sync.
func (h *Heap[T]) swap(i, j int) {
	h.order[i], h.order[j] = h.order[j], h.order[i]
	h.pos[h.order[i]] = i
	h.pos[h.order[j]] = j
}

// up sifts the entry at slot j toward the root until heap order holds.
func (h *Heap[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.lessAt(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down sifts the entry at slot i0 toward the leaves until heap order holds,
// reporting whether it moved at all.
func (h *Heap[T]) down(i0 int) bool {
	i := i0
	n := len(h.order)
	for {
		left := 2*i + 1
		if left >= n || left < 0 { // left < 0 after int overflow
			break
		}
		j := left
		if right := left + 1; right < n && h.lessAt(right, left) {
			j = right
		}
		if !h.lessAt(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}

	return i > i0
}
