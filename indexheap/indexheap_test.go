package indexheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gographs/spath/indexheap"
)

// intLess orders plain ints ascending.
func intLess(a, b int) bool { return a < b }

// newIntHeap builds a heap of ints with the values pushed in order,
// returning the heap and the handle issued for each value.
func newIntHeap(t *testing.T, values ...int) (*indexheap.Heap[int], []indexheap.Handle) {
	t.Helper()
	h := indexheap.New(intLess)
	handles := make([]indexheap.Handle, 0, len(values))
	for _, v := range values {
		handles = append(handles, h.Push(v))
	}

	return h, handles
}

// ------------------------------------------------------------------------
// 1. Ordering: Push/Pop must behave as a min-heap.
// ------------------------------------------------------------------------

func TestHeap_PopsInAscendingOrder(t *testing.T) {
	h, _ := newIntHeap(t, 9, 3, 7, 1, 8, 2, 5, 4, 6, 0)

	got := make([]int, 0, h.Len())
	for !h.Empty() {
		got = append(got, h.Pop())
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
	require.Zero(t, h.Len())
}

func TestHeap_MinPeeksWithoutRemoving(t *testing.T) {
	h, _ := newIntHeap(t, 5, 2, 8)

	require.Equal(t, 2, h.Min())
	require.Equal(t, 3, h.Len(), "Min must not remove the entry")
	require.Equal(t, 2, h.Pop())
}

func TestHeap_DuplicatePriorities(t *testing.T) {
	// Equal values are all popped; their relative order is unspecified.
	h, _ := newIntHeap(t, 4, 4, 1, 4, 1)

	got := make([]int, 0, 5)
	for !h.Empty() {
		got = append(got, h.Pop())
	}
	require.Equal(t, []int{1, 1, 4, 4, 4}, got)
}

// ------------------------------------------------------------------------
// 2. Handle stability: handles must survive sift moves and address the
//    same logical entry throughout its lifetime.
// ------------------------------------------------------------------------

func TestHeap_HandlesSurviveSiftMoves(t *testing.T) {
	// Pushing a strictly decreasing sequence forces a sift-up to the root on
	// every Push, relocating every previously pushed entry's slot.
	values := []int{100, 90, 80, 70, 60, 50, 40, 30, 20, 10}
	h, handles := newIntHeap(t, values...)

	// Every handle must still resolve to the value it was issued for.
	for i, hd := range handles {
		got, ok := h.Value(hd)
		require.True(t, ok, "handle %d went stale without removal", i)
		require.Equal(t, values[i], got)
	}
}

func TestHeap_HandlesSurvivePops(t *testing.T) {
	h, handles := newIntHeap(t, 10, 20, 30, 40, 50)

	// Popping the minimum relocates the last slot to the root and sifts it
	// down; the surviving handles must keep resolving correctly.
	require.Equal(t, 10, h.Pop())
	require.False(t, h.Contains(handles[0]), "popped handle must be retired")
	for i := 1; i < len(handles); i++ {
		got, ok := h.Value(handles[i])
		require.True(t, ok)
		require.Equal(t, (i+1)*10, got)
	}
}

func TestHeap_UpdateTargetsEntryAfterRelocation(t *testing.T) {
	// 15 is pushed first and ends up away from the root after the smaller
	// values arrive; its handle must still address it.
	h, handles := newIntHeap(t, 15, 3, 7, 1)

	h.Update(handles[0], 0)
	require.Equal(t, 0, h.Pop(), "decreased entry must surface first")
	require.Equal(t, 1, h.Pop())
	require.False(t, h.Contains(handles[0]))
}

func TestHeap_HandlesNeverReused(t *testing.T) {
	h := indexheap.New(intLess)
	first := h.Push(1)
	require.Equal(t, 1, h.Pop())

	second := h.Push(2)
	require.NotEqual(t, first, second, "retired handles must not be reissued")
	require.False(t, h.Contains(first))
	require.True(t, h.Contains(second))
}

// ------------------------------------------------------------------------
// 3. Decrease-key semantics.
// ------------------------------------------------------------------------

func TestHeap_UpdateToEqualPriorityAllowed(t *testing.T) {
	h, handles := newIntHeap(t, 6, 2)

	require.NotPanics(t, func() { h.Update(handles[0], 6) })
	require.Equal(t, 2, h.Pop())
	require.Equal(t, 6, h.Pop())
}

func TestHeap_UpdateIncreasePanics(t *testing.T) {
	h, handles := newIntHeap(t, 6, 2)

	require.PanicsWithError(t, indexheap.ErrIncreasedPriority.Error(), func() {
		h.Update(handles[0], 7)
	})
}

func TestHeap_UpdateStaleHandlePanics(t *testing.T) {
	h, handles := newIntHeap(t, 6, 2)
	require.Equal(t, 2, h.Pop()) // retires handles[1]

	require.PanicsWithError(t, indexheap.ErrStaleHandle.Error(), func() {
		h.Update(handles[1], 1)
	})
	require.PanicsWithError(t, indexheap.ErrStaleHandle.Error(), func() {
		h.Update(indexheap.Handle(99), 1) // never issued
	})
}

// ------------------------------------------------------------------------
// 4. Removal and empty-heap failure modes.
// ------------------------------------------------------------------------

func TestHeap_RemoveMiddleEntry(t *testing.T) {
	h, handles := newIntHeap(t, 1, 5, 3, 9, 7)

	require.Equal(t, 5, h.Remove(handles[1]))
	require.False(t, h.Contains(handles[1]))

	got := make([]int, 0, h.Len())
	for !h.Empty() {
		got = append(got, h.Pop())
	}
	require.Equal(t, []int{1, 3, 7, 9}, got, "removal must preserve heap order")
}

func TestHeap_RemoveLastSlot(t *testing.T) {
	h, handles := newIntHeap(t, 1, 5)

	// handles[1] occupies the last heap slot; removal must not sift.
	require.Equal(t, 5, h.Remove(handles[1]))
	require.Equal(t, 1, h.Pop())
	require.True(t, h.Empty())
}

func TestHeap_PopEmptyPanics(t *testing.T) {
	h := indexheap.New(intLess)

	require.PanicsWithError(t, indexheap.ErrEmptyHeap.Error(), func() { h.Pop() })
	require.PanicsWithError(t, indexheap.ErrEmptyHeap.Error(), func() { h.Min() })
}

func TestHeap_ValueOnStaleHandle(t *testing.T) {
	h, handles := newIntHeap(t, 4)
	h.Pop()

	_, ok := h.Value(handles[0])
	assert.False(t, ok)
	_, ok = h.Value(indexheap.Handle(-1))
	assert.False(t, ok)
}

// ------------------------------------------------------------------------
// 5. Randomized workload: interleaved pushes and decreases must still pop a
//    fully sorted sequence matching an independently tracked model.
// ------------------------------------------------------------------------

func TestHeap_RandomizedAgainstModel(t *testing.T) {
	const n = 500
	rnd := rand.New(rand.NewSource(42))

	h := indexheap.NewWithCapacity(intLess, n)
	handles := make([]indexheap.Handle, 0, n)
	model := make(map[indexheap.Handle]int, n)

	for i := 0; i < n; i++ {
		v := rnd.Intn(100000)
		hd := h.Push(v)
		handles = append(handles, hd)
		model[hd] = v

		// Occasionally decrease a random live entry.
		if i%3 == 0 {
			target := handles[rnd.Intn(len(handles))]
			cur := model[target]
			dec := cur - rnd.Intn(1000)
			h.Update(target, dec)
			model[target] = dec
		}
	}

	want := make([]int, 0, n)
	for _, v := range model {
		want = append(want, v)
	}
	sort.Ints(want)

	got := make([]int, 0, n)
	for !h.Empty() {
		got = append(got, h.Pop())
	}
	require.Equal(t, want, got)
}
