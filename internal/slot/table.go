// Package slot assigns dense uint32 handles to the values held by an index.
//
// Posting lists are roaring bitmaps, so they need small integers rather than
// arbitrary comparable values. A Table hands out the lowest recycled slot
// first and only grows when none is free, which keeps the bitmaps dense even
// under heavy remove/add churn.
//
// Iteration walks the live slots in ascending order. The order depends only
// on the sequence of Acquire/Release calls, so it is stable for an unmodified
// table.
package slot

import (
	"cmp"
	"iter"
	"math"
	"slices"

	"github.com/hupe1980/categorizer/internal/posting"
)

// Table maps values to slots and back. It is not safe for concurrent use;
// the owning index serializes access.
type Table[V comparable] struct {
	slots  map[V]uint32
	values []V
	live   *posting.List
	free   []uint32
}

// New creates an empty table.
func New[V comparable]() *Table[V] {
	return &Table[V]{
		slots: make(map[V]uint32),
		live:  posting.New(),
	}
}

// Lookup returns the slot of v.
func (t *Table[V]) Lookup(v V) (uint32, bool) {
	s, ok := t.slots[v]
	return s, ok
}

// Acquire returns the slot of v, assigning one if v is new.
// The second result reports whether v was already present.
func (t *Table[V]) Acquire(v V) (uint32, bool) {
	if s, ok := t.slots[v]; ok {
		return s, true
	}

	var s uint32
	if n := len(t.free); n > 0 {
		// Lowest free slot first.
		s = t.free[n-1]
		t.free = t.free[:n-1]
		t.values[s] = v
	} else {
		if uint64(len(t.values)) > math.MaxUint32 {
			panic("slot: table exhausted")
		}
		s = uint32(len(t.values))
		t.values = append(t.values, v)
	}

	t.slots[v] = s
	t.live.Add(s)
	return s, false
}

// Release frees the slot held by v.
func (t *Table[V]) Release(v V) (uint32, bool) {
	s, ok := t.slots[v]
	if !ok {
		return 0, false
	}

	delete(t.slots, v)
	t.live.Remove(s)

	var zero V
	t.values[s] = zero

	// Keep free sorted descending so the lowest slot is popped first.
	i, _ := slices.BinarySearchFunc(t.free, s, func(a, b uint32) int {
		return cmp.Compare(b, a)
	})
	t.free = slices.Insert(t.free, i, s)
	return s, true
}

// Value returns the value stored in slot s. The slot must be live.
func (t *Table[V]) Value(s uint32) V {
	return t.values[s]
}

// Len returns the number of live slots.
func (t *Table[V]) Len() int {
	return len(t.slots)
}

// All yields every live slot with its value in ascending slot order.
func (t *Table[V]) All() iter.Seq2[uint32, V] {
	return func(yield func(uint32, V) bool) {
		for s := range t.live.All() {
			if !yield(s, t.values[s]) {
				return
			}
		}
	}
}

// Reset drops every value and slot.
func (t *Table[V]) Reset() {
	t.slots = make(map[V]uint32)
	t.values = nil
	t.live = posting.New()
	t.free = nil
}
