package posting

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// List is the set of value slots filed under one category.
// It wraps the official roaring implementation.
type List struct {
	rb *roaring.Bitmap
}

// New creates a new empty list.
func New() *List {
	return &List{
		rb: roaring.New(),
	}
}

// Add adds a slot to the list.
func (l *List) Add(slot uint32) {
	l.rb.Add(slot)
}

// Remove removes a slot from the list.
func (l *List) Remove(slot uint32) {
	l.rb.Remove(slot)
}

// IsEmpty returns true if the list is empty.
func (l *List) IsEmpty() bool {
	return l.rb.IsEmpty()
}

// Len returns the number of slots in the list.
func (l *List) Len() int {
	return int(l.rb.GetCardinality())
}

// Clone returns a deep copy of the list.
func (l *List) Clone() *List {
	return &List{
		rb: l.rb.Clone(),
	}
}

// All returns an iterator over the slots in ascending order.
func (l *List) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := l.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// And intersects the list in place with other.
func (l *List) And(other *List) {
	l.rb.And(other.rb)
}

// Intersect returns a new list holding the slots present in every input.
// The smallest input is cloned first so the work is bounded by it.
// Intersect of no lists is an empty list.
func Intersect(lists ...*List) *List {
	if len(lists) == 0 {
		return New()
	}

	base := 0
	for i := 1; i < len(lists); i++ {
		if lists[i].Len() < lists[base].Len() {
			base = i
		}
	}

	out := lists[base].Clone()
	for i, other := range lists {
		if i == base {
			continue
		}
		out.And(other)
		if out.IsEmpty() {
			break
		}
	}

	return out
}
