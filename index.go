package categorizer

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/hupe1980/categorizer/internal/posting"
	"github.com/hupe1980/categorizer/internal/slot"
)

// Index is a bidirectional relation between values and categories.
//
// Architecture:
//   - Primary storage: value -> slot -> category set
//   - Inverted index: category -> roaring bitmap of slots (the Value List)
//
// Both views are mutated together under one exclusive lock, so a reader
// never observes a value detached from its lists but still recorded, or the
// reverse.
//
// Categories are created on first reference and are kept when their Value
// List becomes empty; only Clear forgets them.
type Index[V comparable, C comparable] struct {
	mu sync.RWMutex

	values *slot.Table[V]
	sets   [][]C // slot -> category set

	postings   map[C]*posting.List
	categories []C // first-reference order

	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty index.
func New[V comparable, C comparable](optFns ...Option) *Index[V, C] {
	o := applyOptions(optFns)
	return &Index[V, C]{
		values:   slot.New[V](),
		postings: make(map[C]*posting.List),
		logger:   o.logger,
		metrics:  o.metricsCollector,
	}
}

// Add files value under categories. If value is already present its whole
// category set is replaced, not extended. Repeated categories are recorded
// once, at their first position. Zero categories is allowed: the value is
// then present but unreachable through category lookups.
func (ix *Index[V, C]) Add(value V, categories ...C) {
	start := time.Now()

	set := dedupe(categories)

	ix.mu.Lock()
	replaced := ix.addLocked(value, set)
	ix.mu.Unlock()

	ix.metrics.RecordAdd(len(set), replaced, time.Since(start))
	ix.logger.LogAdd(context.Background(), len(set), replaced)
}

// AddIfAbsent adds value only if it is not present yet and reports whether
// it did.
func (ix *Index[V, C]) AddIfAbsent(value V, categories ...C) bool {
	start := time.Now()

	set := dedupe(categories)

	ix.mu.Lock()
	if _, ok := ix.values.Lookup(value); ok {
		ix.mu.Unlock()
		return false
	}
	ix.addLocked(value, set)
	ix.mu.Unlock()

	ix.metrics.RecordAdd(len(set), false, time.Since(start))
	ix.logger.LogAdd(context.Background(), len(set), false)
	return true
}

// Replace detaches value from its current categories and files it under the
// given ones. An absent value is simply inserted.
func (ix *Index[V, C]) Replace(value V, categories ...C) {
	ix.Add(value, categories...)
}

// Remove detaches value from every category in its set and forgets it.
// It returns ErrValueNotFound if value is not present.
func (ix *Index[V, C]) Remove(value V) error {
	start := time.Now()

	ix.mu.Lock()
	err := ix.removeLocked(value)
	ix.mu.Unlock()

	ix.metrics.RecordRemove(time.Since(start), err)
	ix.logger.LogRemove(context.Background(), err)
	return err
}

// addLocked records set for value and reports whether value was present.
// Caller must hold ix.mu.Lock().
func (ix *Index[V, C]) addLocked(value V, set []C) bool {
	s, existed := ix.values.Acquire(value)
	if existed {
		ix.detachLocked(s)
	} else if int(s) == len(ix.sets) {
		ix.sets = append(ix.sets, nil)
	}

	for _, c := range set {
		list, ok := ix.postings[c]
		if !ok {
			list = posting.New()
			ix.postings[c] = list
			ix.categories = append(ix.categories, c)
		}
		list.Add(s)
	}
	ix.sets[s] = set

	return existed
}

// Caller must hold ix.mu.Lock().
func (ix *Index[V, C]) removeLocked(value V) error {
	s, ok := ix.values.Release(value)
	if !ok {
		return fmt.Errorf("%w: %v", ErrValueNotFound, value)
	}
	ix.detachLocked(s)
	return nil
}

// detachLocked removes slot s from the Value List of every category in its
// set and drops the set. Empty lists are kept.
// Caller must hold ix.mu.Lock().
func (ix *Index[V, C]) detachLocked(s uint32) {
	for _, c := range ix.sets[s] {
		ix.postings[c].Remove(s)
	}
	ix.sets[s] = nil
}

// LookupOr returns the concatenated Value Lists of categories. A value filed
// under several of the queried categories appears once per category.
// It returns ErrUnknownCategory if any category was never added.
func (ix *Index[V, C]) LookupOr(categories ...C) ([]V, error) {
	start := time.Now()

	ix.mu.RLock()
	result, err := ix.lookupOrLocked(categories)
	ix.mu.RUnlock()

	ix.metrics.RecordLookup(LookupOr, len(categories), len(result), time.Since(start), err)
	ix.logger.LogLookup(context.Background(), LookupOr, len(categories), len(result), err)
	return result, err
}

// Caller must hold ix.mu.RLock().
func (ix *Index[V, C]) lookupOrLocked(categories []C) ([]V, error) {
	lists, err := ix.postingsLocked(categories)
	if err != nil {
		return nil, err
	}

	n := 0
	for _, l := range lists {
		n += l.Len()
	}

	result := make([]V, 0, n)
	for _, l := range lists {
		for s := range l.All() {
			result = append(result, ix.values.Value(s))
		}
	}
	return result, nil
}

// LookupAnd returns every value whose category set contains all of
// categories. It returns ErrEmptyQuery if no category is given and
// ErrUnknownCategory if any category was never added.
func (ix *Index[V, C]) LookupAnd(categories ...C) ([]V, error) {
	start := time.Now()

	ix.mu.RLock()
	result, err := ix.lookupAndLocked(categories)
	ix.mu.RUnlock()

	ix.metrics.RecordLookup(LookupAnd, len(categories), len(result), time.Since(start), err)
	ix.logger.LogLookup(context.Background(), LookupAnd, len(categories), len(result), err)
	return result, err
}

// Caller must hold ix.mu.RLock().
func (ix *Index[V, C]) lookupAndLocked(categories []C) ([]V, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyQuery
	}

	lists, err := ix.postingsLocked(categories)
	if err != nil {
		return nil, err
	}

	// A slot is in every queried list iff its set is a superset of the query.
	candidates := posting.Intersect(lists...)

	result := make([]V, 0, candidates.Len())
	for s := range candidates.All() {
		result = append(result, ix.values.Value(s))
	}
	return result, nil
}

// Caller must hold ix.mu.RLock().
func (ix *Index[V, C]) postingsLocked(categories []C) ([]*posting.List, error) {
	lists := make([]*posting.List, 0, len(categories))
	for _, c := range categories {
		l, ok := ix.postings[c]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownCategory, c)
		}
		lists = append(lists, l)
	}
	return lists, nil
}

// Search returns every present value for which pred holds. It scans all
// values; no index is used. pred runs without the index lock held.
func (ix *Index[V, C]) Search(pred func(V) bool) []V {
	start := time.Now()

	var result []V
	for _, v := range ix.Values() {
		if pred(v) {
			result = append(result, v)
		}
	}

	ix.metrics.RecordLookup(LookupSearch, 0, len(result), time.Since(start), nil)
	ix.logger.LogLookup(context.Background(), LookupSearch, 0, len(result), nil)
	return result
}

// Categories returns a copy of the category set of value.
// It returns ErrValueNotFound if value is not present.
func (ix *Index[V, C]) Categories(value V) ([]C, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	s, ok := ix.values.Lookup(value)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrValueNotFound, value)
	}
	return slices.Clone(ix.sets[s]), nil
}

// CategoryLen returns the number of values filed under category.
// It returns ErrUnknownCategory if category was never added.
func (ix *Index[V, C]) CategoryLen(category C) (int, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	l, ok := ix.postings[category]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownCategory, category)
	}
	return l.Len(), nil
}

// Values returns a snapshot of all present values.
func (ix *Index[V, C]) Values() []V {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	result := make([]V, 0, ix.values.Len())
	for _, v := range ix.values.All() {
		result = append(result, v)
	}
	return result
}

// AllCategories returns a snapshot of all known categories, including those
// with no values left, in the order they were first referenced.
func (ix *Index[V, C]) AllCategories() []C {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return slices.Clone(ix.categories)
}

// ContainsValue reports whether value is present.
func (ix *Index[V, C]) ContainsValue(value V) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	_, ok := ix.values.Lookup(value)
	return ok
}

// ContainsCategory reports whether category is known.
func (ix *Index[V, C]) ContainsCategory(category C) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	_, ok := ix.postings[category]
	return ok
}

// ContainsAll reports whether every given value is present.
func (ix *Index[V, C]) ContainsAll(values ...V) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	for _, v := range values {
		if _, ok := ix.values.Lookup(v); !ok {
			return false
		}
	}
	return true
}

// AddAll adds each value with no categories.
func (ix *Index[V, C]) AddAll(values ...V) {
	for _, v := range values {
		ix.Add(v)
	}
}

// RemoveAll removes each value in turn. Every value is attempted; earlier
// removals are not rolled back when a later one fails. The returned error
// joins one ErrValueNotFound per absent value.
func (ix *Index[V, C]) RemoveAll(values ...V) error {
	var errs []error
	for _, v := range values {
		if err := ix.Remove(v); err != nil {
			errs = append(errs, err)
		}
	}

	ix.logger.LogRemoveAll(context.Background(), len(values), len(errs))
	return errors.Join(errs...)
}

// IsEmpty reports whether no value is present.
func (ix *Index[V, C]) IsEmpty() bool {
	return ix.Len() == 0
}

// Len returns the number of present values.
func (ix *Index[V, C]) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return ix.values.Len()
}

// Clear drops all values and all categories.
func (ix *Index[V, C]) Clear() {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.values.Reset()
	ix.sets = nil
	ix.postings = make(map[C]*posting.List)
	ix.categories = nil
}

// All returns an iterator over a snapshot of the present values. Each value
// is yielded once; the order is stable as long as the index is not modified.
func (ix *Index[V, C]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range ix.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

// dedupe returns a fresh copy of categories with repeats dropped, keeping
// the first occurrence of each.
func dedupe[C comparable](categories []C) []C {
	out := make([]C, 0, len(categories))
	for _, c := range categories {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}
