package categorizer

import (
	"context"
	"iter"
	"slices"
	"sync"
)

// Case is a registered predicate. Rules are keyed by the *Case pointer:
// two cases built from identical functions are distinct rules.
type Case[V any] struct {
	pred func(V) bool
}

// NewCase wraps pred in a new Case handle. It panics if pred is nil.
func NewCase[V any](pred func(V) bool) *Case[V] {
	if pred == nil {
		panic("categorizer: nil case predicate")
	}
	return &Case[V]{pred: pred}
}

// Match reports whether v satisfies the case.
func (c *Case[V]) Match(v V) bool {
	return c.pred(v)
}

type rule[V any, C comparable] struct {
	c        *Case[V]
	category C
}

// AutoCategorizer files values under categories derived from registered
// cases in addition to the ones supplied by the caller.
//
// It owns an Index and delegates to it; every insert path (Add,
// AddIfAbsent, Replace, AddAll) evaluates the rules first.
type AutoCategorizer[V comparable, C comparable] struct {
	index *Index[V, C]

	mu    sync.RWMutex
	rules []rule[V, C] // registration order
	pos   map[*Case[V]]int

	logger  *Logger
	metrics MetricsCollector
}

// NewAuto creates an AutoCategorizer with an empty index and no rules.
func NewAuto[V comparable, C comparable](optFns ...Option) *AutoCategorizer[V, C] {
	o := applyOptions(optFns)
	return &AutoCategorizer[V, C]{
		index:   New[V, C](optFns...),
		pos:     make(map[*Case[V]]int),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// AddCase registers c under category. Registering the same *Case again
// overwrites its category and keeps its evaluation position.
// It panics if c is nil or was not built by NewCase, so a bad registration
// fails here instead of inside a later Add.
func (a *AutoCategorizer[V, C]) AddCase(c *Case[V], category C) {
	if c == nil || c.pred == nil {
		panic("categorizer: nil case")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if i, ok := a.pos[c]; ok {
		a.rules[i].category = category
		return
	}
	a.pos[c] = len(a.rules)
	a.rules = append(a.rules, rule[V, C]{c: c, category: category})
}

// AddCaseFunc registers pred under category as a new case and returns its
// handle.
func (a *AutoCategorizer[V, C]) AddCaseFunc(pred func(V) bool, category C) *Case[V] {
	c := NewCase(pred)
	a.AddCase(c, category)
	return c
}

// RemoveCase unregisters c. Values already added keep their categories.
func (a *AutoCategorizer[V, C]) RemoveCase(c *Case[V]) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	i, ok := a.pos[c]
	if !ok {
		return false
	}
	a.rules = slices.Delete(a.rules, i, i+1)
	delete(a.pos, c)
	for j := i; j < len(a.rules); j++ {
		a.pos[a.rules[j].c] = j
	}
	return true
}

// Cases returns the number of registered cases.
func (a *AutoCategorizer[V, C]) Cases() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.rules)
}

// categorize returns the categories of every matching case in registration
// order followed by explicit, with repeats removed.
func (a *AutoCategorizer[V, C]) categorize(value V, explicit []C) []C {
	a.mu.RLock()
	rules := slices.Clone(a.rules)
	a.mu.RUnlock()

	matched := make([]C, 0, len(rules)+len(explicit))
	for _, r := range rules {
		if r.c.Match(value) {
			matched = append(matched, r.category)
		}
	}
	hits := len(matched)

	a.metrics.RecordRuleMatch(len(rules), hits)
	a.logger.LogRules(context.Background(), len(rules), hits)

	return dedupe(append(matched, explicit...))
}

// Add evaluates every case against value and files it under the matched
// categories plus the given ones. An already present value has its whole
// category set replaced.
func (a *AutoCategorizer[V, C]) Add(value V, categories ...C) {
	a.index.Add(value, a.categorize(value, categories)...)
}

// AddIfAbsent is Add for values that are not present yet.
func (a *AutoCategorizer[V, C]) AddIfAbsent(value V, categories ...C) bool {
	if a.index.ContainsValue(value) {
		return false
	}
	return a.index.AddIfAbsent(value, a.categorize(value, categories)...)
}

// Replace is Add; rules are evaluated again.
func (a *AutoCategorizer[V, C]) Replace(value V, categories ...C) {
	a.Add(value, categories...)
}

// AddAll adds each value with only the categories its cases assign.
func (a *AutoCategorizer[V, C]) AddAll(values ...V) {
	for _, v := range values {
		a.Add(v)
	}
}

// Remove removes value from the owned index. See Index.Remove.
func (a *AutoCategorizer[V, C]) Remove(value V) error { return a.index.Remove(value) }

// RemoveAll removes each value from the owned index. See Index.RemoveAll.
func (a *AutoCategorizer[V, C]) RemoveAll(values ...V) error { return a.index.RemoveAll(values...) }

// LookupOr returns the concatenated Value Lists of categories. See Index.LookupOr.
func (a *AutoCategorizer[V, C]) LookupOr(categories ...C) ([]V, error) {
	return a.index.LookupOr(categories...)
}

// LookupAnd returns the values filed under all categories. See Index.LookupAnd.
func (a *AutoCategorizer[V, C]) LookupAnd(categories ...C) ([]V, error) {
	return a.index.LookupAnd(categories...)
}

// Search returns every present value for which pred holds. See Index.Search.
func (a *AutoCategorizer[V, C]) Search(pred func(V) bool) []V { return a.index.Search(pred) }

// Categories returns a copy of the category set of value. See Index.Categories.
func (a *AutoCategorizer[V, C]) Categories(value V) ([]C, error) { return a.index.Categories(value) }

// CategoryLen returns the number of values filed under category.
func (a *AutoCategorizer[V, C]) CategoryLen(category C) (int, error) {
	return a.index.CategoryLen(category)
}

// Values returns a snapshot of all present values.
func (a *AutoCategorizer[V, C]) Values() []V { return a.index.Values() }

// AllCategories returns a snapshot of all known categories.
func (a *AutoCategorizer[V, C]) AllCategories() []C { return a.index.AllCategories() }

// ContainsValue reports whether value is present.
func (a *AutoCategorizer[V, C]) ContainsValue(value V) bool { return a.index.ContainsValue(value) }

// ContainsCategory reports whether category is known.
func (a *AutoCategorizer[V, C]) ContainsCategory(category C) bool {
	return a.index.ContainsCategory(category)
}

// ContainsAll reports whether every given value is present.
func (a *AutoCategorizer[V, C]) ContainsAll(values ...V) bool { return a.index.ContainsAll(values...) }

// IsEmpty reports whether no value is present.
func (a *AutoCategorizer[V, C]) IsEmpty() bool { return a.index.IsEmpty() }

// Len returns the number of present values.
func (a *AutoCategorizer[V, C]) Len() int { return a.index.Len() }

// Clear drops all values and categories from the owned index. Registered
// cases are kept.
func (a *AutoCategorizer[V, C]) Clear() { a.index.Clear() }

// All returns an iterator over a snapshot of the present values. See Index.All.
func (a *AutoCategorizer[V, C]) All() iter.Seq[V] { return a.index.All() }
