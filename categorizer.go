package categorizer

import "iter"

// Categorizer is the read/write surface shared by Index and AutoCategorizer.
type Categorizer[V comparable, C comparable] interface {
	Add(value V, categories ...C)
	AddIfAbsent(value V, categories ...C) bool
	Replace(value V, categories ...C)
	Remove(value V) error

	LookupOr(categories ...C) ([]V, error)
	LookupAnd(categories ...C) ([]V, error)
	Search(pred func(V) bool) []V

	Categories(value V) ([]C, error)
	CategoryLen(category C) (int, error)
	Values() []V
	AllCategories() []C

	ContainsValue(value V) bool
	ContainsCategory(category C) bool
	ContainsAll(values ...V) bool

	AddAll(values ...V)
	RemoveAll(values ...V) error

	IsEmpty() bool
	Len() int
	Clear()
	All() iter.Seq[V]
}

var (
	_ Categorizer[string, string] = (*Index[string, string])(nil)
	_ Categorizer[string, string] = (*AutoCategorizer[string, string])(nil)
)
