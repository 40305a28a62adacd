// Package categorizer provides an in-memory generic multi-category index for Go.
//
// An Index associates each value with zero or more category labels and
// answers queries by category with OR (union) and AND (superset) semantics,
// or by an ad-hoc predicate. An AutoCategorizer wraps an Index and tags
// values automatically from registered predicates at insertion time.
//
// # Quick Start
//
//	ix := categorizer.New[string, string]()
//	ix.Add("apple", "fruit", "red")
//	ix.Add("banana", "fruit", "yellow")
//
//	both, _ := ix.LookupAnd("fruit", "red")     // [apple]
//	either, _ := ix.LookupOr("red", "yellow")   // [apple banana]
//
// # Auto-Tagging
//
//	ac := categorizer.NewAuto[string, string]()
//	ac.AddCaseFunc(func(s string) bool { return len(s) > 5 }, "long")
//	ac.Add("strawberry")
//	cats, _ := ac.Categories("strawberry")      // [long]
//
// Cases are identified by their *Case handle. Registering the same handle
// twice overwrites its category; two handles wrapping identical functions are
// independent rules and both fire.
//
// # Semantics
//
//   - Add on a present value replaces its whole category set.
//   - Categories are created on first reference and persist, possibly empty,
//     until Clear.
//   - LookupOr concatenates Value Lists, so a value filed under two queried
//     categories is returned twice.
//   - Lookups naming an unknown category fail with ErrUnknownCategory;
//     LookupAnd with no category fails with ErrEmptyQuery.
//   - Remove and Categories on an absent value fail with ErrValueNotFound.
//
// # Value Lists
//
// Each present value holds a dense uint32 slot. A category's Value List is a
// Roaring Bitmap of slots, so membership is deduplicated by construction and
// LookupAnd is a bitmap intersection rather than a per-value subset scan.
//
// # Thread Safety
//
// The index is designed for single-goroutine use, but every compound
// mutation runs under one exclusive lock so both views always change
// together.
package categorizer
