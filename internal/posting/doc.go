// Package posting stores the Value List of a single category.
//
// A List is a roaring bitmap of value slots (see internal/slot). Slots are
// dense uint32 handles, so the compressed containers stay small and the
// intersection behind superset queries runs on machine words instead of
// hashing values.
//
// A slot is either in a List or not: adding a slot twice is a no-op, which
// is what keeps a value from being listed twice under one category.
package posting
