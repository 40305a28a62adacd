// Package testutil provides testing utilities for categorizer.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source and helpers to draw
// values and category subsets from fixed vocabularies, which the property
// tests use to build random add/replace/remove sequences.
//
// # Random Generation
//
//	rng := testutil.NewRNG(seed)
//	v := testutil.Pick(rng, values)
//	cats := testutil.Subset(rng, categories, 3)
package testutil
