package categorizer

import (
	"sync/atomic"
	"time"
)

// LookupKind identifies the lookup reported to a MetricsCollector.
type LookupKind int

const (
	// LookupOr is a union lookup (LookupOr).
	LookupOr LookupKind = iota
	// LookupAnd is a superset lookup (LookupAnd).
	LookupAnd
	// LookupSearch is a predicate scan (Search).
	LookupSearch
)

func (k LookupKind) String() string {
	switch k {
	case LookupOr:
		return "or"
	case LookupAnd:
		return "and"
	case LookupSearch:
		return "search"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// promcollector package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordAdd is called after each insert. categories is the size of the
	// recorded category set, replaced is true if the value was present.
	RecordAdd(categories int, replaced bool, duration time.Duration)

	// RecordRemove is called after each remove, err is nil if successful.
	RecordRemove(duration time.Duration, err error)

	// RecordLookup is called after each LookupOr, LookupAnd and Search.
	// categories is the number of queried categories (0 for Search).
	RecordLookup(kind LookupKind, categories, results int, duration time.Duration, err error)

	// RecordRuleMatch is called by AutoCategorizer after evaluating its rules
	// against one value.
	RecordRuleMatch(evaluated, matched int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(int, bool, time.Duration)                      {}
func (NoopMetricsCollector) RecordRemove(time.Duration, error)                       {}
func (NoopMetricsCollector) RecordLookup(LookupKind, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRuleMatch(int, int)                                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount         atomic.Int64
	ReplaceCount     atomic.Int64
	AddTotalNanos    atomic.Int64
	RemoveCount      atomic.Int64
	RemoveErrors     atomic.Int64
	LookupCount      atomic.Int64
	LookupErrors     atomic.Int64
	LookupResults    atomic.Int64
	LookupTotalNanos atomic.Int64
	RulesEvaluated   atomic.Int64
	RulesMatched     atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(categories int, replaced bool, duration time.Duration) {
	b.AddCount.Add(1)
	if replaced {
		b.ReplaceCount.Add(1)
	}
	b.AddTotalNanos.Add(duration.Nanoseconds())
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, err error) {
	b.RemoveCount.Add(1)
	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(kind LookupKind, categories, results int, duration time.Duration, err error) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	b.LookupResults.Add(int64(results))
	if err != nil {
		b.LookupErrors.Add(1)
	}
}

// RecordRuleMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRuleMatch(evaluated, matched int) {
	b.RulesEvaluated.Add(int64(evaluated))
	b.RulesMatched.Add(int64(matched))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:       b.AddCount.Load(),
		ReplaceCount:   b.ReplaceCount.Load(),
		AddAvgNanos:    avg(b.AddTotalNanos.Load(), b.AddCount.Load()),
		RemoveCount:    b.RemoveCount.Load(),
		RemoveErrors:   b.RemoveErrors.Load(),
		LookupCount:    b.LookupCount.Load(),
		LookupErrors:   b.LookupErrors.Load(),
		LookupResults:  b.LookupResults.Load(),
		LookupAvgNanos: avg(b.LookupTotalNanos.Load(), b.LookupCount.Load()),
		RulesEvaluated: b.RulesEvaluated.Load(),
		RulesMatched:   b.RulesMatched.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	AddCount       int64
	ReplaceCount   int64
	AddAvgNanos    int64
	RemoveCount    int64
	RemoveErrors   int64
	LookupCount    int64
	LookupErrors   int64
	LookupResults  int64
	LookupAvgNanos int64
	RulesEvaluated int64
	RulesMatched   int64
}
