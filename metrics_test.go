package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	ix := New[string, string](WithMetricsCollector(mc))

	ix.Add("apple", "fruit")
	ix.Add("apple", "fruit", "red")
	assert.True(t, ix.AddIfAbsent("banana", "fruit"))
	assert.False(t, ix.AddIfAbsent("banana", "fruit"))

	_, err := ix.LookupOr("fruit")
	require.NoError(t, err)
	_, err = ix.LookupAnd()
	require.Error(t, err)
	ix.Search(func(string) bool { return true })

	require.NoError(t, ix.Remove("apple"))
	require.Error(t, ix.Remove("apple"))

	stats := mc.GetStats()
	assert.Equal(t, int64(3), stats.AddCount)
	assert.Equal(t, int64(1), stats.ReplaceCount)
	assert.Equal(t, int64(2), stats.RemoveCount)
	assert.Equal(t, int64(1), stats.RemoveErrors)
	assert.Equal(t, int64(3), stats.LookupCount)
	assert.Equal(t, int64(1), stats.LookupErrors)
	assert.Equal(t, int64(4), stats.LookupResults)
	assert.GreaterOrEqual(t, stats.LookupAvgNanos, int64(0))
}

func TestBasicMetricsCollector_EmptyStats(t *testing.T) {
	mc := &BasicMetricsCollector{}
	stats := mc.GetStats()
	assert.Zero(t, stats.AddAvgNanos)
	assert.Zero(t, stats.LookupAvgNanos)
}

func TestWithMetricsCollector_NilFallsBackToNoop(t *testing.T) {
	ix := New[string, string](WithMetricsCollector(nil), WithLogger(nil))
	assert.NotPanics(t, func() {
		ix.Add("apple", "fruit")
		_, _ = ix.LookupOr("fruit")
	})
}

func TestLookupKind_String(t *testing.T) {
	assert.Equal(t, "or", LookupOr.String())
	assert.Equal(t, "and", LookupAnd.String())
	assert.Equal(t, "search", LookupSearch.String())
	assert.Equal(t, "unknown", LookupKind(99).String())
}
