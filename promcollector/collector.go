// Package promcollector exposes categorizer metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc := promcollector.New("shop")
//	reg.MustRegister(mc)
//	ix := categorizer.New[string, string](categorizer.WithMetricsCollector(mc))
package promcollector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/categorizer"
)

// Collector implements categorizer.MetricsCollector and prometheus.Collector.
type Collector struct {
	opLatency *prometheus.HistogramVec
	adds      *prometheus.CounterVec
	removes   *prometheus.CounterVec
	lookups   *prometheus.CounterVec
	results   *prometheus.HistogramVec
	rules     *prometheus.CounterVec
}

var _ categorizer.MetricsCollector = (*Collector)(nil)

// New creates a Collector whose metric names are prefixed with namespace.
func New(namespace string) *Collector {
	return &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "categorizer_operation_latency_seconds",
			Help:      "Latency of index operations",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"op", "status"}),
		adds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "categorizer_adds_total",
			Help:      "Total values added, by whether an existing value was replaced",
		}, []string{"mode"}),
		removes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "categorizer_removes_total",
			Help:      "Total remove calls",
		}, []string{"status"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "categorizer_lookups_total",
			Help:      "Total lookups",
		}, []string{"kind", "status"}),
		results: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "categorizer_lookup_results",
			Help:      "Number of values returned per lookup",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"kind"}),
		rules: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "categorizer_rule_evaluations_total",
			Help:      "Rule evaluations, by outcome",
		}, []string{"outcome"}),
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordAdd implements categorizer.MetricsCollector.
func (c *Collector) RecordAdd(categories int, replaced bool, duration time.Duration) {
	mode := "insert"
	if replaced {
		mode = "replace"
	}
	c.adds.WithLabelValues(mode).Inc()
	c.opLatency.WithLabelValues("add", "ok").Observe(duration.Seconds())
}

// RecordRemove implements categorizer.MetricsCollector.
func (c *Collector) RecordRemove(duration time.Duration, err error) {
	c.removes.WithLabelValues(status(err)).Inc()
	c.opLatency.WithLabelValues("remove", status(err)).Observe(duration.Seconds())
}

// RecordLookup implements categorizer.MetricsCollector.
func (c *Collector) RecordLookup(kind categorizer.LookupKind, categories, results int, duration time.Duration, err error) {
	c.lookups.WithLabelValues(kind.String(), status(err)).Inc()
	c.opLatency.WithLabelValues("lookup_"+kind.String(), status(err)).Observe(duration.Seconds())
	if err == nil {
		c.results.WithLabelValues(kind.String()).Observe(float64(results))
	}
}

// RecordRuleMatch implements categorizer.MetricsCollector.
func (c *Collector) RecordRuleMatch(evaluated, matched int) {
	c.rules.WithLabelValues("matched").Add(float64(matched))
	c.rules.WithLabelValues("missed").Add(float64(evaluated - matched))
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.opLatency.Describe(ch)
	c.adds.Describe(ch)
	c.removes.Describe(ch)
	c.lookups.Describe(ch)
	c.results.Describe(ch)
	c.rules.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.opLatency.Collect(ch)
	c.adds.Collect(ch)
	c.removes.Collect(ch)
	c.lookups.Collect(ch)
	c.results.Collect(ch)
	c.rules.Collect(ch)
}
