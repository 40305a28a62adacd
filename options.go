package categorizer

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures an Index or AutoCategorizer.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// WithLogger sets the logger used for debug output.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified after each operation.
//
// Example:
//
//	mc := &categorizer.BasicMetricsCollector{}
//	ix := categorizer.New[string, string](categorizer.WithMetricsCollector(mc))
//	...
//	stats := mc.GetStats()
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
