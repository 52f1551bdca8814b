package bboxgo

import (
	"log/slog"
	"runtime"
)

type options struct {
	parallelism      int
	minChunk         int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Collection.
type Option func(*options)

// WithParallelism bounds the goroutines used by data-parallel operations
// (search, sort, partition). Values below 1 mean sequential execution.
// Defaults to GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bboxgo.BasicMetricsCollector{}
//	coll := bboxgo.New(bboxgo.WithMetricsCollector(metrics))
//	// ... use coll ...
//	stats := metrics.GetStats()
//	fmt.Printf("Loads: %d, avg latency: %dns\n", stats.LoadCount, stats.LoadAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bboxgo.NewJSONLogger(slog.LevelInfo)
//	coll := bboxgo.New(bboxgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		parallelism:      runtime.GOMAXPROCS(0),
		minChunk:         defaultMinChunk,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
