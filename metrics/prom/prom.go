// Package prom adapts bboxgo.MetricsCollector to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := prom.New(reg, "bboxgo")
//	coll := bboxgo.New(bboxgo.WithMetricsCollector(mc))
package prom

import (
	"time"

	"github.com/hupe1980/bboxgo"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector records collection metrics as Prometheus series.
type Collector struct {
	latency *prometheus.HistogramVec
	records *prometheus.CounterVec
	files   prometheus.Counter
	skipped prometheus.Counter
	size    prometheus.Gauge
}

var _ bboxgo.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg under
// namespace.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of collection operations",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"op", "status"}),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Records moved by loads, saves and ingestion",
		}, []string{"direction"}),
		files: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_files_total",
			Help:      "CSV files read by ingestion",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_skipped_rows_total",
			Help:      "CSV rows skipped because they failed to parse",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_records",
			Help:      "Collection length seen by the most recent operation",
		}),
	}

	for _, m := range []prometheus.Collector{c.latency, c.records, c.files, c.skipped, c.size} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordLoad implements bboxgo.MetricsCollector.
func (c *Collector) RecordLoad(records int, d time.Duration, err error) {
	c.latency.WithLabelValues("load", status(err)).Observe(d.Seconds())
	if err == nil {
		c.records.WithLabelValues("loaded").Add(float64(records))
		c.size.Set(float64(records))
	}
}

// RecordSave implements bboxgo.MetricsCollector.
func (c *Collector) RecordSave(records int, d time.Duration, err error) {
	c.latency.WithLabelValues("save", status(err)).Observe(d.Seconds())
	if err == nil {
		c.records.WithLabelValues("saved").Add(float64(records))
	}
}

// RecordIngest implements bboxgo.MetricsCollector.
func (c *Collector) RecordIngest(files, records, skipped int, d time.Duration, err error) {
	c.latency.WithLabelValues("ingest", status(err)).Observe(d.Seconds())
	if err != nil {
		return
	}
	c.files.Add(float64(files))
	c.records.WithLabelValues("ingested").Add(float64(records))
	c.skipped.Add(float64(skipped))
}

// RecordOperation implements bboxgo.MetricsCollector.
func (c *Collector) RecordOperation(op string, records int, d time.Duration) {
	c.latency.WithLabelValues(op, "success").Observe(d.Seconds())
	c.size.Set(float64(records))
}
