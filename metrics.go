package bboxgo

import (
	"sync/atomic"
	"time"
)

// Operation names passed to MetricsCollector.RecordOperation.
const (
	OpFindByID          = "find_by_id"
	OpFindByPath        = "find_by_path"
	OpSortByID          = "sort_by_id"
	OpSortByPath        = "sort_by_path"
	OpPartitionByLabel  = "partition_by_label"
	OpRandomSubsample   = "random_subsample"
	OpImageSizeStats    = "image_size_stats"
	OpBoxSizeStats      = "box_size_stats"
	OpReplaceExtensions = "replace_extensions"
	OpRefreshIDs        = "refresh_ids"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see
// metrics/prom for a Prometheus adapter.
type MetricsCollector interface {
	// RecordLoad is called after each load from a file or blob store.
	// records is the number of records decoded (0 on error).
	RecordLoad(records int, duration time.Duration, err error)

	// RecordSave is called after each save to a file or blob store.
	RecordSave(records int, duration time.Duration, err error)

	// RecordIngest is called after each CSV tree ingestion.
	RecordIngest(files, records, skipped int, duration time.Duration, err error)

	// RecordOperation is called after each in-memory dataset operation.
	// op is one of the Op* constants, records the collection length.
	RecordOperation(op string, records int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)             {}
func (NoopMetricsCollector) RecordSave(int, time.Duration, error)             {}
func (NoopMetricsCollector) RecordIngest(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordOperation(string, int, time.Duration)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount           atomic.Int64
	LoadErrors          atomic.Int64
	LoadRecords         atomic.Int64
	LoadTotalNanos      atomic.Int64
	SaveCount           atomic.Int64
	SaveErrors          atomic.Int64
	SaveRecords         atomic.Int64
	SaveTotalNanos      atomic.Int64
	IngestCount         atomic.Int64
	IngestErrors        atomic.Int64
	IngestFiles         atomic.Int64
	IngestRecords       atomic.Int64
	IngestSkipped       atomic.Int64
	OperationCount      atomic.Int64
	OperationTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(records int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadRecords.Add(int64(records))
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(records int, duration time.Duration, err error) {
	b.SaveCount.Add(1)
	b.SaveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.SaveRecords.Add(int64(records))
}

// RecordIngest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIngest(files, records, skipped int, _ time.Duration, err error) {
	b.IngestCount.Add(1)
	if err != nil {
		b.IngestErrors.Add(1)
		return
	}
	b.IngestFiles.Add(int64(files))
	b.IngestRecords.Add(int64(records))
	b.IngestSkipped.Add(int64(skipped))
}

// RecordOperation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOperation(_ string, _ int, duration time.Duration) {
	b.OperationCount.Add(1)
	b.OperationTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of the collected counters.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
		LoadRecords:    b.LoadRecords.Load(),
		LoadAvgNanos:   avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		SaveCount:      b.SaveCount.Load(),
		SaveErrors:     b.SaveErrors.Load(),
		SaveRecords:    b.SaveRecords.Load(),
		SaveAvgNanos:   avg(b.SaveTotalNanos.Load(), b.SaveCount.Load()),
		IngestCount:    b.IngestCount.Load(),
		IngestErrors:   b.IngestErrors.Load(),
		IngestFiles:    b.IngestFiles.Load(),
		IngestRecords:  b.IngestRecords.Load(),
		IngestSkipped:  b.IngestSkipped.Load(),
		OperationCount: b.OperationCount.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount      int64
	LoadErrors     int64
	LoadRecords    int64
	LoadAvgNanos   int64
	SaveCount      int64
	SaveErrors     int64
	SaveRecords    int64
	SaveAvgNanos   int64
	IngestCount    int64
	IngestErrors   int64
	IngestFiles    int64
	IngestRecords  int64
	IngestSkipped  int64
	OperationCount int64
}
