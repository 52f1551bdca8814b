package ingest

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/bboxgo/internal/fs"
	"github.com/hupe1980/bboxgo/label"
	"github.com/hupe1980/bboxgo/record"
	"github.com/hupe1980/bboxgo/resource"
)

// HeaderMode controls whether the first row of each file is skipped.
type HeaderMode int

const (
	// HeaderAuto skips the first row when any field equals its column name
	// (case-insensitive), as in "image_id,company_id,...". Other rows,
	// including ones with malformed numbers, are parsed.
	HeaderAuto HeaderMode = iota
	// HeaderAlways skips the first row unconditionally.
	HeaderAlways
	// HeaderNever treats every row as data.
	HeaderNever
)

type options struct {
	fs          fs.FileSystem
	labels      *label.Mapper
	policy      record.Policy
	header      HeaderMode
	workers     int
	memoryLimit int64
	rateLimit   int64
	logger      *slog.Logger
	extension   string
}

// Option configures Load.
type Option func(*options)

func defaultOptions() options {
	return options{
		fs:        fs.Default,
		labels:    label.Default,
		policy:    record.Lenient,
		header:    HeaderAuto,
		workers:   runtime.GOMAXPROCS(0),
		extension: ".csv",
		logger:    slog.New(slog.DiscardHandler),
	}
}

// WithLabels sets the category vocabulary. Defaults to label.Default.
func WithLabels(m *label.Mapper) Option {
	return func(o *options) {
		if m != nil {
			o.labels = m
		}
	}
}

// WithPolicy sets the row parsing policy. Defaults to record.Lenient.
func WithPolicy(p record.Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithHeader sets the header handling. Defaults to HeaderAuto.
func WithHeader(mode HeaderMode) Option {
	return func(o *options) { o.header = mode }
}

// WithWorkers bounds how many files are parsed concurrently.
// Values below 1 mean 1. Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithMemoryLimit caps the combined size of files parsed at once.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) { o.memoryLimit = bytes }
}

// WithRateLimit caps read throughput in bytes per second.
func WithRateLimit(bytesPerSec int64) Option {
	return func(o *options) { o.rateLimit = bytesPerSec }
}

// WithLogger sets the logger used for skipped-row reports.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFileSystem replaces the filesystem. Used by tests to inject faults.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

func (o *options) controller() *resource.Controller {
	return resource.NewController(resource.Config{
		MaxWorkers:         int64(o.workers),
		MemoryLimitBytes:   o.memoryLimit,
		IOLimitBytesPerSec: o.rateLimit,
	})
}
