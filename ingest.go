package bboxgo

import (
	"context"
	"time"

	"github.com/hupe1980/bboxgo/ingest"
)

// LoadFromCSVTree ingests every CSV file below root and appends the parsed
// records. Rows that fail to parse are skipped and listed in the result.
// On error the collection is left unchanged.
//
// The collection's logger and parallelism are passed on; optFns are
// applied after them and may override both.
func (c *Collection) LoadFromCSVTree(ctx context.Context, root string, optFns ...ingest.Option) (*ingest.Result, error) {
	start := time.Now()

	opts := append([]ingest.Option{
		ingest.WithLogger(c.opts.logger.Logger),
		ingest.WithWorkers(c.opts.parallelism),
	}, optFns...)

	res, err := ingest.Load(ctx, root, opts...)

	files, records, skipped := 0, 0, 0
	if res != nil {
		files, records, skipped = len(res.Files), len(res.Records), len(res.Failures)
	}
	c.opts.metricsCollector.RecordIngest(files, records, skipped, time.Since(start), err)
	c.opts.logger.LogIngest(ctx, root, files, records, skipped, err)

	if err != nil {
		return nil, translateError(err)
	}
	c.records = append(c.records, res.Records...)
	return res, nil
}
