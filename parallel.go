package bboxgo

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// defaultMinChunk is the smallest range handed to a separate goroutine.
const defaultMinChunk = 4096

type span struct{ lo, hi int }

// splitRange cuts [0, n) into at most parts contiguous spans of at least
// minSize elements (the last may be shorter).
func splitRange(n, parts, minSize int) []span {
	if n <= 0 {
		return nil
	}
	if minSize < 1 {
		minSize = 1
	}
	parts = max(1, min(parts, (n+minSize-1)/minSize))
	size := (n + parts - 1) / parts

	spans := make([]span, 0, parts)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, span{lo: lo, hi: min(lo+size, n)})
	}
	return spans
}

// forEachSpan runs fn over the spans of [0, n), concurrently when there is
// more than one, and returns the spans in order.
func (c *Collection) forEachSpan(n int, fn func(i int, s span)) []span {
	spans := splitRange(n, c.opts.parallelism, c.opts.minChunk)
	if len(spans) <= 1 {
		for i, s := range spans {
			fn(i, s)
		}
		return spans
	}

	var g errgroup.Group
	for i, s := range spans {
		g.Go(func() error {
			fn(i, s)
			return nil
		})
	}
	_ = g.Wait()
	return spans
}

func (c *Collection) observe(op string, start time.Time) {
	c.opts.metricsCollector.RecordOperation(op, len(c.records), time.Since(start))
}
