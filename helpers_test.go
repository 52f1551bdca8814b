package bboxgo

import (
	"testing"

	"github.com/hupe1980/bboxgo/record"
	"github.com/hupe1980/bboxgo/testutil"
)

// withMinChunk lets small fixtures exercise the parallel paths.
func withMinChunk(n int) Option {
	return func(o *options) { o.minChunk = n }
}

func parallel() []Option {
	return []Option{WithParallelism(4), withMinChunk(2)}
}

func box(path, lbl string, w, h, xmin, ymin, xmax, ymax int32) record.Record {
	r := record.Record{
		Path: path, Width: w, Height: h,
		XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax,
		Label: lbl,
	}
	r.RefreshID()
	return r
}

func fixture(t *testing.T, seed int64, n int) []record.Record {
	t.Helper()
	return testutil.Records(testutil.NewRNG(seed), n)
}

func ids(c *Collection) []string {
	out := make([]string, 0, c.Len())
	for _, r := range c.All() {
		out = append(out, r.ID)
	}
	return out
}
