package bboxgo

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/hupe1980/bboxgo/record"
)

// FindByID returns the index of the first record whose ID is id, or
// NotFound.
func (c *Collection) FindByID(id string) int {
	defer c.observe(OpFindByID, time.Now())

	var best atomic.Int64
	best.Store(math.MaxInt64)

	c.forEachSpan(len(c.records), func(_ int, s span) {
		for i := s.lo; i < s.hi; i++ {
			if int64(i) >= best.Load() {
				return
			}
			if c.records[i].ID == id {
				lowerTo(&best, int64(i))
				return
			}
		}
	})

	if b := best.Load(); b != math.MaxInt64 {
		return int(b)
	}
	return NotFound
}

func lowerTo(v *atomic.Int64, x int64) {
	for {
		cur := v.Load()
		if x >= cur || v.CompareAndSwap(cur, x) {
			return
		}
	}
}

// FindByPath returns a new Collection with every record on path, in their
// current order. The match is exact.
func (c *Collection) FindByPath(path string) *Collection {
	defer c.observe(OpFindByPath, time.Now())

	parts := make([][]record.Record, len(splitRange(len(c.records), c.opts.parallelism, c.opts.minChunk)))
	c.forEachSpan(len(c.records), func(i int, s span) {
		for j := s.lo; j < s.hi; j++ {
			if c.records[j].Path == path {
				parts[i] = append(parts[i], c.records[j])
			}
		}
	})

	var out []record.Record
	for _, p := range parts {
		out = append(out, p...)
	}
	return c.derive(out)
}
