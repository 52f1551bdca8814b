package bboxgo

import (
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bboxgo/record"
)

// PartitionByLabel moves every record labelled lbl to the front, keeping
// the relative order within both groups, and returns how many matched.
func (c *Collection) PartitionByLabel(lbl string) int {
	defer c.observe(OpPartitionByLabel, time.Now())

	n := len(c.records)
	if uint64(n) > math.MaxUint32 {
		return partitionStable(c.records, lbl)
	}

	masks := make([]*roaring.Bitmap, len(splitRange(n, c.opts.parallelism, c.opts.minChunk)))
	c.forEachSpan(n, func(i int, s span) {
		m := roaring.New()
		for j := s.lo; j < s.hi; j++ {
			if c.records[j].Label == lbl {
				m.Add(uint32(j))
			}
		}
		masks[i] = m
	})
	mask := roaring.FastOr(masks...)

	k := int(mask.GetCardinality())
	if k == 0 || k == n {
		return k
	}

	out := make([]record.Record, 0, n)
	it := mask.Iterator()
	for it.HasNext() {
		out = append(out, c.records[it.Next()])
	}
	for j := range c.records {
		if !mask.Contains(uint32(j)) {
			out = append(out, c.records[j])
		}
	}
	copy(c.records, out)
	return k
}

func partitionStable(rs []record.Record, lbl string) int {
	rest := make([]record.Record, 0, len(rs))
	k := 0
	for _, r := range rs {
		if r.Label == lbl {
			rs[k] = r
			k++
		} else {
			rest = append(rest, r)
		}
	}
	copy(rs[k:], rest)
	return k
}
