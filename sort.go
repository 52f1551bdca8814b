package bboxgo

import (
	"cmp"
	"slices"
	"time"

	"github.com/hupe1980/bboxgo/record"
	"golang.org/x/sync/errgroup"
)

// SortByID orders records by ascending ID. Records with equal IDs keep
// their relative order, so duplicates end up adjacent.
func (c *Collection) SortByID() {
	defer c.observe(OpSortByID, time.Now())
	c.sortStable(record.Compare)
}

// SortByPath orders records by path, then by ID within a path.
func (c *Collection) SortByPath() {
	defer c.observe(OpSortByPath, time.Now())
	c.sortStable(comparePath)
}

func comparePath(a, b record.Record) int {
	if n := cmp.Compare(a.Path, b.Path); n != 0 {
		return n
	}
	return record.Compare(a, b)
}

// sortStable sorts spans concurrently and merges neighbours pairwise.
func (c *Collection) sortStable(compare func(a, b record.Record) int) {
	spans := c.forEachSpan(len(c.records), func(_ int, s span) {
		slices.SortStableFunc(c.records[s.lo:s.hi], compare)
	})
	if len(spans) <= 1 {
		return
	}

	src := c.records
	dst := make([]record.Record, len(src))
	for len(spans) > 1 {
		next := make([]span, 0, (len(spans)+1)/2)
		var g errgroup.Group
		for i := 0; i < len(spans); i += 2 {
			a := spans[i]
			if i+1 == len(spans) {
				copy(dst[a.lo:a.hi], src[a.lo:a.hi])
				next = append(next, a)
				continue
			}
			b := spans[i+1]
			g.Go(func() error {
				merge(dst[a.lo:b.hi], src[a.lo:a.hi], src[b.lo:b.hi], compare)
				return nil
			})
			next = append(next, span{lo: a.lo, hi: b.hi})
		}
		_ = g.Wait()
		src, dst = dst, src
		spans = next
	}
	if &src[0] != &c.records[0] {
		copy(c.records, src)
	}
}

// merge interleaves sorted left and right into dst, taking from left on ties.
func merge(dst, left, right []record.Record, compare func(a, b record.Record) int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if compare(right[j], left[i]) < 0 {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
