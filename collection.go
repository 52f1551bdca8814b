package bboxgo

import (
	"iter"
	"slices"

	"github.com/hupe1980/bboxgo/record"
)

// NotFound is the index FindByID returns when no record matches.
const NotFound = -1

// Collection is an ordered, in-memory sequence of annotation records.
//
// A Collection is not safe for concurrent mutation; callers that share one
// across goroutines must synchronize. Operations may use several goroutines
// internally but always produce the same result as a sequential run.
type Collection struct {
	records []record.Record
	opts    options
}

// New returns an empty Collection.
func New(optFns ...Option) *Collection {
	return &Collection{opts: applyOptions(optFns)}
}

// FromRecords returns a Collection holding a copy of rs.
func FromRecords(rs []record.Record, optFns ...Option) *Collection {
	c := New(optFns...)
	c.records = slices.Clone(rs)
	return c
}

func (c *Collection) derive(rs []record.Record) *Collection {
	return &Collection{records: rs, opts: c.opts}
}

// Len returns the number of records.
func (c *Collection) Len() int { return len(c.records) }

// At returns the record at index i.
func (c *Collection) At(i int) (record.Record, error) {
	if i < 0 || i >= len(c.records) {
		return record.Record{}, &ErrIndexOutOfBounds{Index: i, Len: len(c.records)}
	}
	return c.records[i], nil
}

// Set replaces the record at index i. The record is stored as given; call
// RefreshID first if its fields changed.
func (c *Collection) Set(i int, r record.Record) error {
	if i < 0 || i >= len(c.records) {
		return &ErrIndexOutOfBounds{Index: i, Len: len(c.records)}
	}
	c.records[i] = r
	return nil
}

// Slice returns a new Collection with a copy of records [start, end).
func (c *Collection) Slice(start, end int) (*Collection, error) {
	n := len(c.records)
	if start < 0 || start > n {
		return nil, &ErrIndexOutOfBounds{Index: start, Len: n}
	}
	if end < start || end > n {
		return nil, &ErrIndexOutOfBounds{Index: end, Len: n}
	}
	return c.derive(slices.Clone(c.records[start:end])), nil
}

// Append adds records to the end.
func (c *Collection) Append(rs ...record.Record) {
	c.records = append(c.records, rs...)
}

// Clear removes all records.
func (c *Collection) Clear() {
	clear(c.records)
	c.records = c.records[:0]
}

// Pop removes and returns the last record.
func (c *Collection) Pop() (record.Record, error) {
	n := len(c.records)
	if n == 0 {
		return record.Record{}, &ErrIndexOutOfBounds{Index: -1, Len: 0}
	}
	r := c.records[n-1]
	c.records[n-1] = record.Record{}
	c.records = c.records[:n-1]
	return r, nil
}

// All iterates over index and record pairs. Each call starts from the
// beginning.
func (c *Collection) All() iter.Seq2[int, record.Record] {
	return func(yield func(int, record.Record) bool) {
		for i, r := range c.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Records returns a copy of the records.
func (c *Collection) Records() []record.Record {
	return slices.Clone(c.records)
}

// Clone returns an independent copy sharing the same options.
func (c *Collection) Clone() *Collection {
	return c.derive(slices.Clone(c.records))
}

// LabelCounts returns how many records carry each label.
func (c *Collection) LabelCounts() map[string]int {
	counts := make(map[string]int)
	for i := range c.records {
		counts[c.records[i].Label]++
	}
	return counts
}
