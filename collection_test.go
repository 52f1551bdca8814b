package bboxgo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hupe1980/bboxgo/codec"
	"github.com/hupe1980/bboxgo/label"
	"github.com/hupe1980/bboxgo/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecordsCopies(t *testing.T) {
	rs := fixture(t, 1, 5)
	c := FromRecords(rs)
	rs[0].Path = "changed"

	got, err := c.At(0)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", got.Path)
	assert.Equal(t, 5, c.Len())
}

func TestAtAndSet(t *testing.T) {
	c := FromRecords(fixture(t, 2, 3))

	_, err := c.At(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	var oob *ErrIndexOutOfBounds
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 3, oob.Index)
	assert.Equal(t, 3, oob.Len)

	_, err = c.At(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	r := box("/a.jpg", "shoes", 10, 10, 0, 0, 5, 5)
	require.NoError(t, c.Set(1, r))
	got, err := c.At(1)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	require.ErrorIs(t, c.Set(9, r), ErrIndexOutOfRange)
}

func TestSlice(t *testing.T) {
	rs := fixture(t, 3, 10)
	c := FromRecords(rs)

	s, err := c.Slice(2, 5)
	require.NoError(t, err)
	assert.Equal(t, rs[2:5], s.Records())

	// The slice owns its records.
	require.NoError(t, s.Set(0, box("/x.jpg", "tops", 1, 1, 0, 0, 1, 1)))
	orig, _ := c.At(2)
	assert.Equal(t, rs[2], orig)

	empty, err := c.Slice(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	full, err := c.Slice(0, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, full.Len())

	tests := []struct {
		name       string
		start, end int
	}{
		{"negative start", -1, 2},
		{"end before start", 5, 4},
		{"end past len", 3, 11},
		{"start past len", 11, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Slice(tt.start, tt.end)
			require.ErrorIs(t, err, ErrIndexOutOfRange)
		})
	}
}

func TestAppendPopClear(t *testing.T) {
	c := New()
	_, err := c.Pop()
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	a := box("/a.jpg", "shoes", 10, 10, 0, 0, 1, 1)
	b := box("/b.jpg", "hats", 10, 10, 0, 0, 1, 1)
	c.Append(a, b)
	assert.Equal(t, 2, c.Len())

	got, err := c.Pop()
	require.NoError(t, err)
	assert.Equal(t, b, got)
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestAllRestartable(t *testing.T) {
	c := FromRecords(fixture(t, 4, 6))

	first := ids(c)
	second := ids(c)
	assert.Equal(t, first, second)
	assert.Len(t, first, 6)

	count := 0
	for range c.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestCloneIndependent(t *testing.T) {
	c := FromRecords(fixture(t, 5, 4))
	d := c.Clone()
	d.Append(box("/z.jpg", "tie", 1, 1, 0, 0, 1, 1))
	c.SortByID()

	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 5, d.Len())
}

func TestLabelCounts(t *testing.T) {
	c := FromRecords([]record.Record{
		box("/a.jpg", "shoes", 1, 1, 0, 0, 1, 1),
		box("/a.jpg", "shoes", 1, 1, 0, 0, 1, 0),
		box("/b.jpg", "bag", 1, 1, 0, 0, 1, 1),
	})
	assert.Equal(t, map[string]int{"shoes": 2, "bag": 1}, c.LabelCounts())
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	other := errors.New("other")
	assert.Equal(t, other, translateError(other))

	err := translateError(fmt.Errorf("decode: %w", codec.ErrCorruptData))
	assert.ErrorIs(t, err, ErrCorruptData)
	assert.ErrorIs(t, err, codec.ErrCorruptData)

	assert.ErrorIs(t, fmt.Errorf("row: %w", label.ErrUnknownLabel), ErrUnknownLabel)
}
