package bboxgo

import (
	"testing"

	"github.com/hupe1980/bboxgo/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageSizeStats(t *testing.T) {
	c := FromRecords([]record.Record{
		box("/a.jpg", "tops", 150, 220, 0, 0, 10, 10),
		box("/a.jpg", "bag", 150, 220, 0, 0, 20, 20),
		box("/b.jpg", "bag", 99, 300, 0, 0, 20, 20),
	})

	s, err := c.ImageSizeStats(100)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 1, 100: 1}, s.Width)
	assert.Equal(t, map[int]int{200: 1, 300: 1}, s.Height)

	assert.Equal(t, []Bin{{Start: 0, Count: 1}, {Start: 100, Count: 1}}, s.Bins(AxisWidth))
	assert.Equal(t, []Bin{{Start: 200, Count: 1}, {Start: 300, Count: 1}}, s.Bins(AxisHeight))
}

func TestBoxSizeStats(t *testing.T) {
	c := FromRecords([]record.Record{
		box("/a.jpg", "tops", 500, 500, 10, 10, 60, 35),
		box("/a.jpg", "bag", 500, 500, 0, 0, 400, 400),
		box("/b.jpg", "bag", 500, 500, 0, 0, 55, 5),
	})

	s, err := c.BoxSizeStats(50)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{50: 2}, s.Width)
	assert.Equal(t, map[int]int{0: 2}, s.Height)
}

func TestSizeStatsNegativeBoxes(t *testing.T) {
	// Inverted boxes produce negative sizes that floor into negative bins.
	c := FromRecords([]record.Record{
		box("/a.jpg", "tops", 10, 10, 5, 5, 4, 0),
	})

	s, err := c.BoxSizeStats(10)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{-10: 1}, s.Width)
	assert.Equal(t, map[int]int{-10: 1}, s.Height)
}

func TestSizeStatsInvalidBin(t *testing.T) {
	c := FromRecords(fixture(t, 50, 3))
	for _, size := range []int{0, -5} {
		_, err := c.ImageSizeStats(size)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
		_, err = c.BoxSizeStats(size)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
	}
}

func TestSizeStatsEmpty(t *testing.T) {
	s, err := New().ImageSizeStats(10)
	require.NoError(t, err)
	assert.Empty(t, s.Width)
	assert.Empty(t, s.Bins(AxisHeight))
}

func TestBucket(t *testing.T) {
	tests := []struct{ v, size, want int }{
		{0, 10, 0},
		{9, 10, 0},
		{10, 10, 10},
		{-1, 10, -10},
		{-10, 10, -10},
		{-11, 10, -20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bucket(tt.v, tt.size), "bucket(%d, %d)", tt.v, tt.size)
	}
}
