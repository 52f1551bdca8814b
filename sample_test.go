package bboxgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSubsample(t *testing.T) {
	rs := fixture(t, 40, 10)
	c := FromRecords(rs)

	s, err := c.RandomSubsample(0.5, 42)
	require.NoError(t, err)
	require.Equal(t, 5, s.Len())

	// Distinct records, in original relative order.
	pos := make(map[string]int, len(rs))
	for i, r := range rs {
		pos[r.ID] = i
	}
	last := -1
	seen := map[string]bool{}
	for _, r := range s.All() {
		i, ok := pos[r.ID]
		require.True(t, ok)
		assert.Greater(t, i, last)
		assert.False(t, seen[r.ID])
		seen[r.ID] = true
		last = i
	}

	again, err := c.RandomSubsample(0.5, 42)
	require.NoError(t, err)
	assert.Equal(t, s.Records(), again.Records())

	assert.Equal(t, 10, c.Len())
}

func TestRandomSubsampleRounding(t *testing.T) {
	c := FromRecords(fixture(t, 41, 9))

	s, err := c.RandomSubsample(0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Len())

	s, err = c.RandomSubsample(0.01, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	s, err = New().RandomSubsample(0.3, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestRandomSubsampleSeedsDiffer(t *testing.T) {
	c := FromRecords(fixture(t, 42, 200))

	a, err := c.RandomSubsample(0.5, 1)
	require.NoError(t, err)
	b, err := c.RandomSubsample(0.5, 2)
	require.NoError(t, err)
	assert.NotEqual(t, ids(a), ids(b))
}

func TestRandomSubsampleInvalidFraction(t *testing.T) {
	c := FromRecords(fixture(t, 43, 10))
	for _, f := range []float64{0, 1, -0.1, 1.5} {
		_, err := c.RandomSubsample(f, 1)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, "fraction %v", f)
	}
}
