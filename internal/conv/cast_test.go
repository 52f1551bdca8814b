package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint64(t *testing.T) {
	tests := []struct {
		in      int
		want    uint64
		wantErr bool
	}{
		{0, 0, false},
		{123, 123, false},
		{math.MaxInt, uint64(math.MaxInt), false},
		{-1, 0, true},
	}
	for _, tt := range tests {
		got, err := IntToUint64(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestUint64ToInt(t *testing.T) {
	got, err := Uint64ToInt(42)
	assert.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = Uint64ToInt(uint64(math.MaxInt))
	assert.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)

	_, err = Uint64ToInt(uint64(math.MaxInt) + 1)
	assert.Error(t, err)
}
