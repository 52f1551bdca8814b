package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hupe1980/bboxgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionForName(t *testing.T) {
	tests := []struct {
		name string
		want Compression
	}{
		{"dataset.dat", None},
		{"dataset", None},
		{"dataset.dat.zst", Zstd},
		{"DATASET.ZSTD", Zstd},
		{"dataset.dat.lz4", LZ4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompressionForName(tt.name))
		})
	}
	assert.Equal(t, ".zst", Zstd.Extension())
	assert.Equal(t, ".lz4", LZ4.Extension())
	assert.Equal(t, "", None.Extension())
}

func TestEncodeDecode_Compressed(t *testing.T) {
	records := testutil.Records(testutil.NewRNG(11), 200)

	for _, c := range []Compression{None, Zstd, LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeTo(&buf, records, c))

			got, err := DecodeFrom(bytes.NewReader(buf.Bytes()), int64(buf.Len()), c)
			require.NoError(t, err)
			assert.Equal(t, records, got)

			got, err = DecodeFrom(bytes.NewReader(buf.Bytes()), -1, c)
			require.NoError(t, err)
			assert.Equal(t, records, got)
		})
	}
}

func TestDecodeFrom_CompressedGarbage(t *testing.T) {
	garbage := bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 16)
	for _, c := range []Compression{Zstd, LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			_, err := DecodeFrom(bytes.NewReader(garbage), int64(len(garbage)), c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorruptData), "%v", err)
		})
	}
}

func TestDecodeFrom_CompressedTruncated(t *testing.T) {
	records := testutil.Records(testutil.NewRNG(3), 100)
	for _, c := range []Compression{Zstd, LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeTo(&buf, records, c))
			cut := buf.Bytes()[:buf.Len()/2]

			_, err := DecodeFrom(bytes.NewReader(cut), int64(len(cut)), c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorruptData), "%v", err)
		})
	}
}

func TestDecodeFrom_CompressedTrailingBytes(t *testing.T) {
	records := testutil.Records(testutil.NewRNG(5), 10)
	raw, err := Marshal(records)
	require.NoError(t, err)

	for _, c := range []Compression{Zstd, LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := c.NewWriter(&buf)
			require.NoError(t, err)
			_, err = w.Write(append(raw, 0x01, 0x02))
			require.NoError(t, err)
			require.NoError(t, w.Close())

			_, err = DecodeFrom(bytes.NewReader(buf.Bytes()), int64(buf.Len()), c)
			require.ErrorIs(t, err, ErrCorruptData)
		})
	}
}
