package codec

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/hupe1980/bboxgo/persistence"
	"github.com/hupe1980/bboxgo/record"
	"github.com/hupe1980/bboxgo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(7)
	records := testutil.Records(rng, 50)

	data, err := Marshal(records)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestRoundTrip_Empty(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)
	assert.Len(t, data, 8)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRoundTrip_TrustsStoredID(t *testing.T) {
	r := record.Record{Path: "/a.jpg", Width: 1, Height: 1, Label: "tie", ID: "not-a-digest"}

	got, err := Unmarshal(mustMarshal(t, []record.Record{r}))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "not-a-digest", got[0].ID)
}

func TestEncodeRecord_Layout(t *testing.T) {
	r := record.Record{
		Path: "/p", Width: 1, Height: 2, XMin: 3, YMin: 4, XMax: 5, YMax: 6,
		Confidence: 0.5, Label: "hat", ID: "id",
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeRecord(persistence.NewBinaryWriter(&buf), r))

	want := []byte{
		2, 0, 0, 0, '/', 'p',
		1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0, 4, 0, 0, 0, 5, 0, 0, 0, 6, 0, 0, 0,
		0, 0, 0, 0x3f,
		3, 0, 0, 0, 'h', 'a', 't',
		2, 0, 0, 0, 'i', 'd',
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestDecode_Truncated(t *testing.T) {
	records := testutil.Records(testutil.NewRNG(1), 3)
	data := mustMarshal(t, records)

	for _, cut := range []int{0, 4, 8, 20, len(data) - 1} {
		_, err := Unmarshal(data[:cut])
		require.Error(t, err, "cut=%d", cut)
		assert.True(t, errors.Is(err, ErrCorruptData), "cut=%d: %v", cut, err)

		_, err = Decode(bytes.NewReader(data[:cut]))
		assert.True(t, errors.Is(err, ErrCorruptData), "unsized cut=%d: %v", cut, err)
	}
}

func TestDecode_CountTooLarge(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, persistence.NewBinaryWriter(&buf).WriteUint64(1<<40))

	_, err := Unmarshal(buf.Bytes())
	assert.True(t, errors.Is(err, ErrCorruptData))
}

func TestDecode_CountOverflowsInt(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, persistence.NewBinaryWriter(&buf).WriteUint64(math.MaxUint64))

	_, err := Decode(&buf)
	require.ErrorIs(t, err, ErrCorruptData)
}

func TestDecode_InconsistentStringLength(t *testing.T) {
	var buf bytes.Buffer
	bw := persistence.NewBinaryWriter(&buf)
	require.NoError(t, bw.WriteUint64(1))
	require.NoError(t, bw.WriteUint32(1000)) // path length larger than the rest of the input
	buf.Write(make([]byte, 40))

	_, err := Unmarshal(buf.Bytes())
	assert.True(t, errors.Is(err, ErrCorruptData))
}

func TestDecode_TrailingBytes(t *testing.T) {
	data := append(mustMarshal(t, testutil.Records(testutil.NewRNG(2), 2)), 0xff)
	_, err := Unmarshal(data)
	assert.True(t, errors.Is(err, ErrCorruptData))
}

func mustMarshal(t *testing.T, records []record.Record) []byte {
	t.Helper()
	data, err := Marshal(records)
	require.NoError(t, err)
	return data
}
