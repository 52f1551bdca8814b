package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/bboxgo/internal/conv"
	"github.com/hupe1980/bboxgo/persistence"
	"github.com/hupe1980/bboxgo/record"
)

// ErrCorruptData is returned when a stream is truncated or malformed.
var ErrCorruptData = errors.New("corrupt data")

// MaxStringLen bounds a single decoded string field.
const MaxStringLen = persistence.DefaultMaxStringLen

// minRecordSize is the encoded size of a record whose strings are all empty.
const minRecordSize = 3*4 + 6*4 + 4

// EncodeRecord writes one record to bw.
func EncodeRecord(bw *persistence.BinaryWriter, r record.Record) error {
	_ = bw.WriteString(r.Path)
	_ = bw.WriteInt32(r.Width)
	_ = bw.WriteInt32(r.Height)
	_ = bw.WriteInt32(r.XMin)
	_ = bw.WriteInt32(r.YMin)
	_ = bw.WriteInt32(r.XMax)
	_ = bw.WriteInt32(r.YMax)
	_ = bw.WriteFloat32(r.Confidence)
	_ = bw.WriteString(r.Label)
	return bw.WriteString(r.ID)
}

// DecodeRecord reads one record from br.
func DecodeRecord(br *persistence.BinaryReader) (record.Record, error) {
	var (
		r   record.Record
		err error
	)
	if r.Path, err = br.ReadString(); err != nil {
		return record.Record{}, corrupt(err)
	}
	for _, dst := range [...]*int32{&r.Width, &r.Height, &r.XMin, &r.YMin, &r.XMax, &r.YMax} {
		if *dst, err = br.ReadInt32(); err != nil {
			return record.Record{}, corrupt(err)
		}
	}
	if r.Confidence, err = br.ReadFloat32(); err != nil {
		return record.Record{}, corrupt(err)
	}
	if r.Label, err = br.ReadString(); err != nil {
		return record.Record{}, corrupt(err)
	}
	if r.ID, err = br.ReadString(); err != nil {
		return record.Record{}, corrupt(err)
	}
	return r, nil
}

// Encode writes the record count followed by each record.
func Encode(w io.Writer, records []record.Record) error {
	n, err := conv.IntToUint64(len(records))
	if err != nil {
		return err
	}
	bw := persistence.NewBinaryWriter(w)
	if err := bw.WriteUint64(n); err != nil {
		return err
	}
	for i := range records {
		if err := EncodeRecord(bw, records[i]); err != nil {
			return err
		}
	}
	return bw.Err()
}

// Decode reads a collection from an input of unknown size.
func Decode(r io.Reader) ([]record.Record, error) {
	return decode(persistence.NewBinaryReader(r))
}

// DecodeSize reads a collection from an input of exactly size bytes.
// Counts and string lengths that cannot fit in size are rejected up front,
// and trailing bytes are reported as corruption.
func DecodeSize(r io.Reader, size int64) ([]record.Record, error) {
	return decode(persistence.NewBinaryReaderSize(r, size))
}

func decode(br *persistence.BinaryReader) ([]record.Record, error) {
	br.SetMaxStringLen(MaxStringLen)

	count, err := br.ReadUint64()
	if err != nil {
		return nil, corrupt(err)
	}

	n, err := conv.Uint64ToInt(count)
	if err != nil {
		return nil, fmt.Errorf("%w: record count: %w", ErrCorruptData, err)
	}

	capHint := min(n, 1024)
	if rem := br.Remaining(); rem >= 0 {
		if count > uint64(rem)/minRecordSize {
			return nil, fmt.Errorf("%w: %d records cannot fit in %d bytes", ErrCorruptData, count, rem)
		}
		capHint = n
	}

	records := make([]record.Record, 0, capHint)
	for i := range n {
		rec, err := DecodeRecord(br)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}

	if rem := br.Remaining(); rem > 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorruptData, rem)
	}
	return records, nil
}

// Marshal encodes records into a byte slice.
func Marshal(records []record.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a byte slice produced by Marshal.
func Unmarshal(data []byte) ([]record.Record, error) {
	return DecodeSize(bytes.NewReader(data), int64(len(data)))
}

func corrupt(err error) error {
	if errors.Is(err, persistence.ErrTruncated) || errors.Is(err, persistence.ErrLengthOverflow) {
		return fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	return err
}
