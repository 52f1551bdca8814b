package persistence

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrTruncated is returned when the input ends before a value is complete.
var ErrTruncated = errors.New("truncated input")

// ErrLengthOverflow is returned when a length prefix exceeds the configured
// maximum or the bytes known to remain in the input.
var ErrLengthOverflow = errors.New("length prefix overflow")

// BinaryWriter writes fixed-width little-endian values.
// The first write error is sticky; check Err or the returned error.
type BinaryWriter struct {
	w       io.Writer
	scratch [8]byte
	err     error
}

// NewBinaryWriter creates a new binary writer.
func NewBinaryWriter(w io.Writer) *BinaryWriter {
	return &BinaryWriter{w: w}
}

func (bw *BinaryWriter) write(p []byte) error {
	if bw.err != nil {
		return bw.err
	}
	_, bw.err = bw.w.Write(p)
	return bw.err
}

// WriteUint32 writes v as 4 bytes.
func (bw *BinaryWriter) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(bw.scratch[:4], v)
	return bw.write(bw.scratch[:4])
}

// WriteUint64 writes v as 8 bytes.
func (bw *BinaryWriter) WriteUint64(v uint64) error {
	binary.LittleEndian.PutUint64(bw.scratch[:8], v)
	return bw.write(bw.scratch[:8])
}

// WriteInt32 writes v as 4 bytes (two's complement).
func (bw *BinaryWriter) WriteInt32(v int32) error {
	return bw.WriteUint32(uint32(v))
}

// WriteFloat32 writes the IEEE-754 bits of v.
func (bw *BinaryWriter) WriteFloat32(v float32) error {
	return bw.WriteUint32(math.Float32bits(v))
}

// WriteString writes a uint32 length followed by the bytes of s.
func (bw *BinaryWriter) WriteString(s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return fmt.Errorf("%w: string of %d bytes", ErrLengthOverflow, len(s))
	}
	if err := bw.WriteUint32(uint32(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	if sw, ok := bw.w.(io.StringWriter); ok && bw.err == nil {
		_, bw.err = sw.WriteString(s)
		return bw.err
	}
	return bw.write([]byte(s))
}

// Err returns the first write error, if any.
func (bw *BinaryWriter) Err() error { return bw.err }

// BinaryReader reads values written by BinaryWriter.
//
// When the total input size is known (see NewBinaryReaderSize) the reader
// rejects length prefixes that exceed the remaining bytes before allocating.
type BinaryReader struct {
	r         io.Reader
	remaining int64 // -1 when unknown
	maxString uint32
	scratch   [8]byte
}

// DefaultMaxStringLen bounds string allocations when the input size is unknown.
const DefaultMaxStringLen = 1 << 20

// NewBinaryReader creates a reader over an input of unknown size.
func NewBinaryReader(r io.Reader) *BinaryReader {
	return &BinaryReader{r: r, remaining: -1, maxString: DefaultMaxStringLen}
}

// NewBinaryReaderSize creates a reader over exactly size bytes.
func NewBinaryReaderSize(r io.Reader, size int64) *BinaryReader {
	return &BinaryReader{r: r, remaining: size, maxString: DefaultMaxStringLen}
}

// SetMaxStringLen overrides DefaultMaxStringLen.
func (br *BinaryReader) SetMaxStringLen(n uint32) { br.maxString = n }

// Remaining returns the bytes left in a sized input, or -1 if unknown.
func (br *BinaryReader) Remaining() int64 { return br.remaining }

func (br *BinaryReader) read(p []byte) error {
	if br.remaining >= 0 && int64(len(p)) > br.remaining {
		return fmt.Errorf("%w: need %d bytes, %d remain", ErrTruncated, len(p), br.remaining)
	}
	if _, err := io.ReadFull(br.r, p); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		return err
	}
	if br.remaining >= 0 {
		br.remaining -= int64(len(p))
	}
	return nil
}

// ReadUint32 reads 4 bytes.
func (br *BinaryReader) ReadUint32() (uint32, error) {
	if err := br.read(br.scratch[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(br.scratch[:4]), nil
}

// ReadUint64 reads 8 bytes.
func (br *BinaryReader) ReadUint64() (uint64, error) {
	if err := br.read(br.scratch[:8]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(br.scratch[:8]), nil
}

// ReadInt32 reads a two's complement int32.
func (br *BinaryReader) ReadInt32() (int32, error) {
	v, err := br.ReadUint32()
	return int32(v), err
}

// ReadFloat32 reads IEEE-754 float32 bits.
func (br *BinaryReader) ReadFloat32() (float32, error) {
	v, err := br.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadString reads a uint32 length-prefixed string.
func (br *BinaryReader) ReadString() (string, error) {
	n, err := br.ReadUint32()
	if err != nil {
		return "", err
	}
	if n > br.maxString {
		return "", fmt.Errorf("%w: string length %d exceeds limit %d", ErrLengthOverflow, n, br.maxString)
	}
	if br.remaining >= 0 && int64(n) > br.remaining {
		return "", fmt.Errorf("%w: string length %d, %d bytes remain", ErrLengthOverflow, n, br.remaining)
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if err := br.read(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
