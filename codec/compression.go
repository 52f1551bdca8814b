package codec

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/bboxgo/record"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression is an optional outer frame around the raw dataset stream.
type Compression int

const (
	// None writes the raw format.
	None Compression = iota
	// Zstd wraps the stream in a zstd frame.
	Zstd
	// LZ4 wraps the stream in an lz4 frame.
	LZ4
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// Extension returns the file suffix that selects c.
func (c Compression) Extension() string {
	switch c {
	case Zstd:
		return ".zst"
	case LZ4:
		return ".lz4"
	default:
		return ""
	}
}

// CompressionForName picks the compression from a file or blob name suffix.
func CompressionForName(name string) Compression {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"):
		return Zstd
	case strings.HasSuffix(lower, ".lz4"):
		return LZ4
	default:
		return None
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter wraps w. Close must be called to flush the frame; it does not
// close w.
func (c Compression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported compression %s", c)
	}
}

// NewReader wraps r for decompression.
func (c Compression) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression %s", c)
	}
}

// EncodeTo writes records to w framed with c.
func EncodeTo(w io.Writer, records []record.Record, c Compression) error {
	cw, err := c.NewWriter(w)
	if err != nil {
		return err
	}
	if err := Encode(cw, records); err != nil {
		_ = cw.Close()
		return err
	}
	return cw.Close()
}

// DecodeFrom reads records framed with c. size is the byte length of r,
// or -1 if unknown; it is only used for uncompressed input.
func DecodeFrom(r io.Reader, size int64, c Compression) ([]record.Record, error) {
	if c == None {
		if size >= 0 {
			return DecodeSize(r, size)
		}
		return Decode(r)
	}
	cr, err := c.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	defer cr.Close()

	fr := frameReader{cr}
	records, err := Decode(fr)
	if err != nil {
		return nil, err
	}
	var extra [1]byte
	if n, err := io.ReadFull(fr, extra[:]); n > 0 {
		return nil, fmt.Errorf("%w: trailing bytes after %d records", ErrCorruptData, len(records))
	} else if !errors.Is(err, io.EOF) {
		return nil, err
	}
	return records, nil
}

// frameReader reports decompression failures as corrupt data.
type frameReader struct{ r io.Reader }

func (f frameReader) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	return n, err
}
