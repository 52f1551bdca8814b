package mmap

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
)

// File is a read-only view of a whole file.
type File struct {
	data []byte
}

// Open maps path read-only. The descriptor is released as soon as the view
// exists; the view lives until Close. Empty files yield an empty view.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	switch size := fi.Size(); {
	case size == 0:
		return &File{}, nil
	case size < 0 || size > math.MaxInt:
		return nil, fmt.Errorf("mmap: %s: unmappable size %d", path, size)
	default:
		data, err := mmap(f, int(size))
		if err != nil {
			return nil, fmt.Errorf("mmap: %s: %w", path, err)
		}
		return &File{data: data}, nil
	}
}

// Close releases the view. Calling it again is a no-op.
func (m *File) Close() error {
	if m == nil || m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	return munmap(data)
}

// Bytes returns the mapped contents. The slice is valid until Close.
func (m *File) Bytes() []byte { return m.data }

// Size returns the mapped length in bytes.
func (m *File) Size() int64 { return int64(len(m.data)) }

// Reader returns a reader over the whole view.
func (m *File) Reader() *bytes.Reader { return bytes.NewReader(m.data) }

// ReadAt implements io.ReaderAt.
func (m *File) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("mmap: negative offset %d", off)
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
