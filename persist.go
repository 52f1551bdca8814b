package bboxgo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/hupe1980/bboxgo/blobstore"
	"github.com/hupe1980/bboxgo/codec"
	"github.com/hupe1980/bboxgo/internal/mmap"
	"github.com/hupe1980/bboxgo/persistence"
	"github.com/hupe1980/bboxgo/record"
)

// DefaultSnapshotName is the file name Snapshot uses when given none.
const DefaultSnapshotName = "bbox_dataset.dat"

// Handle identifies a persisted collection for handoff to another process.
type Handle struct {
	Count int
	Name  string
}

// Save writes the collection to path atomically. A ".zst"/".zstd" or
// ".lz4" suffix selects a compressed frame around the binary format.
func (c *Collection) Save(path string) (err error) {
	start := time.Now()
	defer func() {
		c.opts.metricsCollector.RecordSave(len(c.records), time.Since(start), err)
		c.opts.logger.LogSave(context.Background(), path, len(c.records), err)
	}()

	comp := codec.CompressionForName(path)
	return persistence.SaveToFile(path, func(w io.Writer) error {
		return codec.EncodeTo(w, c.records, comp)
	})
}

// Load replaces the collection's records with those stored at path. On
// error the collection is left unchanged.
func (c *Collection) Load(path string) (err error) {
	start := time.Now()
	n := 0
	defer func() {
		c.opts.metricsCollector.RecordLoad(n, time.Since(start), err)
		c.opts.logger.LogLoad(context.Background(), path, n, err)
	}()

	rs, err := loadFile(path)
	if err != nil {
		return err
	}
	c.records = rs
	n = len(rs)
	return nil
}

// Load reads a collection from path.
func Load(path string, optFns ...Option) (*Collection, error) {
	c := New(optFns...)
	if err := c.Load(path); err != nil {
		return nil, err
	}
	return c, nil
}

func loadFile(path string) ([]record.Record, error) {
	comp := codec.CompressionForName(path)

	m, err := mmap.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		// Not every file can be mapped; read it instead.
		var rs []record.Record
		err = persistence.LoadFromFile(path, func(r io.Reader, size int64) error {
			var derr error
			rs, derr = codec.DecodeFrom(r, size, comp)
			return derr
		})
		return rs, translateError(err)
	}
	defer m.Close()

	rs, err := codec.DecodeFrom(m.Reader(), m.Size(), comp)
	return rs, translateError(err)
}

// SaveTo streams the collection to name in store. The compression frame is
// chosen from name as in Save. The blob is discarded if encoding fails and
// the writer supports blobstore.Aborter.
func (c *Collection) SaveTo(ctx context.Context, store blobstore.BlobStore, name string) (err error) {
	start := time.Now()
	defer func() {
		c.opts.metricsCollector.RecordSave(len(c.records), time.Since(start), err)
		c.opts.logger.LogSave(ctx, name, len(c.records), err)
	}()

	w, err := store.Create(ctx, name)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	err = codec.EncodeTo(bw, c.records, codec.CompressionForName(name))
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		if a, ok := w.(blobstore.Aborter); ok {
			_ = a.Abort()
		}
		_ = w.Close()
		return err
	}
	return w.Close()
}

// LoadFrom replaces the collection's records with those stored under name.
// On error the collection is left unchanged.
func (c *Collection) LoadFrom(ctx context.Context, store blobstore.BlobStore, name string) (err error) {
	start := time.Now()
	n := 0
	defer func() {
		c.opts.metricsCollector.RecordLoad(n, time.Since(start), err)
		c.opts.logger.LogLoad(ctx, name, n, err)
	}()

	b, err := store.Open(ctx, name)
	if err != nil {
		return err
	}
	defer b.Close()

	r, err := blobstore.Reader(ctx, b)
	if err != nil {
		return err
	}
	defer r.Close()

	rs, err := codec.DecodeFrom(bufio.NewReader(r), b.Size(), codec.CompressionForName(name))
	if err != nil {
		return translateError(err)
	}
	c.records = rs
	n = len(rs)
	return nil
}

// LoadFrom reads a collection stored under name.
func LoadFrom(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Collection, error) {
	c := New(optFns...)
	if err := c.LoadFrom(ctx, store, name); err != nil {
		return nil, err
	}
	return c, nil
}

// Snapshot saves the collection to name (DefaultSnapshotName if empty) and
// returns a Handle that Restore accepts.
func (c *Collection) Snapshot(name string) (Handle, error) {
	if name == "" {
		name = DefaultSnapshotName
	}
	if err := c.Save(name); err != nil {
		return Handle{}, err
	}
	return Handle{Count: len(c.records), Name: name}, nil
}

// Restore loads the collection a Handle points at and checks that the
// record count matches.
func Restore(h Handle, optFns ...Option) (*Collection, error) {
	c, err := Load(h.Name, optFns...)
	if err != nil {
		return nil, err
	}
	if c.Len() != h.Count {
		return nil, fmt.Errorf("%w: %s holds %d records, handle expects %d", ErrCorruptData, h.Name, c.Len(), h.Count)
	}
	return c, nil
}

// MarshalBinary encodes the collection in the uncompressed binary format.
func (c *Collection) MarshalBinary() ([]byte, error) {
	return codec.Marshal(c.records)
}

// UnmarshalBinary replaces the records with those decoded from data.
func (c *Collection) UnmarshalBinary(data []byte) error {
	rs, err := codec.Unmarshal(data)
	if err != nil {
		return translateError(err)
	}
	c.records = rs
	return nil
}
