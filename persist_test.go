package bboxgo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/bboxgo/blobstore"
	"github.com/hupe1980/bboxgo/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	rs := fixture(t, 60, 123)
	rs[0].Confidence = 0.125

	for _, name := range []string{"coll.bbox", "coll.bbox.zst", "coll.bbox.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, FromRecords(rs).Save(path))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, rs, got.Records())
		})
	}
}

func TestSaveLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bbox")
	require.NoError(t, New().Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestSaveKeepsStoredIDs(t *testing.T) {
	r := box("/a.jpg", "tops", 10, 10, 0, 0, 5, 5)
	r.Path = "/a.webp" // stale ID
	path := filepath.Join(t.TempDir(), "stale.bbox")
	require.NoError(t, FromRecords([]record.Record{r}).Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	loaded, _ := got.At(0)
	assert.Equal(t, r.ID, loaded.ID)
	assert.NotEqual(t, record.ComputeID(loaded), loaded.ID)
}

func TestLoadCorrupt(t *testing.T) {
	rs := fixture(t, 61, 20)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.bbox")
	require.NoError(t, FromRecords(rs).Save(good))
	data, err := os.ReadFile(good)
	require.NoError(t, err)

	truncated := filepath.Join(dir, "truncated.bbox")
	require.NoError(t, os.WriteFile(truncated, data[:len(data)/2], 0o644))

	garbage := filepath.Join(dir, "garbage.bbox")
	require.NoError(t, os.WriteFile(garbage, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f, 1}, 0o644))

	for _, path := range []string{truncated, garbage} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			keep := fixture(t, 62, 3)
			c := FromRecords(keep)

			err := c.Load(path)
			require.ErrorIs(t, err, ErrCorruptData)
			assert.Equal(t, keep, c.Records())
		})
	}
}

func TestLoadMissing(t *testing.T) {
	c := FromRecords(fixture(t, 63, 2))
	err := c.Load(filepath.Join(t.TempDir(), "nope.bbox"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 2, c.Len())
}

func TestSaveToLoadFrom(t *testing.T) {
	ctx := context.Background()
	rs := fixture(t, 64, 57)

	stores := map[string]blobstore.BlobStore{
		"memory": blobstore.NewMemoryStore(),
		"local":  blobstore.NewLocalStore(t.TempDir()),
	}
	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			for _, blob := range []string{"sets/a.bbox", "sets/a.bbox.zst"} {
				require.NoError(t, FromRecords(rs).SaveTo(ctx, store, blob))

				got, err := LoadFrom(ctx, store, blob)
				require.NoError(t, err)
				assert.Equal(t, rs, got.Records())
			}

			names, err := store.List(ctx, "sets/")
			require.NoError(t, err)
			assert.Equal(t, []string{"sets/a.bbox", "sets/a.bbox.zst"}, names)
		})
	}
}

func TestLoadFromErrors(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	c := FromRecords(fixture(t, 65, 4))
	require.ErrorIs(t, c.LoadFrom(ctx, store, "missing"), blobstore.ErrNotFound)

	require.NoError(t, store.Put(ctx, "bad", []byte{1, 2, 3}))
	require.ErrorIs(t, c.LoadFrom(ctx, store, "bad"), ErrCorruptData)
	assert.Equal(t, 4, c.Len())
}

func TestSnapshotRestore(t *testing.T) {
	rs := fixture(t, 66, 31)
	path := filepath.Join(t.TempDir(), "snap.dat")

	h, err := FromRecords(rs).Snapshot(path)
	require.NoError(t, err)
	assert.Equal(t, Handle{Count: 31, Name: path}, h)

	got, err := Restore(h)
	require.NoError(t, err)
	assert.Equal(t, rs, got.Records())

	_, err = Restore(Handle{Count: 30, Name: path})
	require.ErrorIs(t, err, ErrCorruptData)
}

func TestSnapshotDefaultName(t *testing.T) {
	t.Chdir(t.TempDir())

	h, err := FromRecords(fixture(t, 67, 3)).Snapshot("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSnapshotName, h.Name)
	assert.FileExists(t, DefaultSnapshotName)
}

func TestMarshalBinary(t *testing.T) {
	rs := fixture(t, 68, 12)
	data, err := FromRecords(rs).MarshalBinary()
	require.NoError(t, err)

	c := New()
	require.NoError(t, c.UnmarshalBinary(data))
	assert.Equal(t, rs, c.Records())

	require.ErrorIs(t, c.UnmarshalBinary(data[:len(data)-1]), ErrCorruptData)
	assert.Equal(t, rs, c.Records())
}
