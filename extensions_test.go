package bboxgo

import (
	"testing"

	"github.com/hupe1980/bboxgo/record"
	"github.com/stretchr/testify/assert"
)

func TestReplaceExtensions(t *testing.T) {
	rs := []record.Record{
		box("/data/images/a.jpg", "tops", 1, 1, 0, 0, 1, 1),
		box("/data/images/b", "tops", 1, 1, 0, 0, 1, 1),
		box("/data/im.ages/c.tar.gz", "tops", 1, 1, 0, 0, 1, 1),
	}
	c := FromRecords(rs, parallel()...)
	c.ReplaceExtensions("webp")

	want := []string{"/data/images/a.webp", "/data/images/b.webp", "/data/im.ages/c.tar.webp"}
	for i, r := range c.All() {
		assert.Equal(t, want[i], r.Path)
		assert.Equal(t, rs[i].ID, r.ID, "ids are not recomputed")
	}

	c.RefreshIDs()
	for _, r := range c.All() {
		assert.Equal(t, record.ComputeID(r), r.ID)
	}
}

func TestReplaceExtension(t *testing.T) {
	tests := []struct{ path, ext, want string }{
		{"/a.jpg", ".png", "/a.png"},
		{"/a.jpg", "", "/a"},
		{"/.hidden", ".png", "/.hidden.png"},
		{"/dir.d/file", ".png", "/dir.d/file.png"},
		{"a.jpg", ".webp", "a.webp"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, replaceExtension(tt.path, tt.ext), tt.path)
	}
}
