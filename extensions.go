package bboxgo

import (
	"strings"
	"time"
)

// ReplaceExtensions swaps the file extension of every record path for ext.
// A missing leading dot is added; an empty ext removes the extension.
//
// IDs are not recomputed and no longer match the new paths. Call
// RefreshIDs when identity should follow the path.
func (c *Collection) ReplaceExtensions(ext string) {
	defer c.observe(OpReplaceExtensions, time.Now())

	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.forEachSpan(len(c.records), func(_ int, s span) {
		for i := s.lo; i < s.hi; i++ {
			c.records[i].Path = replaceExtension(c.records[i].Path, ext)
		}
	})
}

// RefreshIDs recomputes every record's ID from its current fields.
func (c *Collection) RefreshIDs() {
	defer c.observe(OpRefreshIDs, time.Now())

	c.forEachSpan(len(c.records), func(_ int, s span) {
		for i := s.lo; i < s.hi; i++ {
			c.records[i].RefreshID()
		}
	})
}

// replaceExtension treats a leading dot in the file name as part of the
// stem, so "/.hidden" has no extension.
func replaceExtension(p, ext string) string {
	base := p[strings.LastIndexByte(p, '/')+1:]
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		p = p[:len(p)-len(base)+i]
	}
	return p + ext
}
