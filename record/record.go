package record

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
)

// Record is one detected bounding box on one image.
type Record struct {
	Path       string
	Width      int32
	Height     int32
	XMin       int32
	YMin       int32
	XMax       int32
	YMax       int32
	Confidence float32
	Label      string
	ID         string
}

// ComputeID returns the content digest of r.
//
// The digest input is the decimal concatenation of path, width, height,
// xmin, ymin, xmax, ymax and label with no separators, hashed with MD5 and
// hex encoded. This matches IDs produced by existing dataset files.
func ComputeID(r Record) string {
	var b strings.Builder
	b.Grow(len(r.Path) + len(r.Label) + 6*6)
	b.WriteString(r.Path)
	for _, v := range [...]int32{r.Width, r.Height, r.XMin, r.YMin, r.XMax, r.YMax} {
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	b.WriteString(r.Label)
	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// RefreshID recomputes and stores the ID from the current fields.
func (r *Record) RefreshID() {
	r.ID = ComputeID(*r)
}

// BoxWidth returns XMax - XMin.
func (r Record) BoxWidth() int32 { return r.XMax - r.XMin }

// BoxHeight returns YMax - YMin.
func (r Record) BoxHeight() int32 { return r.YMax - r.YMin }

// Equal reports whether a and b have the same identity.
func Equal(a, b Record) bool {
	return a.ID == b.ID
}

// Compare orders records by ID.
func Compare(a, b Record) int {
	return strings.Compare(a.ID, b.ID)
}

// String renders the record in a multi-line human-readable form.
func (r Record) String() string {
	var b strings.Builder
	b.WriteString("BBoxDetails(\n")
	b.WriteString(" path:  " + r.Path + "\n")
	b.WriteString(" xmin:  " + strconv.Itoa(int(r.XMin)) + "\n")
	b.WriteString(" ymin:  " + strconv.Itoa(int(r.YMin)) + "\n")
	b.WriteString(" xmax:  " + strconv.Itoa(int(r.XMax)) + "\n")
	b.WriteString(" ymax:  " + strconv.Itoa(int(r.YMax)) + "\n")
	b.WriteString(" conf:  " + strconv.FormatFloat(float64(r.Confidence), 'g', -1, 32) + "\n")
	b.WriteString(" label: " + r.Label + "\n")
	b.WriteString(" id:    " + r.ID + "\n")
	b.WriteString(")")
	return b.String()
}
