package bboxgo

import (
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/bboxgo/record"
)

// Axis selects one of the two histograms in Stats.
type Axis int

const (
	AxisWidth Axis = iota
	AxisHeight
)

// Bin is one histogram bucket: Start is the inclusive lower bound.
type Bin struct {
	Start int
	Count int
}

// Stats holds width and height histograms keyed by bin lower bound.
type Stats struct {
	Width  map[int]int
	Height map[int]int
}

// Bins returns the histogram for axis sorted by Start.
func (s Stats) Bins(axis Axis) []Bin {
	m := s.Width
	if axis == AxisHeight {
		m = s.Height
	}
	bins := make([]Bin, 0, len(m))
	for start, count := range m {
		bins = append(bins, Bin{Start: start, Count: count})
	}
	slices.SortFunc(bins, func(a, b Bin) int { return a.Start - b.Start })
	return bins
}

// ImageSizeStats buckets image dimensions. Each path counts once, using its
// first record.
func (c *Collection) ImageSizeStats(binSize int) (Stats, error) {
	defer c.observe(OpImageSizeStats, time.Now())
	return c.sizeStats(binSize, func(r *record.Record) (int, int) {
		return int(r.Width), int(r.Height)
	})
}

// BoxSizeStats buckets box dimensions (xmax-xmin, ymax-ymin). Each path
// counts once, using its first record.
func (c *Collection) BoxSizeStats(binSize int) (Stats, error) {
	defer c.observe(OpBoxSizeStats, time.Now())
	return c.sizeStats(binSize, func(r *record.Record) (int, int) {
		return int(r.BoxWidth()), int(r.BoxHeight())
	})
}

func (c *Collection) sizeStats(binSize int, dims func(*record.Record) (int, int)) (Stats, error) {
	if binSize <= 0 {
		return Stats{}, fmt.Errorf("%w: bin size %d must be positive", ErrInvalidConfiguration, binSize)
	}

	stats := Stats{Width: make(map[int]int), Height: make(map[int]int)}
	seen := make(map[string]struct{})
	for i := range c.records {
		r := &c.records[i]
		if _, ok := seen[r.Path]; ok {
			continue
		}
		seen[r.Path] = struct{}{}

		w, h := dims(r)
		stats.Width[bucket(w, binSize)]++
		stats.Height[bucket(h, binSize)]++
	}
	return stats, nil
}

// bucket returns the lower bound of v's bin using floor division, so -1
// falls in [-size, 0).
func bucket(v, size int) int {
	q := v / size
	if v%size != 0 && v < 0 {
		q--
	}
	return q * size
}
