package testutil

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"

	"github.com/hupe1980/bboxgo/label"
	"github.com/hupe1980/bboxgo/record"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// RawCategories lists the exporter categories of label.Default in a fixed order.
var RawCategories = []string{
	"SHOES", "JEWELRIES", "HATS", "OUTWEARS", "PANTS", "SKIRTS", "SWIMWEARS",
	"TOPS", "WHOLEBODIES", "BAGS", "BELTS", "GLASSES", "GLOVES",
	"HAIR_ACCESSORIES", "KEY_RING", "SCARF/MUFFLER", "SOCKS", "TIE", "WATCHES",
}

// Record returns one random record for image path with a valid ID.
func (r *RNG) Record(path string) record.Record {
	raw := RawCategories[r.Intn(len(RawCategories))]
	canonical, _ := label.Default.Lookup(raw)

	width := int32(100 + r.Intn(1900))
	height := int32(100 + r.Intn(1900))
	xmin := int32(r.Intn(int(width)))
	ymin := int32(r.Intn(int(height)))

	rec := record.Record{
		Path:       path,
		Width:      width,
		Height:     height,
		XMin:       xmin,
		YMin:       ymin,
		XMax:       xmin + int32(r.Intn(int(width-xmin)+1)),
		YMax:       ymin + int32(r.Intn(int(height-ymin)+1)),
		Confidence: r.Float32(),
		Label:      canonical,
	}
	rec.RefreshID()
	return rec
}

// Records returns n records spread over roughly n/3 images. Boxes on the
// same image share width and height.
func Records(rng *RNG, n int) []record.Record {
	out := make([]record.Record, 0, n)
	for len(out) < n {
		path := fmt.Sprintf("images/batch%02d/img%06d.jpg", rng.Intn(10), rng.Intn(1_000_000))
		first := rng.Record(path)
		out = append(out, first)
		for k := rng.Intn(5); k > 0 && len(out) < n; k-- {
			box := rng.Record(path)
			box.Width, box.Height = first.Width, first.Height
			box.XMax = min(box.XMax, box.Width)
			box.YMax = min(box.YMax, box.Height)
			box.XMin = min(box.XMin, box.XMax)
			box.YMin = min(box.YMin, box.YMax)
			box.RefreshID()
			out = append(out, box)
		}
	}
	return out
}

// CSVLine renders r as an exporter CSV row with the given raw category.
func CSVLine(r record.Record, rawCategory string) string {
	return "img," + "co," + "/export" + r.Path + "," +
		itoa(r.Width) + "," + itoa(r.Height) + "," +
		itoa(r.XMin) + "," + itoa(r.YMin) + "," + itoa(r.XMax) + "," + itoa(r.YMax) + "," +
		"1," + rawCategory + "," + strconv.FormatFloat(float64(r.Confidence), 'g', -1, 32)
}

func itoa(v int32) string { return strconv.FormatInt(int64(v), 10) }
