package bboxgo

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/hupe1980/bboxgo/record"
)

// RandomSubsample returns round(fraction*Len()) distinct records chosen
// uniformly with a PCG generator seeded by seed. The chosen records keep
// their original relative order. Equal arguments on equal input give equal
// output.
func (c *Collection) RandomSubsample(fraction float64, seed uint64) (*Collection, error) {
	defer c.observe(OpRandomSubsample, time.Now())

	if !(fraction > 0 && fraction < 1) {
		return nil, fmt.Errorf("%w: subsample fraction %v not in (0, 1)", ErrInvalidConfiguration, fraction)
	}

	n := len(c.records)
	k := int(math.Round(fraction * float64(n)))

	rng := rand.New(rand.NewPCG(seed, seed))
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	chosen := idx[:k]
	slices.Sort(chosen)

	out := make([]record.Record, k)
	for i, j := range chosen {
		out[i] = c.records[j]
	}
	return c.derive(out), nil
}
