// Package testutil provides testing utilities for bboxgo.
//
// This package is intended for use in tests and benchmarks only.
// It generates deterministic annotation records from a seeded RNG.
//
//	rng := testutil.NewRNG(seed)
//	records := testutil.Records(rng, 1000)   // ~3 boxes per image
//	line := testutil.CSVLine(records[0], "SHOES")
package testutil
