// Package conv provides checked integer conversions for values that cross
// the persistence boundary (record counts, lengths read from disk).
package conv
