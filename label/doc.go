// Package label maps raw exporter category names to canonical short labels.
//
// Exporters emit upper-case, underscore-separated category names such as
// "HAIR_ACCESSORIES". Datasets use the short form ("hairpin"). A [Mapper] is
// an immutable lookup table; [Default] holds the built-in vocabulary and is
// safe to share between goroutines.
package label
