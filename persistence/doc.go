// Package persistence provides the little-endian binary primitives used by
// the record codec and atomic whole-file save/load helpers.
//
// The primitives are deliberately format-agnostic: strings are uint32
// length prefixed, integers and floats are fixed width. Higher-level
// layouts live in package codec.
package persistence
