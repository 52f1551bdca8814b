// Package codec implements the binary dataset format.
//
// A dataset is a uint64 record count followed by that many records. Each
// record is written in the fixed field order path, width, height, xmin,
// ymin, xmax, ymax, confidence, label, id. Strings are uint32 length
// prefixed; integers are int32 and confidence is float32, all little-endian.
//
// The format carries no version tag and no checksum: changing it is a
// breaking change for every persisted dataset. Stored IDs are trusted on
// load and never recomputed.
//
// An optional outer [Compression] frame (zstd or lz4) may wrap the stream.
// It is selected by file name suffix, so the raw format stays untagged.
package codec
