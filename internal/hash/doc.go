// Package hash provides CRC32-Castagnoli checksums.
//
// Object-store uploads send a CRC32C checksum alongside the body so the
// service can reject corrupted transfers. Go's crc32 package uses hardware
// instructions (SSE4.2, ARM CRC) when available.
//
//	checksum := hash.CRC32C(data)
package hash
