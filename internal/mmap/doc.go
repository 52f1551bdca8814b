// Package mmap provides read-only memory-mapped file access.
//
// Local dataset loads map the file and decode straight from the mapping,
// avoiding a second copy of the raw bytes through a read buffer.
//
//	m, err := mmap.Open("dataset.dat")
//	if err != nil { ... }
//	defer m.Close()
//	data := m.Bytes()
//
// Unix uses mmap(2); Windows uses CreateFileMapping/MapViewOfFile.
// Callers must not touch Bytes() after Close returns.
package mmap
