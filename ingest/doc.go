// Package ingest turns a directory tree of exporter CSV files into records.
//
// Label CSVs live under a "labels" tree and the images they describe under
// a sibling "images" tree:
//
//	root/labels/shop1/batch.csv     -> rows describing
//	root/images/shop1/batch/*.jpg
//
// Each record's path becomes the CSV path with its ".csv" extension dropped
// and the last "labels" segment replaced by "images", followed by the image
// file name from the row.
//
// Files are parsed concurrently but results are always returned in
// directory-tree order, then row order. A row that fails to parse is
// reported in [Result.Failures] and skipped; the rest of the file and the
// remaining files are still ingested. Records are not deduplicated.
package ingest
