// Package record defines the bounding-box annotation record and the parser
// that builds records from exporter CSV rows.
//
// A record's ID is a content digest over its path, image dimensions, box
// corners and label. Confidence is excluded so that re-scoring the same
// detection keeps its identity.
//
// # Parsing policies
//
// Legacy exporters produce short rows and garbage numerics. Under [Lenient]
// (the default) missing trailing fields and unparsable numbers become zero
// values. Under [Strict] the same rows fail with [ErrShortLine] or
// [ErrMalformedField]. Unknown categories fail under both policies.
package record
