// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = coll.SaveTo(ctx, store, "train.bbox.zst")
//
// # Features
//
//   - Range reads for partial fetches
//   - Multipart uploads for large collections
//   - CRC32C checksums on every upload
//   - Automatic pagination for listing
package s3
