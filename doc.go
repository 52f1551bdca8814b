// Package bboxgo manages flat, in-memory collections of bounding-box
// annotation records exported by object-detection labelling tools.
//
// Each record describes one box on one image: the image path and size, the
// box corners, a canonical label and a confidence. Its ID is a content
// digest of everything but the confidence, so re-scored detections keep
// their identity.
//
// # Quick Start
//
// Ingest a tree of exporter CSV files laid out as labels/<set>.csv:
//
//	ctx := context.Background()
//	coll := bboxgo.New()
//	res, err := coll.LoadFromCSVTree(ctx, "./dataset")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range res.Failures {
//	    log.Printf("skipped %v", f)
//	}
//
// Persist and reload:
//
//	err = coll.Save("train.bbox.zst")   // zstd-framed, atomic
//	coll, err = bboxgo.Load("train.bbox.zst")
//
// Or through a blob store:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("datasets/"))
//	err = coll.SaveTo(ctx, store, "train.bbox")
//
// # Dataset Operations
//
//	coll.SortByPath()                          // path, then ID
//	k := coll.PartitionByLabel("shoe")         // shoes first, stable
//	val, _ := coll.RandomSubsample(0.1, 42)    // deterministic 10% split
//	stats, _ := coll.ImageSizeStats(100)       // width/height histograms
//	i := coll.FindByID(id)                     // bboxgo.NotFound if absent
//
// # Identity
//
// ReplaceExtensions rewrites paths without touching IDs; call RefreshIDs
// afterwards if identity should follow the new paths. Loading a saved
// collection trusts the stored IDs.
//
// # Concurrency
//
// Search, sort, partition and extension rewrites split the work across
// goroutines (see WithParallelism) and give the same result as a
// sequential run. A Collection itself is not safe for concurrent mutation.
package bboxgo
