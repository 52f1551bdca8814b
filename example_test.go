package bboxgo_test

import (
	"fmt"

	"github.com/hupe1980/bboxgo"
	"github.com/hupe1980/bboxgo/record"
)

func newRecord(path, lbl string, w, h int32) record.Record {
	r := record.Record{Path: path, Width: w, Height: h, XMax: w / 2, YMax: h / 2, Label: lbl}
	r.RefreshID()
	return r
}

func Example() {
	coll := bboxgo.FromRecords([]record.Record{
		newRecord("/img/b.jpg", "bag", 640, 480),
		newRecord("/img/a.jpg", "shoe", 1024, 768),
		newRecord("/img/a.jpg", "bag", 1024, 768),
	})

	coll.SortByPath()
	fmt.Println("bags:", coll.PartitionByLabel("bag"))

	first, _ := coll.At(0)
	fmt.Println("first:", first.Path, first.Label)

	stats, _ := coll.ImageSizeStats(500)
	for _, b := range stats.Bins(bboxgo.AxisWidth) {
		fmt.Printf("width %d+: %d\n", b.Start, b.Count)
	}
	// Output:
	// bags: 2
	// first: /img/a.jpg bag
	// width 500+: 1
	// width 1000+: 1
}

func ExampleCollection_RandomSubsample() {
	var rs []record.Record
	for i := range 10 {
		rs = append(rs, newRecord(fmt.Sprintf("/img/%d.jpg", i), "tops", 100, 100))
	}
	coll := bboxgo.FromRecords(rs)

	sample, err := coll.RandomSubsample(0.3, 7)
	if err != nil {
		panic(err)
	}
	fmt.Println(sample.Len())

	_, err = coll.RandomSubsample(1.5, 7)
	fmt.Println(err)
	// Output:
	// 3
	// invalid configuration: subsample fraction 1.5 not in (0, 1)
}
