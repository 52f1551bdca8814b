package ingest

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/hupe1980/bboxgo/record"
	"github.com/hupe1980/bboxgo/resource"
	"golang.org/x/sync/errgroup"
)

// LineError describes one CSV row that was skipped.
type LineError struct {
	File string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Result is the outcome of Load.
type Result struct {
	// Records holds every parsed record, in file then row order.
	Records []record.Record
	// Files lists the CSV files that were read, in walk order.
	Files []string
	// Failures lists skipped rows.
	Failures []*LineError
}

// Load walks root and parses every CSV file below it.
//
// Only I/O errors and context cancellation fail the call; rows that do not
// parse are reported in Result.Failures. A tree without CSV files yields an
// empty Result.
func Load(ctx context.Context, root string, optFns ...Option) (*Result, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	files, err := Discover(root, optFns...)
	if err != nil {
		return nil, err
	}

	parser := record.NewParser(o.labels, o.policy)
	rc := o.controller()

	type fileResult struct {
		records  []record.Record
		failures []*LineError
	}
	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		if err := rc.AcquireWorker(gctx); err != nil {
			break
		}
		g.Go(func() error {
			defer rc.ReleaseWorker()
			recs, fails, err := parseFile(gctx, &o, rc, parser, file)
			if err != nil {
				return err
			}
			results[i] = fileResult{records: recs, failures: fails}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{Files: files}
	total := 0
	for _, r := range results {
		total += len(r.records)
	}
	res.Records = make([]record.Record, 0, total)
	for _, r := range results {
		res.Records = append(res.Records, r.records...)
		res.Failures = append(res.Failures, r.failures...)
	}

	o.logger.InfoContext(ctx, "ingested csv tree",
		"root", root,
		"files", len(files),
		"records", len(res.Records),
		"skipped", len(res.Failures),
	)
	return res, nil
}

// Discover returns the CSV files below root in depth-first lexical order.
func Discover(root string, optFns ...Option) ([]string, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	fi, err := o.fs.Stat(root)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("ingest: %s is not a directory", root)
	}

	var files []string
	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := o.fs.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, e := range entries {
			full := filepath.Join(dir, e.Name())
			if e.IsDir() {
				if err := walk(full); err != nil {
					return err
				}
				continue
			}
			if strings.HasSuffix(e.Name(), o.extension) {
				files = append(files, full)
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return files, nil
}

// ImagePrefix returns the image directory that mirrors csvPath: the path
// with its extension dropped and its last "labels" segment replaced by
// "images". Only whole segments match, so "mylabels/x.csv" is unchanged
// apart from the extension. The result uses forward slashes.
func ImagePrefix(csvPath string) string {
	p := filepath.ToSlash(csvPath)
	p = strings.TrimSuffix(p, path.Ext(p))

	segments := strings.Split(p, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "labels" {
			segments[i] = "images"
			break
		}
	}
	return strings.Join(segments, "/")
}

func parseFile(ctx context.Context, o *options, rc *resource.Controller, parser *record.Parser, file string) ([]record.Record, []*LineError, error) {
	var size int64
	if fi, err := o.fs.Stat(file); err == nil {
		size = fi.Size()
	}
	reserved, err := rc.AcquireMemory(ctx, size)
	if err != nil {
		return nil, nil, err
	}
	defer rc.ReleaseMemory(reserved)

	f, err := o.fs.Open(file)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	cr := csv.NewReader(bufio.NewReader(resource.NewRateLimitedReader(ctx, f, rc)))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	prefix := ImagePrefix(file)

	var (
		records  []record.Record
		failures []*LineError
		first    = true
	)
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, nil, fmt.Errorf("ingest: read %s: %w", file, err)
			}
			failures = append(failures, &LineError{File: file, Line: pe.Line, Err: err})
			first = false
			continue
		}

		line, _ := cr.FieldPos(0)
		if first {
			first = false
			if isHeader(o.header, fields) {
				continue
			}
		}

		rec, err := parser.ParseFields(fields)
		if err != nil {
			o.logger.DebugContext(ctx, "skipping csv row", "file", file, "line", line, "error", err)
			failures = append(failures, &LineError{File: file, Line: line, Err: err})
			continue
		}
		rec.Path = prefix + rec.Path
		rec.RefreshID()
		records = append(records, rec)
	}

	if len(failures) > 0 {
		o.logger.WarnContext(ctx, "skipped csv rows", "file", file, "count", len(failures))
	}
	return records, failures, nil
}

func isHeader(mode HeaderMode, fields []string) bool {
	switch mode {
	case HeaderAlways:
		return true
	case HeaderNever:
		return false
	}
	for i, f := range fields {
		if name := record.ColumnName(i); name != "" && strings.EqualFold(strings.TrimSpace(f), name) {
			return true
		}
	}
	return false
}
