package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/bboxgo/label"
)

// Column positions of the exporter CSV schema.
const (
	ColImageID = iota
	ColCompanyID
	ColImagePath
	ColWidth
	ColHeight
	ColXMin
	ColYMin
	ColXMax
	ColYMax
	ColDetectionID
	ColCategory
	ColConfidence

	// NumColumns is the number of fields in a complete row.
	NumColumns
)

var columnNames = [NumColumns]string{
	"image_id", "company_id", "image_path", "width", "height",
	"xmin", "ymin", "xmax", "ymax", "detection_id", "category", "confidence",
}

// ColumnName returns the header name of column col, or "" if col is out
// of range.
func ColumnName(col int) string {
	if col < 0 || col >= NumColumns {
		return ""
	}
	return columnNames[col]
}

var (
	// ErrShortLine is returned under Strict when a row has fewer than NumColumns fields.
	ErrShortLine = errors.New("short csv line")

	// ErrMalformedField is returned under Strict when a numeric field does not parse.
	ErrMalformedField = errors.New("malformed field")
)

// FieldError describes a numeric field that failed to parse.
type FieldError struct {
	Column string
	Text   string
	cause  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: column %s: %q", ErrMalformedField, e.Column, e.Text)
}

func (e *FieldError) Unwrap() []error { return []error{ErrMalformedField, e.cause} }

// Policy selects how short rows and malformed numerics are handled.
type Policy int

const (
	// Lenient substitutes zero values for missing or unparsable fields.
	Lenient Policy = iota
	// Strict rejects short rows and unparsable numerics.
	Strict
)

func (p Policy) String() string {
	switch p {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Parser turns exporter CSV rows into records.
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	labels *label.Mapper
	policy Policy
}

// NewParser returns a parser using labels (label.Default if nil) and policy.
func NewParser(labels *label.Mapper, policy Policy) *Parser {
	if labels == nil {
		labels = label.Default
	}
	return &Parser{labels: labels, policy: policy}
}

// Policy returns the parser's policy.
func (p *Parser) Policy() Policy { return p.policy }

// ParseLine parses one comma-separated row.
func (p *Parser) ParseLine(line string) (Record, error) {
	line = strings.TrimRight(line, "\r\n")
	return p.ParseFields(strings.Split(line, ","))
}

// ParseFields parses a row that has already been split into fields.
func (p *Parser) ParseFields(fields []string) (Record, error) {
	if p.policy == Strict && len(fields) < NumColumns {
		return Record{}, fmt.Errorf("%w: got %d fields, want %d", ErrShortLine, len(fields), NumColumns)
	}

	field := func(col int) string {
		if col < len(fields) {
			return strings.TrimSpace(fields[col])
		}
		return ""
	}

	var (
		r   Record
		err error
	)
	r.Path = imageName(field(ColImagePath))

	ints := [...]struct {
		col int
		dst *int32
	}{
		{ColWidth, &r.Width},
		{ColHeight, &r.Height},
		{ColXMin, &r.XMin},
		{ColYMin, &r.YMin},
		{ColXMax, &r.XMax},
		{ColYMax, &r.YMax},
	}
	for _, f := range ints {
		if *f.dst, err = p.parseInt(f.col, field(f.col)); err != nil {
			return Record{}, err
		}
	}

	if r.Label, err = p.labels.Canonical(field(ColCategory)); err != nil {
		return Record{}, err
	}
	if r.Confidence, err = p.parseFloat(ColConfidence, field(ColConfidence)); err != nil {
		return Record{}, err
	}

	r.RefreshID()
	return r, nil
}

// imageName keeps the path from its last '/' on, so "/a/b/c.jpg" becomes
// "/c.jpg". Directory components are re-added by ingestion.
func imageName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i:]
	}
	return "/" + path
}

func (p *Parser) parseInt(col int, text string) (int32, error) {
	v, err := strconv.ParseInt(text, 10, 32)
	if err == nil {
		return int32(v), nil
	}
	if p.policy == Strict {
		return 0, &FieldError{Column: columnNames[col], Text: text, cause: err}
	}
	// Accept a leading signed integer: "12px" is 12.
	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if v, err := strconv.ParseInt(text[:end], 10, 32); err == nil {
		return int32(v), nil
	}
	return 0, nil
}

func (p *Parser) parseFloat(col int, text string) (float32, error) {
	v, err := strconv.ParseFloat(text, 32)
	if err == nil {
		return float32(v), nil
	}
	if p.policy == Strict {
		return 0, &FieldError{Column: columnNames[col], Text: text, cause: err}
	}
	return 0, nil
}

// DefaultParser is a Lenient parser over label.Default.
var DefaultParser = NewParser(nil, Lenient)

// Parse parses line with DefaultParser.
func Parse(line string) (Record, error) {
	return DefaultParser.ParseLine(line)
}
