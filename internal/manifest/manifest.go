// Package manifest reads the tab-separated sample table driving a pipeline
// run. It is a purely syntactic layer: rows come out in file order with
// comment rows stripped, and everything beyond the field count is someone
// else's problem (see the sample package).
package manifest

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CommentMarker starts a comment row when it is the first character of the
// first cell.
const CommentMarker = '#'

// numFields is the number of leading columns a data row must carry. Trailing
// extra columns are tolerated and ignored.
const numFields = 7

// Row is one interpreted manifest row. Any columns past ScoreMin are dropped
// at parse time.
type Row struct {
	SampleID    string
	ShortID     string
	LibraryType string
	R1File      string
	R2File      string
	Genome      string
	ScoreMin    string

	// Line is the 1-based line number in the manifest file, kept for error
	// reporting only.
	Line int
}

// MalformedRowError reports a non-comment row with too few columns.
type MalformedRowError struct {
	Line   int
	Fields int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("manifest line %d: malformed row: got %d fields, need at least %d", e.Line, e.Fields, numFields)
}

// Reader produces manifest rows lazily, in file order. Re-opening the
// underlying file and constructing a new Reader restarts the sequence.
type Reader struct {
	cr *csv.Reader
}

// NewReader wraps r, which must contain tab-separated text.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = CommentMarker
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &Reader{cr: cr}
}

// Next returns the next data row. It returns io.EOF once the input is
// exhausted, and *MalformedRowError for a short row.
func (r *Reader) Next() (Row, error) {
	fields, err := r.cr.Read()
	if err == io.EOF {
		return Row{}, io.EOF
	}
	if err != nil {
		return Row{}, fmt.Errorf("reading manifest: %w", err)
	}

	line, _ := r.cr.FieldPos(0)
	if len(fields) < numFields {
		return Row{}, &MalformedRowError{Line: line, Fields: len(fields)}
	}

	return Row{
		SampleID:    fields[0],
		ShortID:     fields[1],
		LibraryType: fields[2],
		R1File:      fields[3],
		R2File:      fields[4],
		Genome:      fields[5],
		ScoreMin:    fields[6],
		Line:        line,
	}, nil
}

// ReadAll drains the reader. Mostly a convenience for tests and small
// manifests; the fold in the sample package consumes Next directly.
func (r *Reader) ReadAll() ([]Row, error) {
	var rows []Row
	for {
		row, err := r.Next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
