// internal/app/system/csvutil/reader.go
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// record is one non-blank data row keyed by canonical column name.
type record struct {
	line   int
	fields map[string]string
	raw    []string
}

func (r record) get(col string) string {
	return r.fields[col]
}

// columns maps each canonical column to its accepted header spellings, in
// priority order.
type columns map[string][]string

// readRecords reads a header-first CSV. Header cells are matched
// case-insensitively against cols; unknown columns are ignored. When several
// spellings of one column are present the first non-empty one in priority
// order wins. Blank lines, including rows whose cells are all whitespace,
// are skipped. They do not count toward MaxRows and do not take a position
// in the returned slice, so default ids and SPOC buckets follow the
// non-blank rows only.
func readRecords(r io.Reader, cols columns, opts ParseOptions) ([]record, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	known := 0
	for _, spellings := range cols {
		for _, sp := range spellings {
			if _, ok := pos[sp]; ok {
				known++
			}
		}
	}
	if known == 0 {
		return nil, nil, ErrMissingHeader
	}

	var (
		out     []record
		rowErrs []RowError
	)
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Reason: err.Error()})
			continue
		}
		if blank(rec) {
			continue
		}
		if opts.MaxRows > 0 && len(out) >= opts.MaxRows {
			return nil, nil, ErrTooManyRows
		}
		line, _ := reader.FieldPos(0)

		fields := make(map[string]string, len(cols))
		for col, spellings := range cols {
			for _, sp := range spellings {
				i, ok := pos[sp]
				if !ok || i >= len(rec) {
					continue
				}
				if v := strings.TrimSpace(rec[i]); v != "" {
					fields[col] = v
					break
				}
			}
		}
		out = append(out, record{line: line, fields: fields, raw: rec})
	}
	return out, rowErrs, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// splitList splits a ';'-separated cell, trimming items and dropping
// empty ones.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// dupTracker reports repeated ids with the line they first appeared on.
type dupTracker map[string]int

func (d dupTracker) check(id string, line int) *RowError {
	key := strings.ToLower(id)
	if first, ok := d[key]; ok {
		return &RowError{Line: line, Reason: fmt.Sprintf("duplicate id %q (first appears on row %d)", id, first)}
	}
	d[key] = line
	return nil
}
