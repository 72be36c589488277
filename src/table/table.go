// Package table loads delimited text (and xlsx sheets) into named columns and
// extracts numeric (x, y) series from them.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iafilius/TrainingPlots/src/series"
)

// Tokens treated as a missing value, matching the pandas read_csv defaults.
var naTokens = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-nan": {}, "-NaN": {},
	"NULL": {}, "null": {}, "None": {}, "<NA>": {}, "#N/A": {}, "#NA": {}, "#N/A N/A": {},
	"1.#IND": {}, "1.#QNAN": {}, "-1.#IND": {}, "-1.#QNAN": {},
}

// Table is an immutable set of equally long columns keyed by header name.
type Table struct {
	columns []string
	cells   map[string][]string
	rows    int
}

// Stats describes what Select did to the rows.
type Stats struct {
	Rows    int // rows in the table
	Dropped int // rows with a missing x or y value
}

// Load reads the file at path. The reader is chosen by extension: .xlsx reads
// the first sheet, .tsv is tab separated and everything else is parsed as CSV.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadXLSX(path)
	case ".tsv":
		return loadDelimited(path, '\t')
	default:
		return loadDelimited(path, ',')
	}
}

func loadDelimited(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, delim)
}

// Parse reads a header row followed by data rows from r.
func Parse(r io.Reader, delim rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrMalformed)
	}
	header := dedupeHeader(records[0])
	t := &Table{columns: header, cells: make(map[string][]string, len(header)), rows: len(records) - 1}
	for _, name := range header {
		t.cells[name] = make([]string, 0, t.rows)
	}
	for i, rec := range records[1:] {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d", ErrMalformed, i+2, len(rec), len(header))
		}
		// short rows leave the trailing columns missing
		for j, name := range header {
			cell := ""
			if j < len(rec) {
				cell = rec[j]
			}
			t.cells[name] = append(t.cells[name], cell)
		}
	}
	return t, nil
}

// dedupeHeader strips a UTF-8 BOM and renames repeated names to "name.1", "name.2", ...
func dedupeHeader(raw []string) []string {
	out := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, name := range raw {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		n := seen[name]
		seen[name] = n + 1
		if n > 0 {
			cand := fmt.Sprintf("%s.%d", name, n)
			for seen[cand] > 0 {
				n++
				cand = fmt.Sprintf("%s.%d", name, n)
			}
			seen[cand] = 1
			name = cand
		}
		out[i] = name
	}
	return out
}

// Columns returns the header names in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

func (t *Table) Has(name string) bool {
	_, ok := t.cells[name]
	return ok
}

func (t *Table) Rows() int { return t.rows }

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) { return t.rows, len(t.columns) }

// MatchingColumns lists the columns whose names contain any of substrs, case-insensitively.
func (t *Table) MatchingColumns(substrs ...string) []string {
	var out []string
	for _, name := range t.columns {
		ln := strings.ToLower(name)
		for _, sub := range substrs {
			if strings.Contains(ln, strings.ToLower(sub)) {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// Select pairs column x with column y, dropping rows where either is missing.
// A present but non-numeric cell makes the whole selection fail with ErrMalformed.
func (t *Table) Select(x, y string) (series.Series, Stats, error) {
	st := Stats{Rows: t.rows}
	for _, name := range []string{x, y} {
		if !t.Has(name) {
			return series.Series{}, st, &ColumnError{Column: name, Available: t.Columns()}
		}
	}
	xs, ys := t.cells[x], t.cells[y]
	out := series.Series{Name: y, Points: make([]series.Point, 0, t.rows)}
	for i := 0; i < t.rows; i++ {
		xv, xMissing, err := parseCell(xs[i])
		if err != nil {
			return series.Series{}, st, fmt.Errorf("%w: column %q row %d: %v", ErrMalformed, x, i+2, err)
		}
		yv, yMissing, err := parseCell(ys[i])
		if err != nil {
			return series.Series{}, st, fmt.Errorf("%w: column %q row %d: %v", ErrMalformed, y, i+2, err)
		}
		if xMissing || yMissing {
			st.Dropped++
			continue
		}
		out.Points = append(out.Points, series.Point{X: xv, Y: yv})
	}
	return out, st, nil
}

func parseCell(raw string) (float64, bool, error) {
	s := strings.TrimSpace(raw)
	if _, ok := naTokens[s]; ok {
		return math.NaN(), true, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("not a number: %q", raw)
	}
	if math.IsNaN(v) {
		return v, true, nil
	}
	return v, false, nil
}

// Count returns how many cells of column name hold a value and how many are missing.
func (t *Table) Count(name string) (present, missing int) {
	for _, c := range t.cells[name] {
		if _, ok := naTokens[strings.TrimSpace(c)]; ok {
			missing++
			continue
		}
		present++
	}
	return present, missing
}
