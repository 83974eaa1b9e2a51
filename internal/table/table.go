// Package table loads CSV text into headers and raw data rows using an
// inferred dialect.
package table

import (
	"strings"

	"github.com/dbsmedya/csvaudit/internal/dialect"
)

// FirstDataRow is the row number of the first data row. Row 1 is the header
// or the notional header line, whether or not the file has one.
const FirstDataRow = 2

// Table holds a parsed CSV file. Headers is nil when the file has no header.
// Rows keep the raw field text, including quotes and whitespace.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Load splits raw into records with d. When hasHeader is set the first
// record becomes the (unquoted) header row.
func Load(raw string, d dialect.Dialect, hasHeader bool) *Table {
	records := d.Split(raw, 0)

	t := &Table{}
	if hasHeader && len(records) > 0 {
		t.Headers = make([]string, len(records[0]))
		for i, name := range records[0] {
			t.Headers[i] = d.Unquote(strings.TrimSpace(name))
		}
		records = records[1:]
	}
	t.Rows = records
	return t
}

// HasHeader reports whether the table carries a header row.
func (t *Table) HasHeader() bool {
	return t.Headers != nil
}

// RecordCount is the number of data rows plus the header, if any.
func (t *Table) RecordCount() int {
	if t.HasHeader() {
		return len(t.Rows) + 1
	}
	return len(t.Rows)
}

// ExpectedFieldCount is the reference width every row is compared against:
// the header width, or the first data row's width without a header.
func (t *Table) ExpectedFieldCount() (int, bool) {
	if t.HasHeader() {
		return len(t.Headers), true
	}
	if len(t.Rows) == 0 {
		return 0, false
	}
	return len(t.Rows[0]), true
}

// RowNumber converts a zero-based index into Rows to its reported row number.
func RowNumber(index int) int {
	return index + FirstDataRow
}
