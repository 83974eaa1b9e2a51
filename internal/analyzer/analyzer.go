// Package analyzer runs the fixed battery of CSV anomaly checks over a
// loaded table. Every check is total: a row either matches or it does not.
package analyzer

import (
	"errors"
	"strings"

	"github.com/dbsmedya/csvaudit/internal/dialect"
	"github.com/dbsmedya/csvaudit/internal/table"
)

// ErrNoReferenceRow is returned when the table has neither a header nor a
// data row to take the expected field count from.
var ErrNoReferenceRow = errors.New("cannot establish expected field count: no header and no data rows")

// rowCheck reports whether a row exhibits an anomaly.
type rowCheck func(row []string) bool

// Analyze runs every check over t and returns the non-empty findings in
// category order.
func Analyze(t *table.Table, d dialect.Dialect) (*Findings, error) {
	expected, ok := t.ExpectedFieldCount()
	if !ok {
		return nil, ErrNoReferenceRow
	}

	f := newFindings()

	var (
		mismatched []int
		counts     []FieldCount
	)
	for i, row := range t.Rows {
		if len(row) != expected {
			mismatched = append(mismatched, i)
			counts = append(counts, FieldCount{Row: table.RowNumber(i), Count: len(row)})
		}
	}
	f.add(Finding{Category: InconsistentFields, Rows: rowNumbers(mismatched), Expected: expected, Counts: counts})

	f.add(Finding{Category: UnescapedDelimiter, Rows: matchIndexes(t.Rows, mismatched, anyField(func(s string) bool {
		return oddQuotes(s, d) && strings.ContainsRune(s, d.Delimiter)
	}))})
	f.add(Finding{Category: MismatchedQuotes, Rows: matchIndexes(t.Rows, mismatched, anyField(func(s string) bool {
		return oddQuotes(s, d)
	}))})
	f.add(Finding{Category: EmbeddedLineBreak, Rows: matchIndexes(t.Rows, mismatched, anyField(hasLineBreak))})
	f.add(Finding{Category: TrailingEmptyFields, Rows: matchIndexes(t.Rows, mismatched, func(row []string) bool {
		return trailingEmpty(row, expected)
	})})

	f.add(Finding{Category: UnnecessaryQuoting, Rows: matchAll(t.Rows, anyField(func(s string) bool {
		return needlesslyQuoted(s, d)
	}))})

	if d.HasEscape() {
		f.add(Finding{Category: EscapedCharacters, Rows: matchAll(t.Rows, anyField(func(s string) bool {
			return strings.ContainsRune(s, d.EscapeChar)
		}))})
	}

	if !f.Has(EmbeddedLineBreak) {
		f.add(Finding{Category: LineBreaks, Rows: matchAll(t.Rows, anyField(hasLineBreak))})
	}

	f.add(Finding{Category: Whitespace, Rows: matchAll(t.Rows, anyField(func(s string) bool {
		return padded(s) || padded(d.Unquote(s))
	}))})

	for _, fd := range profileColumns(t, d) {
		f.add(fd)
	}

	return f, nil
}

func anyField(match func(string) bool) rowCheck {
	return func(row []string) bool {
		for _, field := range row {
			if match(field) {
				return true
			}
		}
		return false
	}
}

func matchAll(rows [][]string, check rowCheck) []int {
	var out []int
	for i, row := range rows {
		if check(row) {
			out = append(out, table.RowNumber(i))
		}
	}
	return out
}

func matchIndexes(rows [][]string, indexes []int, check rowCheck) []int {
	var out []int
	for _, i := range indexes {
		if check(rows[i]) {
			out = append(out, table.RowNumber(i))
		}
	}
	return out
}

func rowNumbers(indexes []int) []int {
	if len(indexes) == 0 {
		return nil
	}
	out := make([]int, len(indexes))
	for i, idx := range indexes {
		out[i] = table.RowNumber(idx)
	}
	return out
}

func oddQuotes(field string, d dialect.Dialect) bool {
	return strings.Count(field, string(d.QuoteChar))%2 != 0
}

func hasLineBreak(field string) bool {
	return strings.ContainsAny(field, "\r\n")
}

// padded reports leading or trailing whitespace.
func padded(s string) bool {
	return strings.TrimSpace(s) != s
}

// trailingEmpty reports whether a too-wide row only overflows with blank fields.
func trailingEmpty(row []string, expected int) bool {
	if len(row) <= expected {
		return false
	}
	for _, field := range row[expected:] {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// needlesslyQuoted reports a field wrapped in quotes that holds no delimiter.
func needlesslyQuoted(field string, d dialect.Dialect) bool {
	q := string(d.QuoteChar)
	return len(field) >= 2*len(q) &&
		strings.HasPrefix(field, q) &&
		strings.HasSuffix(field, q) &&
		!strings.ContainsRune(field, d.Delimiter)
}
