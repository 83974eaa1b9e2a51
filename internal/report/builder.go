// Package report turns sniffed parameters and analyzer findings into the
// human-readable analysis log.
package report

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dbsmedya/csvaudit/internal/analyzer"
	"github.com/dbsmedya/csvaudit/internal/dialect"
	"github.com/dbsmedya/csvaudit/internal/table"
)

// ErrorPrefix starts the single diagnostic line of a failed analysis.
const ErrorPrefix = "Error analyzing file: "

// Build returns the complete report: summary block followed by the
// potential issues section.
func Build(path string, d dialect.Dialect, hasHeader bool, t *table.Table, f *analyzer.Findings) []string {
	return append(Summary(path, d, hasHeader, t), Issues(f)...)
}

// Summary is the header block describing the file and its dialect.
func Summary(path string, d dialect.Dialect, hasHeader bool, t *table.Table) []string {
	lines := []string{
		"CSV File Summary:",
		"File: " + path,
		fmt.Sprintf("Total number of records: %d", t.RecordCount()),
		fmt.Sprintf("Has header: %t", hasHeader),
	}
	if t.HasHeader() {
		lines = append(lines,
			"Field names: "+strings.Join(t.Headers, ", "),
			fmt.Sprintf("Number of fields: %d", len(t.Headers)),
		)
	}

	escape := "none"
	if d.HasEscape() {
		escape = strconv.QuoteRune(d.EscapeChar)
	}
	return append(lines,
		"Delimiter: "+strconv.QuoteRune(d.Delimiter),
		"Quote character: "+strconv.QuoteRune(d.QuoteChar),
		"Escape character: "+escape,
	)
}

// sectionText labels the single-line issue sections.
var sectionText = map[analyzer.Category]string{
	analyzer.UnnecessaryQuoting: "Unnecessary quoting detected in rows",
	analyzer.EscapedCharacters:  "Escaped characters found in rows",
	analyzer.LineBreaks:         "Line returns found within fields in rows",
	analyzer.Whitespace:         "Leading or trailing whitespace found in rows",
}

// Issues renders one numbered block per category present in f, in category
// order. The section heading is emitted even when nothing was found.
func Issues(f *analyzer.Findings) []string {
	lines := []string{"", "Potential Issues:"}
	if f == nil {
		return lines
	}

	for _, c := range f.Categories() {
		switch {
		case c == analyzer.InconsistentFields:
			lines = append(lines, fieldCountBlock(f)...)
		case c.IsCause():
			// listed inside the field count block
		case c == analyzer.ColumnType:
			lines = append(lines, fmt.Sprintf("%d. Data type analysis:", c.Section()))
			for _, fd := range f.Of(c) {
				lines = append(lines, "   - "+describeColumn(fd))
			}
		default:
			lines = append(lines, fmt.Sprintf("%d. %s: %s", c.Section(), sectionText[c], formatRows(f.Rows(c))))
		}
	}
	return lines
}

func fieldCountBlock(f *analyzer.Findings) []string {
	fd := f.Of(analyzer.InconsistentFields)[0]
	lines := []string{fmt.Sprintf("%d. Inconsistent number of fields detected:", analyzer.InconsistentFields.Section())}
	for _, c := range fd.Counts {
		lines = append(lines, fmt.Sprintf("   Row %d: Expected %d fields, found %d", c.Row, fd.Expected, c.Count))
	}

	lines = append(lines, "   Possible causes:")
	unescaped := f.Rows(analyzer.UnescapedDelimiter)
	if len(unescaped) > 0 {
		lines = append(lines, "   - Unescaped delimiters in quoted fields in rows: "+formatRows(unescaped))
	}
	if mismatched := f.Rows(analyzer.MismatchedQuotes); len(mismatched) > 0 && !slices.Equal(mismatched, unescaped) {
		lines = append(lines, "   - Mismatched quotes in rows: "+formatRows(mismatched))
	}
	if rows := f.Rows(analyzer.EmbeddedLineBreak); len(rows) > 0 {
		lines = append(lines, "   - Line breaks within fields in rows: "+formatRows(rows))
	}
	if rows := f.Rows(analyzer.TrailingEmptyFields); len(rows) > 0 {
		lines = append(lines, "   - Empty fields at the end of rows: "+formatRows(rows))
	}
	return append(lines,
		"   - For rows with fewer fields than expected, check for missing data or incorrect delimiters",
		"   - Manual inspection may be required for complex cases",
	)
}

func describeColumn(fd analyzer.Finding) string {
	name := fd.Column.Name
	switch fd.Column.Kind {
	case analyzer.KindInteger:
		return fmt.Sprintf("Field '%s' contains only numeric values", name)
	case analyzer.KindFloat:
		return fmt.Sprintf("Field '%s' may contain floating-point values", name)
	case analyzer.KindDate:
		return fmt.Sprintf("Field '%s' may contain date values", name)
	default:
		return fmt.Sprintf("Field '%s' has mixed data types in rows: %s", name, formatRows(fd.Rows))
	}
}

// formatRows renders row numbers as [2, 5, 9].
func formatRows(rows []int) string {
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = strconv.Itoa(r)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
