package analyzer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dbsmedya/csvaudit/internal/dialect"
	"github.com/dbsmedya/csvaudit/internal/table"
)

var datePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}`)

// isIntegerLike: non-empty and every character a decimal digit.
func isIntegerLike(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isFloatLike strips every '.' before the digit test, so plain integers
// match too. Both classifiers are evaluated independently.
func isFloatLike(v string) bool {
	return isIntegerLike(strings.ReplaceAll(v, ".", ""))
}

func isDateLike(v string) bool {
	return datePattern.MatchString(v)
}

// profileColumns classifies every header column. A column whose present
// cells all satisfy one classifier (integer, then float, then date) is
// reported as that kind; otherwise the rows satisfying none are reported
// as mixed. Rows too short to have the column are left out.
func profileColumns(t *table.Table, d dialect.Dialect) []Finding {
	if !t.HasHeader() {
		return nil
	}

	var out []Finding
	for col, name := range t.Headers {
		var present, ints, floats, dates, none []int
		for i, row := range t.Rows {
			if col >= len(row) {
				continue
			}
			n := table.RowNumber(i)
			present = append(present, n)

			v := strings.TrimSpace(d.Unquote(strings.TrimSpace(row[col])))
			matched := false
			if isIntegerLike(v) {
				ints = append(ints, n)
				matched = true
			}
			if isFloatLike(v) {
				floats = append(floats, n)
				matched = true
			}
			if isDateLike(v) {
				dates = append(dates, n)
				matched = true
			}
			if !matched {
				none = append(none, n)
			}
		}
		if len(present) == 0 {
			continue
		}

		profile := &ColumnProfile{Index: col, Name: name}
		switch {
		case len(ints) == len(present):
			profile.Kind = KindInteger
		case len(floats) == len(present):
			profile.Kind = KindFloat
		case len(dates) == len(present):
			profile.Kind = KindDate
		default:
			if len(none) == 0 {
				continue
			}
			profile.Kind = KindMixed
			out = append(out, Finding{Category: ColumnType, Rows: none, Column: profile})
			continue
		}
		out = append(out, Finding{Category: ColumnType, Rows: present, Column: profile})
	}
	return out
}
