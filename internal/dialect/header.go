package dialect

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var datePrefix = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}`)

// detectHeader votes column by column on whether the first record looks
// like labels rather than data. A positive total means header.
func (s *Sniffer) detectHeader(raw string, d Dialect) bool {
	records := d.Split(raw, s.opts.HeaderSampleRows+1)
	if len(records) < 2 {
		return false
	}
	header, data := records[0], records[1:]

	votes := 0
	for col, cell := range header {
		label := cellValue(cell, d)
		if label == "" {
			continue
		}

		var values []string
		for _, row := range data {
			if col < len(row) {
				if v := cellValue(row[col], d); v != "" {
					values = append(values, v)
				}
			}
		}
		if len(values) == 0 {
			continue
		}

		votes += columnVote(label, values)
	}
	return votes > 0
}

func columnVote(label string, values []string) int {
	if looksTyped(label) {
		return -1
	}

	typed := 0
	for _, v := range values {
		if v == label {
			return -1
		}
		if looksTyped(v) {
			typed++
		}
	}
	if typed*2 >= len(values) {
		return 1
	}
	if typed > 0 {
		return 0
	}

	// all text: compare against a shared value length, if there is one
	length := utf8.RuneCountInString(values[0])
	for _, v := range values[1:] {
		if utf8.RuneCountInString(v) != length {
			return 0
		}
	}
	if utf8.RuneCountInString(label) != length {
		return 1
	}
	return -1
}

func cellValue(cell string, d Dialect) string {
	return strings.TrimSpace(d.Unquote(strings.TrimSpace(cell)))
}

// looksTyped reports a plain decimal number (optional sign, digits, at most
// one '.') or a value starting with a YYYY-MM-DD date.
func looksTyped(v string) bool {
	return looksNumeric(v) || datePrefix.MatchString(v)
}

func looksNumeric(v string) bool {
	if len(v) > 0 && (v[0] == '+' || v[0] == '-') {
		v = v[1:]
	}
	digits, dots := 0, 0
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
