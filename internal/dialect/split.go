package dialect

import (
	"strings"
	"unicode/utf8"
)

// Split breaks raw text into records of raw fields. Field text is kept
// verbatim: surrounding quotes, doubled quotes, escape characters and
// whitespace all survive. A limit > 0 stops after that many records.
//
// Splitting is tolerant. A quote opens a quoted span only at the start of a
// field; inside a span delimiters and line breaks are literal. A span still
// open at end of input is re-read with its opening quote as a bare literal.
func (d Dialect) Split(raw string, limit int) [][]string {
	bare := make(map[int]struct{})
	for {
		records, open := d.split(raw, limit, bare)
		if open < 0 {
			return records
		}
		bare[open] = struct{}{}
	}
}

// split runs one pass of the state machine. It returns the byte offset of a
// quote whose span was never closed, or -1.
func (d Dialect) split(raw string, limit int, bare map[int]struct{}) ([][]string, int) {
	var (
		records    [][]string
		fields     []string
		start      int
		inQuote    bool
		quoteStart = -1
		atField    = true
	)

	endField := func(end int) {
		fields = append(fields, raw[start:end])
	}
	endRecord := func() {
		records = append(records, fields)
		fields = nil
	}

	i := 0
	for i < len(raw) {
		if limit > 0 && len(records) >= limit {
			return records, -1
		}
		r, size := utf8.DecodeRuneInString(raw[i:])

		if inQuote {
			switch {
			case d.HasEscape() && r == d.EscapeChar:
				// escape + next character are both literal
				i += size
				if i < len(raw) {
					_, next := utf8.DecodeRuneInString(raw[i:])
					i += next
				}
				continue
			case r == d.QuoteChar:
				if i+size < len(raw) {
					if nr, nsize := utf8.DecodeRuneInString(raw[i+size:]); nr == d.QuoteChar {
						i += size + nsize
						continue
					}
				}
				inQuote = false
				quoteStart = -1
			}
			i += size
			continue
		}

		switch {
		case r == d.QuoteChar && atField:
			if _, isBare := bare[i]; !isBare {
				inQuote = true
				quoteStart = i
			}
			atField = false
			i += size
		case d.HasEscape() && r == d.EscapeChar:
			atField = false
			i += size
			if i < len(raw) {
				_, next := utf8.DecodeRuneInString(raw[i:])
				i += next
			}
		case r == d.Delimiter:
			endField(i)
			i += size
			start = i
			atField = true
		case r == '\n' || r == '\r':
			if len(fields) > 0 || i > start {
				endField(i)
			}
			endRecord()
			i += size
			if r == '\r' && i < len(raw) && raw[i] == '\n' {
				i++
			}
			start = i
			atField = true
		default:
			atField = false
			i += size
		}
	}

	if inQuote {
		return nil, quoteStart
	}
	if start < len(raw) || len(fields) > 0 {
		if limit <= 0 || len(records) < limit {
			endField(len(raw))
			endRecord()
		}
	}
	return records, -1
}

// Unquote strips one pair of surrounding quote characters and collapses
// doubled quotes. Fields that are not fully quoted are returned unchanged.
func (d Dialect) Unquote(field string) string {
	q := string(d.QuoteChar)
	if len(field) < 2*len(q) || !strings.HasPrefix(field, q) || !strings.HasSuffix(field, q) {
		return field
	}
	inner := field[len(q) : len(field)-len(q)]
	return strings.ReplaceAll(inner, q+q, q)
}
