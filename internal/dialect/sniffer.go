package dialect

import (
	"strings"
	"unicode/utf8"
)

// DelimiterScore is the frequency-consistency result for one candidate.
type DelimiterScore struct {
	Delimiter   rune
	Mode        int     // most common per-line occurrence count
	Consistency float64 // share of sampled lines whose count equals Mode
	Qualified   bool
}

// Result is everything the sniffer inferred about a sample.
type Result struct {
	Dialect      Dialect
	HasHeader    bool
	Scores       []DelimiterScore
	SampledLines int
}

// Sniffer infers a Dialect from raw text using fixed, deterministic heuristics.
type Sniffer struct {
	opts Options
}

// NewSniffer creates a Sniffer. Zero-valued options fall back to DefaultOptions.
func NewSniffer(opts Options) *Sniffer {
	def := DefaultOptions()
	if len(opts.Delimiters) == 0 {
		opts.Delimiters = def.Delimiters
	}
	if len(opts.QuoteChars) == 0 {
		opts.QuoteChars = def.QuoteChars
	}
	if opts.EscapeChars == nil {
		opts.EscapeChars = def.EscapeChars
	}
	if opts.MinConsistency <= 0 {
		opts.MinConsistency = def.MinConsistency
	}
	if opts.SampleLines <= 0 {
		opts.SampleLines = def.SampleLines
	}
	if opts.HeaderSampleRows <= 0 {
		opts.HeaderSampleRows = def.HeaderSampleRows
	}
	return &Sniffer{opts: opts}
}

// Sniff infers the dialect and header presence with default options.
func Sniff(raw string) (Dialect, bool, error) {
	return NewSniffer(DefaultOptions()).Sniff(raw)
}

// Sniff infers the dialect of raw and whether its first record is a header.
func (s *Sniffer) Sniff(raw string) (Dialect, bool, error) {
	res, err := s.Inspect(raw)
	if err != nil {
		return Dialect{}, false, err
	}
	return res.Dialect, res.HasHeader, nil
}

// Inspect runs every heuristic and keeps the per-candidate delimiter scores.
func (s *Sniffer) Inspect(raw string) (*Result, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &InferenceError{Err: ErrEmptyInput}
	}

	lines := sampleLines(raw, s.opts.SampleLines)
	if len(lines) < 2 {
		return nil, &InferenceError{Err: ErrSingleLine}
	}

	quote := s.guessQuote(lines)
	scores := s.scoreDelimiters(lines, quote)

	best := -1
	for i, sc := range scores {
		if !sc.Qualified {
			continue
		}
		if best < 0 || sc.Consistency > scores[best].Consistency {
			best = i
		}
	}
	if best < 0 {
		return nil, &InferenceError{Err: ErrNoConsistentDelimiter}
	}

	d := Dialect{Delimiter: scores[best].Delimiter, QuoteChar: quote}
	if err := d.Validate(); err != nil {
		return nil, &InferenceError{Err: err}
	}
	d.EscapeChar = s.guessEscape(raw, d)

	return &Result{
		Dialect:      d,
		HasHeader:    s.detectHeader(raw, d),
		Scores:       scores,
		SampledLines: len(lines),
	}, nil
}

// sampleLines returns up to n non-blank physical lines. \n, \r\n and \r all
// terminate a line.
func sampleLines(raw string, n int) []string {
	var lines []string
	start := 0
	for i := 0; i <= len(raw) && len(lines) < n; i++ {
		if i < len(raw) && raw[i] != '\n' && raw[i] != '\r' {
			continue
		}
		if line := raw[start:i]; strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		if i < len(raw)-1 && raw[i] == '\r' && raw[i+1] == '\n' {
			i++
		}
		start = i + 1
	}
	return lines
}

// guessQuote picks the candidate quote seen most often where a quoted span
// could open or close: at the start or end of a line, or next to a
// delimiter candidate.
func (s *Sniffer) guessQuote(lines []string) rune {
	best, bestCount := s.opts.QuoteChars[0], 0
	for _, q := range s.opts.QuoteChars {
		count := 0
		for _, line := range lines {
			runes := []rune(line)
			for j, r := range runes {
				if r != q {
					continue
				}
				before := j == 0 || s.isDelimiter(runes[j-1])
				after := j == len(runes)-1 || s.isDelimiter(runes[j+1])
				if before || after {
					count++
				}
			}
		}
		if count > bestCount {
			best, bestCount = q, count
		}
	}
	return best
}

func (s *Sniffer) isDelimiter(r rune) bool {
	for _, d := range s.opts.Delimiters {
		if r == d {
			return true
		}
	}
	return false
}

// scoreDelimiters measures how stable each candidate's per-line count is.
// Occurrences inside quoted spans are ignored.
func (s *Sniffer) scoreDelimiters(lines []string, quote rune) []DelimiterScore {
	scores := make([]DelimiterScore, 0, len(s.opts.Delimiters))
	for _, delim := range s.opts.Delimiters {
		freq := make(map[int]int)
		for _, line := range lines {
			freq[countOutsideQuotes(line, delim, quote)]++
		}

		mode, modeFreq := 0, 0
		for count, f := range freq {
			if f > modeFreq || (f == modeFreq && count > mode) {
				mode, modeFreq = count, f
			}
		}

		consistency := float64(modeFreq) / float64(len(lines))
		scores = append(scores, DelimiterScore{
			Delimiter:   delim,
			Mode:        mode,
			Consistency: consistency,
			Qualified:   mode > 0 && consistency >= s.opts.MinConsistency,
		})
	}
	return scores
}

// countOutsideQuotes counts delim outside quoted spans. As in Split, a
// quote opens a span only at the start of a field and a doubled quote
// inside a span is literal.
func countOutsideQuotes(line string, delim, quote rune) int {
	runes := []rune(line)
	n := 0
	inQuote, atField := false, true
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuote:
			if r != quote {
				continue
			}
			if i+1 < len(runes) && runes[i+1] == quote {
				i++
				continue
			}
			inQuote = false
		case r == quote && atField:
			inQuote = true
			atField = false
		case r == delim:
			n++
			atField = true
		default:
			atField = false
		}
	}
	return n
}

// guessEscape returns the escape candidate that precedes a quote or the
// delimiter inside a quoted span. Zero when none.
func (s *Sniffer) guessEscape(raw string, d Dialect) rune {
	if len(s.opts.EscapeChars) == 0 {
		return 0
	}
	isEscape := func(r rune) bool {
		for _, e := range s.opts.EscapeChars {
			if r == e && r != d.Delimiter && r != d.QuoteChar {
				return true
			}
		}
		return false
	}

	inQuote := false
	atField := true
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRuneInString(raw[i:])
		next, nsize := utf8.DecodeRuneInString(raw[i+size:])
		switch {
		case inQuote && isEscape(r) && (next == d.QuoteChar || next == d.Delimiter):
			return r
		case inQuote && r == d.QuoteChar && next == d.QuoteChar:
			i += size + nsize
			continue
		case inQuote && r == d.QuoteChar:
			inQuote = false
		case !inQuote && r == d.QuoteChar && atField:
			inQuote = true
		}
		if !inQuote {
			atField = r == d.Delimiter || r == '\n' || r == '\r'
		}
		i += size
	}
	return 0
}
