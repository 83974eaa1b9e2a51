// Package dialect infers the structural parameters of CSV text: delimiter,
// quote character, escape character and header presence.
package dialect

import (
	"errors"
	"fmt"
	"strconv"
)

// Dialect describes how raw text is split into fields and records.
// A zero EscapeChar means no escape character.
type Dialect struct {
	Delimiter  rune
	QuoteChar  rune
	EscapeChar rune
}

// HasEscape reports whether an escape character was inferred.
func (d Dialect) HasEscape() bool {
	return d.EscapeChar != 0
}

// Validate reports a dialect whose characters collide.
func (d Dialect) Validate() error {
	switch {
	case d.Delimiter == 0:
		return errors.New("dialect: delimiter is not set")
	case d.QuoteChar == 0:
		return errors.New("dialect: quote character is not set")
	case d.Delimiter == d.QuoteChar:
		return fmt.Errorf("dialect: delimiter and quote character are both %s", strconv.QuoteRune(d.Delimiter))
	case isLineBreak(d.Delimiter) || isLineBreak(d.QuoteChar):
		return errors.New("dialect: delimiter and quote character must not be line breaks")
	case d.HasEscape() && (d.EscapeChar == d.Delimiter || d.EscapeChar == d.QuoteChar):
		return fmt.Errorf("dialect: escape character %s collides with delimiter or quote", strconv.QuoteRune(d.EscapeChar))
	}
	return nil
}

func (d Dialect) String() string {
	esc := "none"
	if d.HasEscape() {
		esc = strconv.QuoteRune(d.EscapeChar)
	}
	return fmt.Sprintf("delimiter=%s quote=%s escape=%s",
		strconv.QuoteRune(d.Delimiter), strconv.QuoteRune(d.QuoteChar), esc)
}

// Options tunes the sniffing heuristics.
type Options struct {
	Delimiters       []rune  // candidate delimiters, in preference order
	QuoteChars       []rune  // candidate quote characters, in preference order
	EscapeChars      []rune  // candidate escape characters
	MinConsistency   float64 // share of lines that must agree on the delimiter count
	SampleLines      int     // non-blank lines inspected for delimiter detection
	HeaderSampleRows int     // records inspected for header detection
}

// DefaultOptions returns the stock candidate sets and thresholds.
func DefaultOptions() Options {
	return Options{
		Delimiters:       []rune{',', ';', '\t', '|'},
		QuoteChars:       []rune{'"', '\''},
		EscapeChars:      []rune{'\\'},
		MinConsistency:   0.6,
		SampleLines:      1024,
		HeaderSampleRows: 20,
	}
}

// Sentinel causes carried by InferenceError.
var (
	ErrEmptyInput            = errors.New("input is empty")
	ErrSingleLine            = errors.New("input has a single line")
	ErrNoConsistentDelimiter = errors.New("no candidate delimiter is used consistently")
)

// InferenceError is returned when no dialect can be determined.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return "could not determine dialect: " + e.Err.Error()
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}
