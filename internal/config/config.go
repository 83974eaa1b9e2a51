// Package config provides configuration structures and loading for csvaudit.
package config

import (
	"unicode/utf8"

	"github.com/dbsmedya/csvaudit/internal/dialect"
)

// Config represents the complete application configuration.
type Config struct {
	Sniffer SnifferConfig `yaml:"sniffer" mapstructure:"sniffer"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// SnifferConfig represents the dialect sniffing heuristics.
type SnifferConfig struct {
	Delimiters       []string `yaml:"delimiters" mapstructure:"delimiters"`   // single characters, preference order
	QuoteChars       []string `yaml:"quote_chars" mapstructure:"quote_chars"` // single characters, preference order
	EscapeChars      []string `yaml:"escape_chars" mapstructure:"escape_chars"`
	MinConsistency   float64  `yaml:"min_consistency" mapstructure:"min_consistency"`
	SampleLines      int      `yaml:"sample_lines" mapstructure:"sample_lines"`
	HeaderSampleRows int      `yaml:"header_sample_rows" mapstructure:"header_sample_rows"`
}

// ReportConfig represents where analysis logs are written.
type ReportConfig struct {
	OutputDir  string `yaml:"output_dir" mapstructure:"output_dir"`
	FilePrefix string `yaml:"file_prefix" mapstructure:"file_prefix"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	opts := dialect.DefaultOptions()
	return &Config{
		Sniffer: SnifferConfig{
			Delimiters:       runesToStrings(opts.Delimiters),
			QuoteChars:       runesToStrings(opts.QuoteChars),
			EscapeChars:      runesToStrings(opts.EscapeChars),
			MinConsistency:   opts.MinConsistency,
			SampleLines:      opts.SampleLines,
			HeaderSampleRows: opts.HeaderSampleRows,
		},
		Report: ReportConfig{
			OutputDir:  ".",
			FilePrefix: "csv_analysis",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Options converts the sniffer settings into dialect options.
// Entries that are not a single character are skipped; Validate reports them.
func (s *SnifferConfig) Options() dialect.Options {
	return dialect.Options{
		Delimiters:       stringsToRunes(s.Delimiters),
		QuoteChars:       stringsToRunes(s.QuoteChars),
		EscapeChars:      stringsToRunes(s.EscapeChars),
		MinConsistency:   s.MinConsistency,
		SampleLines:      s.SampleLines,
		HeaderSampleRows: s.HeaderSampleRows,
	}
}

func runesToStrings(runes []rune) []string {
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

func stringsToRunes(values []string) []rune {
	out := make([]rune, 0, len(values))
	for _, v := range values {
		if utf8.RuneCountInString(v) == 1 {
			r, _ := utf8.DecodeRuneInString(v)
			out = append(out, r)
		}
	}
	return out
}
