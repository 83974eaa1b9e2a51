package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sniffer.Delimiters = []string{",", "|"}
	cfg.Sniffer.EscapeChars = nil

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no validation errors, got: %v", err)
	}
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"no delimiters", func(c *Config) { c.Sniffer.Delimiters = nil }, "sniffer.delimiters"},
		{"no quote chars", func(c *Config) { c.Sniffer.QuoteChars = []string{} }, "sniffer.quote_chars"},
		{"multi-character delimiter", func(c *Config) { c.Sniffer.Delimiters = []string{"::"} }, "sniffer.delimiters[0]"},
		{"empty quote char", func(c *Config) { c.Sniffer.QuoteChars = []string{"\"", ""} }, "sniffer.quote_chars[1]"},
		{"newline delimiter", func(c *Config) { c.Sniffer.Delimiters = []string{",", "\n"} }, "sniffer.delimiters[1]"},
		{"quote also delimiter", func(c *Config) { c.Sniffer.QuoteChars = []string{","} }, "sniffer.quote_chars[0]"},
		{"escape also quote", func(c *Config) { c.Sniffer.EscapeChars = []string{"'"} }, "sniffer.escape_chars[0]"},
		{"zero consistency", func(c *Config) { c.Sniffer.MinConsistency = 0 }, "sniffer.min_consistency"},
		{"consistency above one", func(c *Config) { c.Sniffer.MinConsistency = 1.5 }, "sniffer.min_consistency"},
		{"no sample lines", func(c *Config) { c.Sniffer.SampleLines = 0 }, "sniffer.sample_lines"},
		{"negative header rows", func(c *Config) { c.Sniffer.HeaderSampleRows = -1 }, "sniffer.header_sample_rows"},
		{"empty output dir", func(c *Config) { c.Report.OutputDir = "" }, "report.output_dir"},
		{"prefix with separator", func(c *Config) { c.Report.FilePrefix = "logs/csv" }, "report.file_prefix"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			found := false
			for _, e := range verrs {
				if e.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on %s, got: %v", tt.field, err)
			}
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Message: "first"},
		{Field: "b", Message: "second"},
	}
	msg := errs.Error()
	if !strings.HasPrefix(msg, "validation failed:") {
		t.Errorf("unexpected prefix: %s", msg)
	}
	if !strings.Contains(msg, "a: first") || !strings.Contains(msg, "b: second") {
		t.Errorf("missing entries: %s", msg)
	}
	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should render as empty string")
	}
}
