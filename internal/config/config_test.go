package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test sniffer defaults
	if len(cfg.Sniffer.Delimiters) != 4 || cfg.Sniffer.Delimiters[0] != "," {
		t.Errorf("expected 4 delimiters starting with ',', got %q", cfg.Sniffer.Delimiters)
	}
	if len(cfg.Sniffer.QuoteChars) != 2 || cfg.Sniffer.QuoteChars[0] != `"` {
		t.Errorf("expected quote chars [\" '], got %q", cfg.Sniffer.QuoteChars)
	}
	if cfg.Sniffer.MinConsistency != 0.6 {
		t.Errorf("expected min_consistency 0.6, got %v", cfg.Sniffer.MinConsistency)
	}
	if cfg.Sniffer.HeaderSampleRows != 20 {
		t.Errorf("expected header_sample_rows 20, got %d", cfg.Sniffer.HeaderSampleRows)
	}

	// Test report defaults
	if cfg.Report.OutputDir != "." {
		t.Errorf("expected output_dir '.', got %s", cfg.Report.OutputDir)
	}
	if cfg.Report.FilePrefix != "csv_analysis" {
		t.Errorf("expected file_prefix 'csv_analysis', got %s", cfg.Report.FilePrefix)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected logging output 'stderr', got %s", cfg.Logging.Output)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestSnifferOptions(t *testing.T) {
	s := SnifferConfig{
		Delimiters:       []string{";", "\t", "too-long"},
		QuoteChars:       []string{"'"},
		EscapeChars:      nil,
		MinConsistency:   0.75,
		SampleLines:      50,
		HeaderSampleRows: 5,
	}

	opts := s.Options()

	if len(opts.Delimiters) != 2 || opts.Delimiters[0] != ';' || opts.Delimiters[1] != '\t' {
		t.Errorf("expected delimiters [';' '\\t'], got %q", opts.Delimiters)
	}
	if len(opts.QuoteChars) != 1 || opts.QuoteChars[0] != '\'' {
		t.Errorf("expected quote chars ['\\''], got %q", opts.QuoteChars)
	}
	if len(opts.EscapeChars) != 0 {
		t.Errorf("expected no escape chars, got %q", opts.EscapeChars)
	}
	if opts.MinConsistency != 0.75 || opts.SampleLines != 50 || opts.HeaderSampleRows != 5 {
		t.Errorf("numeric options not carried over: %+v", opts)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()

	// Empty overrides leave everything alone
	cfg.ApplyOverrides("", "", "", 0)
	if cfg.Logging.Level != "info" || cfg.Report.OutputDir != "." || cfg.Sniffer.MinConsistency != 0.6 {
		t.Errorf("zero overrides changed config: %+v", cfg)
	}

	cfg.ApplyOverrides("debug", "json", "/tmp/reports", 0.9)
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format 'json', got %s", cfg.Logging.Format)
	}
	if cfg.Report.OutputDir != "/tmp/reports" {
		t.Errorf("expected output_dir '/tmp/reports', got %s", cfg.Report.OutputDir)
	}
	if cfg.Sniffer.MinConsistency != 0.9 {
		t.Errorf("expected min_consistency 0.9, got %v", cfg.Sniffer.MinConsistency)
	}
}
