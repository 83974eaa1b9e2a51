package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateSniffer()...)
	errors = append(errors, c.validateReport()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateSniffer() ValidationErrors {
	var errors ValidationErrors
	s := &c.Sniffer

	if len(s.Delimiters) == 0 {
		errors = append(errors, ValidationError{
			Field:   "sniffer.delimiters",
			Message: "at least one candidate delimiter is required",
		})
	}
	if len(s.QuoteChars) == 0 {
		errors = append(errors, ValidationError{
			Field:   "sniffer.quote_chars",
			Message: "at least one candidate quote character is required",
		})
	}

	seen := make(map[string]string)
	for _, group := range []struct {
		field  string
		values []string
	}{
		{"sniffer.delimiters", s.Delimiters},
		{"sniffer.quote_chars", s.QuoteChars},
		{"sniffer.escape_chars", s.EscapeChars},
	} {
		for i, v := range group.values {
			field := fmt.Sprintf("%s[%d]", group.field, i)
			if utf8.RuneCountInString(v) != 1 {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("%q must be a single character", v),
				})
				continue
			}
			if v == "\n" || v == "\r" {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: "line breaks cannot be used",
				})
				continue
			}
			if other, dup := seen[v]; dup && other != group.field {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("%q is already a candidate in %s", v, other),
				})
				continue
			}
			seen[v] = group.field
		}
	}

	if s.MinConsistency <= 0 || s.MinConsistency > 1 {
		errors = append(errors, ValidationError{
			Field:   "sniffer.min_consistency",
			Message: "min_consistency must be in (0, 1]",
		})
	}

	if s.SampleLines <= 0 {
		errors = append(errors, ValidationError{
			Field:   "sniffer.sample_lines",
			Message: "sample_lines must be positive",
		})
	}

	if s.HeaderSampleRows <= 0 {
		errors = append(errors, ValidationError{
			Field:   "sniffer.header_sample_rows",
			Message: "header_sample_rows must be positive",
		})
	}

	return errors
}

func (c *Config) validateReport() ValidationErrors {
	var errors ValidationErrors

	if c.Report.OutputDir == "" {
		errors = append(errors, ValidationError{
			Field:   "report.output_dir",
			Message: "output_dir is required",
		})
	}

	if strings.ContainsAny(c.Report.FilePrefix, `/\`) {
		errors = append(errors, ValidationError{
			Field:   "report.file_prefix",
			Message: "file_prefix cannot contain path separators",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
