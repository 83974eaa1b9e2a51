package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout is the YYYYMMDD_HHMMSS suffix of log file names.
const TimestampLayout = "20060102_150405"

// DefaultPrefix is the log file name prefix.
const DefaultPrefix = "csv_analysis"

// maxNameAttempts bounds the numbered fallbacks tried when the
// timestamped name is already taken.
const maxNameAttempts = 1000

// WriteLog writes lines joined by newlines into <dir>/<prefix>_<timestamp>.log
// and returns the path. An existing file is never overwritten; a numeric
// suffix is added instead.
func WriteLog(dir, prefix string, lines []string, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	base := prefix + "_" + now.Format(TimestampLayout)

	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := base + ".log"
		if attempt > 0 {
			name = fmt.Sprintf("%s_%d.log", base, attempt)
		}
		path := filepath.Join(dir, name)

		file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create log file: %w", err)
		}

		if _, err := file.WriteString(strings.Join(lines, "\n")); err != nil {
			file.Close()
			return "", fmt.Errorf("failed to write log file %s: %w", path, err)
		}
		if err := file.Close(); err != nil {
			return "", fmt.Errorf("failed to close log file %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("failed to create log file: no free name for %s in %s", base, dir)
}
