// Package csvcheck is the analysis entry point: it reads a file, sniffs its
// dialect, loads it, runs the anomaly checks and renders the report lines.
//
// Every failure is contained. A failed analysis yields the lines collected
// so far plus a single "Error analyzing file: <cause>" line.
package csvcheck

import (
	"github.com/dbsmedya/csvaudit/internal/analyzer"
	"github.com/dbsmedya/csvaudit/internal/dialect"
	"github.com/dbsmedya/csvaudit/internal/logger"
	"github.com/dbsmedya/csvaudit/internal/report"
	"github.com/dbsmedya/csvaudit/internal/table"
)

// Checker analyzes CSV files. It holds no per-file state and is safe for
// concurrent use.
type Checker struct {
	sniffer *dialect.Sniffer
	log     *logger.Logger
}

// New creates a Checker. A nil logger discards log output.
func New(opts dialect.Options, log *logger.Logger) *Checker {
	if log == nil {
		log = logger.NewNop()
	}
	return &Checker{
		sniffer: dialect.NewSniffer(opts),
		log:     log,
	}
}

// Analyze runs the default pipeline on path.
func Analyze(path string) []string {
	return New(dialect.DefaultOptions(), nil).Analyze(path)
}

// Analyze returns the report lines for the file at path. It never fails;
// errors become the last report line.
func (c *Checker) Analyze(path string) []string {
	log := c.log.WithFile(path)

	raw, err := ReadFile(path)
	if err != nil {
		return c.fail(log, nil, err)
	}

	d, hasHeader, err := c.sniffer.Sniff(raw)
	if err != nil {
		return c.fail(log, nil, err)
	}
	log.Debugw("dialect inferred", "dialect", d.String(), "has_header", hasHeader)

	t := table.Load(raw, d, hasHeader)
	log.Debugw("table loaded", "records", t.RecordCount())
	lines := report.Summary(path, d, hasHeader, t)

	findings, err := analyzer.Analyze(t, d)
	if err != nil {
		return c.fail(log, lines, err)
	}
	for _, fd := range findings.All() {
		log.WithCheck(fd.Category.String()).Debugw("finding", "rows", len(fd.Rows))
	}

	log.Infow("analysis complete", "records", t.RecordCount(), "findings", findings.Len())
	return append(lines, report.Issues(findings)...)
}

func (c *Checker) fail(log *logger.Logger, lines []string, err error) []string {
	log.Warnw("analysis failed", "error", err)
	return append(lines, report.ErrorPrefix+err.Error())
}
