package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var analyzeStdout bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Analyze one or more CSV files without prompting",
	Long: `Analyze runs the full check pipeline on each file in turn and writes
one timestamped log file per input into the output directory.

Failures are reported inside the log as "Error analyzing file: <cause>";
they never stop the remaining files from being analyzed.

Example:
  csvaudit analyze orders.csv customers.csv --output-dir ./reports
  csvaudit analyze orders.csv --stdout`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeStdout, "stdout", false,
		"Print the report instead of writing a log file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.log.Sync()

	ctx, stop := setupSignalHandler(func(sig os.Signal) {
		s.log.Warnw("received signal, stopping after the current file", "signal", sig.String())
	})
	defer stop()

	return analyzeFiles(ctx, s, cmd.OutOrStdout(), args)
}

// analyzeFiles processes paths in order and stops early once ctx is done.
func analyzeFiles(ctx context.Context, s *session, out io.Writer, paths []string) error {
	for i, path := range paths {
		if ctx.Err() != nil {
			return fmt.Errorf("analysis interrupted after %d of %d files", i, len(paths))
		}

		if analyzeStdout {
			if i > 0 {
				fmt.Fprintln(out)
			}
			for _, line := range s.checker.Analyze(path) {
				fmt.Fprintln(out, line)
			}
			continue
		}

		logPath, err := s.analyzeToLog(path, time.Now())
		if err != nil {
			return fmt.Errorf("failed to write report for %s: %w", path, err)
		}
		fmt.Fprintf(out, "%s -> %s\n", path, color.Green.Sprint(logPath))
	}
	return nil
}
