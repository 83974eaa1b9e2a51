package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile        string
	logLevel       string
	logFormat      string
	outputDir      string
	minConsistency float64
)

const (
	promptMessage   = "Enter the path to the CSV file: "
	notFoundMessage = "File not found. Please check the file path and try again."
)

var rootCmd = &cobra.Command{
	Use:   "csvaudit",
	Short: "Heuristic CSV quality analyzer",
	Long: `A CLI tool that inspects a CSV file of unknown dialect and writes a
timestamped report of likely data-quality problems.

Run without arguments to be prompted for a file path.

Checks performed:
  - Dialect sniffing (delimiter, quote, escape, header)
  - Inconsistent field counts and their likely causes
  - Unnecessary quoting and escaped characters
  - Line breaks inside fields
  - Leading or trailing whitespace
  - Per-column data type profile`,
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    runInteractive,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "csvaudit.yaml",
		"Path to configuration file (optional unless set explicitly)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Analysis overrides
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "",
		"Override directory for analysis log files")
	rootCmd.PersistentFlags().Float64Var(&minConsistency, "min-consistency", 0,
		"Override minimum delimiter consistency (0-1]")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel       string
	LogFormat      string
	OutputDir      string
	MinConsistency float64
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:       logLevel,
		LogFormat:      logFormat,
		OutputDir:      outputDir,
		MinConsistency: minConsistency,
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.log.Sync()

	out := cmd.OutOrStdout()
	fmt.Fprint(out, promptMessage)

	path, err := readPath(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read file path: %w", err)
	}

	if !isRegularFile(path) {
		s.log.Debugw("input file not found", "file", path)
		fmt.Fprintln(out, color.Red.Sprint(notFoundMessage))
		return nil
	}

	logPath, err := s.analyzeToLog(path, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, color.Green.Sprintf("Analysis complete. Log file created: %s", logPath))
	return nil
}

// readPath reads one line and drops the line ending and surrounding blanks.
// EOF without a newline still yields the text read so far.
func readPath(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func isRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
