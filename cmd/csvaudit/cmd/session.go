package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/csvaudit/internal/config"
	"github.com/dbsmedya/csvaudit/internal/csvcheck"
	"github.com/dbsmedya/csvaudit/internal/logger"
	"github.com/dbsmedya/csvaudit/internal/report"
)

// session bundles what every analyzing command needs.
type session struct {
	cfg     *config.Config
	log     *logger.Logger
	checker *csvcheck.Checker
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &session{
		cfg:     cfg,
		log:     log,
		checker: csvcheck.New(cfg.Sniffer.Options(), log),
	}, nil
}

// loadConfig reads the config file, applies CLI overrides and validates the
// result. The file is only required when --config was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	required := cmd.Flags().Changed("config")

	cfg, err := config.LoadOptional(GetConfigFile(), required)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.OutputDir, overrides.MinConsistency)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// analyzeToLog analyzes path and writes the report into a new log file.
func (s *session) analyzeToLog(path string, now time.Time) (string, error) {
	lines := s.checker.Analyze(path)

	logPath, err := report.WriteLog(s.cfg.Report.OutputDir, s.cfg.Report.FilePrefix, lines, now)
	if err != nil {
		return "", err
	}
	s.log.Infow("analysis log written", "file", path, "log", logPath)
	return logPath, nil
}
