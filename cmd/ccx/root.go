package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ccx/internal/config"
	"ccx/internal/slogutil"
	"ccx/internal/version"
)

var (
	// logLevelFlag is the CLI --log-level flag value
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "ccx",
	Short: "ccx - cyclomatic complexity analyzer for C/C++",
	Long: `ccx computes the cyclomatic complexity of every function defined in a
C or C++ translation unit: 1 plus the number of decision-bearing constructs
(if, switch, for, while, do-while, ternary) anywhere in the function body.

Each analyzed function gets one remark on stderr bound to its source location,
and the per-unit results are written to a plain-text report file, one function
per line in lexicographic order.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("ccx version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error (default: from config)")
}

// resolveLogLevel determines the effective log level.
// Precedence: CLI flag > CCX_LOG_LEVEL env var > config.json > info
func resolveLogLevel(cfg *config.Config) slog.Level {
	if logLevelFlag != "" {
		return slogutil.LevelFromString(logLevelFlag)
	}
	if env := os.Getenv("CCX_LOG_LEVEL"); env != "" {
		return slogutil.LevelFromString(env)
	}
	if cfg != nil && cfg.Logging.Level != "" {
		return slogutil.LevelFromString(cfg.Logging.Level)
	}
	return slog.LevelInfo
}

// newLogger creates the run logger from the loaded configuration. Logs go to
// stderr so they never interleave with formatted responses on stdout.
func newLogger(cfg *config.Config) *slog.Logger {
	format := slogutil.FormatHuman
	if cfg != nil && cfg.Logging.Format == "json" {
		format = slogutil.FormatJSON
	}
	return slogutil.NewLogger(os.Stderr, resolveLogLevel(cfg), format)
}
