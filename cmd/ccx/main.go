package main

import (
	"log/slog"
	"os"

	"ccx/internal/slogutil"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := slogutil.NewLogger(os.Stderr, slog.LevelError, slogutil.FormatHuman)
		logger.Error("Command execution failed", "error", err.Error())
		os.Exit(1)
	}
}
