package main

import (
	"log/slog"
	"os"

	"lockbench/internal/bench"
	"lockbench/internal/config"
	"lockbench/internal/logging"
)

func main() {
	cfg := config.Default()

	logger := logging.New(cfg.LogLevel, os.Stderr)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	h := bench.New(cfg, logger, os.Stdout)
	if err := h.Run(); err != nil {
		logger.Error("benchmark aborted", "error", err)
		os.Exit(1)
	}
}
