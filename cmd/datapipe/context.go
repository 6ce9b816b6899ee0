package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"datapipe/internal/config"
	"datapipe/internal/history"
	"datapipe/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// stageLogger builds the structured logger for a stage invocation. Logs go to
// the log file only; stdout is reserved for the orchestrator protocol. Logger
// construction failures degrade to a no-op logger so a bad log sink can never
// fail a stage.
func (c *commandContext) stageLogger(cfg *config.Config) *slog.Logger {
	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{cfg.LogFilePath()},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warn: unable to initialize logger: %v\n", err)
		return logging.NewNop()
	}
	return logger
}

// openHistory returns the run ledger, or nil when history is disabled or
// unavailable. Ledger problems are reported as warnings, never as stage
// failures.
func (c *commandContext) openHistory(cfg *config.Config, logger *slog.Logger) *history.Store {
	if !cfg.History.Enabled {
		return nil
	}
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		logger.Warn("history ledger unavailable", logging.Error(err))
		return nil
	}
	return store
}
