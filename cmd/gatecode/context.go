package main

import (
	"log/slog"
	"os"
)

// commandContext carries lazily loaded state shared by all subcommands:
// the resolved configuration and the diagnostic logger.
type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	cfg    *cliConfig
	logger *slog.Logger
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{configFlag: configFlag, verboseFlag: verboseFlag}
}

// ensureConfig loads the configuration file once. A missing --config flag
// means built-in defaults; a named file that fails to load is an error.
func (c *commandContext) ensureConfig() (*cliConfig, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := loadConfig(*c.configFlag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// log returns the diagnostic logger. Debug level is only emitted with
// --verbose; output goes to stderr so it never mixes with codec output.
func (c *commandContext) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	level := slog.LevelWarn
	if c.verboseFlag != nil && *c.verboseFlag {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return c.logger
}
