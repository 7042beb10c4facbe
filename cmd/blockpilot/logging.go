package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger builds the stderr logger used by headless commands.
func newLogger() (*log.Logger, error) {
	return newLoggerTo(os.Stderr)
}

func newLoggerTo(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	}), nil
}

// newTUILogger logs to ~/.blockpilot/blockpilot.log because stderr belongs
// to the alternate screen while a game runs. The returned func closes the file.
func newTUILogger() (*log.Logger, func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".blockpilot")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "blockpilot.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger, err := newLoggerTo(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
