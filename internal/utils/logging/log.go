// Package logging provides the levelled program logger.
//
// Messages go to the console with colored tags. When a log file is configured,
// every message is also written there as a zerolog JSON line with ANSI codes removed.
package logging

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"
	"time"

	"songdl/internal/domain/consts"

	"github.com/rs/zerolog"
)

// Regular expression to match ANSI escape codes
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// LoggingConfig sets up a ProgramLogger.
type LoggingConfig struct {
	LogFilePath string
	Console     io.Writer
	ErrConsole  io.Writer
	Program     string
	Level       int
}

// ProgramLogger is a levelled console logger with an optional zerolog file sink.
type ProgramLogger struct {
	mu      sync.Mutex
	level   int
	console io.Writer
	errOut  io.Writer
	file    *os.File
	fileLog *zerolog.Logger
}

// NewConsole returns a logger writing only to stdout/stderr.
func NewConsole() *ProgramLogger {
	return &ProgramLogger{
		console: os.Stdout,
		errOut:  os.Stderr,
	}
}

// SetupLogging creates the program logger, opening the log file when a path is given.
func SetupLogging(cfg LoggingConfig) (*ProgramLogger, error) {
	pl := &ProgramLogger{
		level:   cfg.Level,
		console: cfg.Console,
		errOut:  cfg.ErrConsole,
	}
	if pl.console == nil {
		pl.console = os.Stdout
	}
	if pl.errOut == nil {
		pl.errOut = pl.console
	}

	if cfg.LogFilePath == "" {
		return pl, nil
	}

	f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, consts.PermsLogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", cfg.LogFilePath, err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	fl := zerolog.New(f).With().Timestamp().Str("program", cfg.Program).Logger()
	pl.file = f
	pl.fileLog = &fl

	fl.Info().Msgf("=========== %v ===========", time.Now().Format(time.RFC1123Z))
	return pl, nil
}

// SetLevel sets the debug level (0-5).
func (pl *ProgramLogger) SetLevel(l int) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.level = l
}

// Level returns the current debug level.
func (pl *ProgramLogger) Level() int {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.level
}

// Close closes the log file, if one is open.
func (pl *ProgramLogger) Close() error {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	if pl.file == nil {
		return nil
	}
	err := pl.file.Close()
	pl.file = nil
	pl.fileLog = nil
	return err
}

// writeLog writes the message to the log file, if one is open.
func (pl *ProgramLogger) writeLog(lvl zerolog.Level, msg string) {
	if pl.fileLog == nil {
		return
	}
	pl.fileLog.WithLevel(lvl).Msg(stripAnsiCodes(msg))
}

// stripAnsiCodes removes ANSI escape codes from a string
func stripAnsiCodes(input string) string {
	return ansiEscape.ReplaceAllString(input, "")
}
