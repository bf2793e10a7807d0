// FILE: lixenwraith/simpleconfig/logger.go
package simpleconfig

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// Logger receives engine diagnostics. Implementations must not panic.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Nop discards all messages.
var Nop Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}

type charmLogger struct {
	logger *log.Logger
}

// NewCharmLogger adapts a charmbracelet logger. A nil logger uses log.Default().
func NewCharmLogger(logger *log.Logger) Logger {
	if logger == nil {
		logger = log.Default()
	}
	return charmLogger{logger: logger}
}

// NewConsoleLogger writes every level to w without timestamps.
func NewConsoleLogger(w io.Writer) Logger {
	return NewCharmLogger(log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "config",
	}))
}

func (l charmLogger) Debug(msg string) { l.logger.Debug(msg) }
func (l charmLogger) Info(msg string)  { l.logger.Info(msg) }
func (l charmLogger) Warn(msg string)  { l.logger.Warn(msg) }
func (l charmLogger) Error(msg string) { l.logger.Error(msg) }

type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger adapts a log/slog logger. A nil logger uses slog.Default().
func NewSlogLogger(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return slogLogger{logger: logger}
}

func (l slogLogger) Debug(msg string) { l.logger.Debug(msg) }
func (l slogLogger) Info(msg string)  { l.logger.Info(msg) }
func (l slogLogger) Warn(msg string)  { l.logger.Warn(msg) }
func (l slogLogger) Error(msg string) { l.logger.Error(msg) }

// NewPrefixLogger sends every level to one consumer as "[LEVEL] msg".
func NewPrefixLogger(out func(string)) Logger {
	if out == nil {
		return Nop
	}
	return LoggerFuncs{
		DebugFunc: func(msg string) { out("[DEBUG] " + msg) },
		InfoFunc:  func(msg string) { out("[INFO] " + msg) },
		WarnFunc:  func(msg string) { out("[WARN] " + msg) },
		ErrorFunc: func(msg string) { out("[ERROR] " + msg) },
	}
}

// LoggerFuncs routes each level to its own function. Nil functions drop the
// message.
type LoggerFuncs struct {
	DebugFunc func(string)
	InfoFunc  func(string)
	WarnFunc  func(string)
	ErrorFunc func(string)
}

func (f LoggerFuncs) Debug(msg string) {
	if f.DebugFunc != nil {
		f.DebugFunc(msg)
	}
}

func (f LoggerFuncs) Info(msg string) {
	if f.InfoFunc != nil {
		f.InfoFunc(msg)
	}
}

func (f LoggerFuncs) Warn(msg string) {
	if f.WarnFunc != nil {
		f.WarnFunc(msg)
	}
}

func (f LoggerFuncs) Error(msg string) {
	if f.ErrorFunc != nil {
		f.ErrorFunc(msg)
	}
}
