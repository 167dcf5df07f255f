// Package log is a small wrapper around zerolog that writes JSON lines to a
// rotating file and optionally echoes colored lines to the console.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the log file bashium writes inside its config directory.
const FileName = "bashium.log"

// Option is a function that modifies the logger
type Option func(*Logger)

// WithName sets the logger name
func WithName(name string) Option {
	return func(l *Logger) {
		l.name = name
	}
}

// WithConsole enables (pretty) logging to console
func WithConsole(console bool) Option {
	return func(l *Logger) {
		l.console = console
	}
}

// WithDebug forces debug level logging when debug is set. Apply it after
// WithLevel; false leaves the level alone.
func WithDebug(debug bool) Option {
	return func(l *Logger) {
		if debug {
			l.level = zerolog.DebugLevel
		}
	}
}

// WithLevel sets the level from its name ("debug", "info", "warn", "error").
// Unknown names leave the level unchanged.
func WithLevel(name string) Option {
	return func(l *Logger) {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(name)); err == nil && name != "" {
			l.level = lvl
		}
	}
}

// WithFile writes to a rotating file at path.
func WithFile(path string, maxSizeMB, maxAgeDays int) Option {
	return func(l *Logger) {
		l.writer = newRotatingLogFile(path, maxSizeMB, maxAgeDays)
	}
}

// WithWriter writes log lines to w instead of a file.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.writer = w
	}
}

// Logger is a simple wrapper around zerolog
type Logger struct {
	name    string
	console bool
	level   zerolog.Level
	writer  io.Writer
	out     zerolog.Logger
}

// NewLogger creates a new logger with the given options.
// Without WithFile or WithWriter the logger only echoes to the console.
func NewLogger(options ...Option) *Logger {
	l := &Logger{
		name:   "bashium",
		level:  zerolog.InfoLevel,
		writer: io.Discard,
	}

	for _, option := range options {
		option(l)
	}

	l.out = zerolog.New(l.writer).Level(l.level).With().Timestamp().Logger()
	return l
}

// Nop returns a logger that drops everything.
func Nop() *Logger {
	return NewLogger()
}

// Named returns a copy of l writing under another name.
func (l *Logger) Named(name string) *Logger {
	c := *l
	c.name = name
	return &c
}

// Debug logs a message if the level is debug.
//
// Also (pretty) prints to os.Stdout if l.console is true
func (l *Logger) Debug(format string, args ...any) {
	if e := l.out.Debug(); e.Enabled() {
		msg := fmt.Sprintf(format, args...)
		e.Str("logger", l.name).Str("caller", getCaller()).Msg(msg)
		l.echo(os.Stdout, color.WhiteString, msg)
	}
}

// Info logs a message.
//
// Also (pretty) prints to os.Stdout if l.console is true
func (l *Logger) Info(format string, args ...any) {
	if e := l.out.Info(); e.Enabled() {
		msg := fmt.Sprintf(format, args...)
		e.Str("logger", l.name).Str("caller", getCaller()).Msg(msg)
		l.echo(os.Stdout, color.BlueString, msg)
	}
}

// Warn logs a message.
//
// Also (pretty) prints to os.Stdout if l.console is true
func (l *Logger) Warn(format string, args ...any) {
	if e := l.out.Warn(); e.Enabled() {
		msg := fmt.Sprintf(format, args...)
		e.Str("logger", l.name).Str("caller", getCaller()).Msg(msg)
		l.echo(os.Stdout, color.YellowString, msg)
	}
}

// Error logs a message together with err.
//
// Also (pretty) prints to color.Error if l.console is true
func (l *Logger) Error(err error, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.out.Error().Err(err).Str("logger", l.name).Str("caller", getCaller()).Msg(msg)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	l.echo(color.Error, color.RedString, msg)
}

func (l *Logger) echo(w io.Writer, tint func(string, ...any) string, msg string) {
	if !l.console {
		return
	}
	fmt.Fprintf(w,
		"[%s] [%s] %s\n",
		color.GreenString(time.Now().Format("15:04:05")),
		tint(strings.ToUpper(l.name)),
		msg,
	)
}

func newRotatingLogFile(path string, maxSizeMB, maxAgeDays int) io.Writer {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxAge:     maxAgeDays,
		MaxBackups: 3,
		LocalTime:  true,
	}
}

func getCaller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
