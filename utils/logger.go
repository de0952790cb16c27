package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
	ansiCyan   = "\033[36m"
)

// Logger provides leveled, timestamped logging throughout the application.
type Logger struct {
	out *log.Logger
	err *log.Logger
}

// NewLogger creates a Logger writing info/warn/debug to stdout and errors
// to stderr.
func NewLogger() *Logger {
	return &Logger{
		out: log.New(os.Stdout, "", 0),
		err: log.New(os.Stderr, "", 0),
	}
}

func (l *Logger) logf(dst *log.Logger, color, level, format string, args ...any) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	dst.Printf("[%s] %s%s%s %s", ts, color, level, ansiReset, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	l.logf(l.out, ansiGreen, "INFO ", format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.logf(l.out, ansiYellow, "WARN ", format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.logf(l.err, ansiRed, "ERROR", format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.logf(l.out, ansiCyan, "DEBUG", format, args...)
}
