// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger provides the leveled logger of the distfit command.
// It wraps the standard log package.
package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Level is a logging level.
type Level int

const (
	// DebugLevel reports optimizer settings and per-model results.
	DebugLevel Level = iota
	// InfoLevel is the default.
	InfoLevel
	// WarnLevel reports models that could not be fit.
	WarnLevel
	// ErrorLevel reports failures that stop the command.
	ErrorLevel
)

var levelNames = []string{
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
}

func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel returns the level named s, ignoring case.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(name, s) {
			return Level(i), nil
		}
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// Logger filters messages by level.
type Logger struct {
	level  Level
	logger *log.Logger
}

var defaultLogger *Logger

// Init sets up the default logger to write messages at level and
// above to w. An unknown level means InfoLevel. Format "text" adds
// timestamps and source positions; any other format writes bare
// messages.
func Init(w io.Writer, level string, format string) {
	l, err := ParseLevel(level)
	if err != nil {
		l = InfoLevel
	}
	flags := 0
	if strings.ToLower(format) == "text" {
		flags = log.LstdFlags | log.Lshortfile
	}
	defaultLogger = &Logger{
		level:  l,
		logger: log.New(w, "", flags),
	}
}

func output(l Level, tag, format string, args ...interface{}) {
	if defaultLogger == nil || defaultLogger.level > l {
		return
	}
	_ = defaultLogger.logger.Output(3, fmt.Sprintf("["+tag+"] "+format, args...))
}

// Debug logs a message at DebugLevel.
func Debug(format string, args ...interface{}) { output(DebugLevel, "DEBUG", format, args...) }

// Info logs a message at InfoLevel.
func Info(format string, args ...interface{}) { output(InfoLevel, "INFO", format, args...) }

// Warn logs a message at WarnLevel.
func Warn(format string, args ...interface{}) { output(WarnLevel, "WARN", format, args...) }

// Error logs a message at ErrorLevel.
func Error(format string, args ...interface{}) { output(ErrorLevel, "ERROR", format, args...) }
