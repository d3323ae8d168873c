package annotate

import (
	"strings"

	"github.com/ardnew/arprof/log"
)

// severity maps each level-named method to the level it logs at.
var severity = map[string]log.Level{
	"debug":   log.LevelDebug,
	"info":    log.LevelInfo,
	"warn":    log.LevelWarn,
	"error":   log.LevelError,
	"fatal":   log.LevelFatal,
	"unknown": log.LevelUnknown,
}

// Severities lists the severity names in ascending order.
func Severities() []string {
	return []string{"debug", "info", "warn", "error", "fatal", "unknown"}
}

// Severity returns the level for a severity name, ignoring case.
// Unrecognized names return [log.LevelUnknown] and false.
func Severity(name string) (log.Level, bool) {
	level, ok := severity[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return log.LevelUnknown, false
	}

	return level, true
}

// The level-named methods below log with no literal message: the message is
// tag, or fn() for the Func variants.

// Debug logs tag as a message at Debug level.
func (l *Logger) Debug(tag string) error {
	return l.Log(log.LevelDebug, nil, tag, nil)
}

// DebugFunc logs fn() at Debug level with the given tag.
func (l *Logger) DebugFunc(tag string, fn func() any) error {
	return l.Log(log.LevelDebug, nil, tag, fn)
}

// Info logs tag as a message at Info level.
func (l *Logger) Info(tag string) error {
	return l.Log(log.LevelInfo, nil, tag, nil)
}

// InfoFunc logs fn() at Info level with the given tag.
func (l *Logger) InfoFunc(tag string, fn func() any) error {
	return l.Log(log.LevelInfo, nil, tag, fn)
}

// Warn logs tag as a message at Warn level.
func (l *Logger) Warn(tag string) error {
	return l.Log(log.LevelWarn, nil, tag, nil)
}

// WarnFunc logs fn() at Warn level with the given tag.
func (l *Logger) WarnFunc(tag string, fn func() any) error {
	return l.Log(log.LevelWarn, nil, tag, fn)
}

// Error logs tag as a message at Error level.
func (l *Logger) Error(tag string) error {
	return l.Log(log.LevelError, nil, tag, nil)
}

// ErrorFunc logs fn() at Error level with the given tag.
func (l *Logger) ErrorFunc(tag string, fn func() any) error {
	return l.Log(log.LevelError, nil, tag, fn)
}

// Fatal logs tag as a message at Fatal level. It does not exit.
func (l *Logger) Fatal(tag string) error {
	return l.Log(log.LevelFatal, nil, tag, nil)
}

// FatalFunc logs fn() at Fatal level with the given tag.
func (l *Logger) FatalFunc(tag string, fn func() any) error {
	return l.Log(log.LevelFatal, nil, tag, fn)
}

// Unknown logs tag as a message at Unknown level.
func (l *Logger) Unknown(tag string) error {
	return l.Log(log.LevelUnknown, nil, tag, nil)
}

// UnknownFunc logs fn() at Unknown level with the given tag.
func (l *Logger) UnknownFunc(tag string, fn func() any) error {
	return l.Log(log.LevelUnknown, nil, tag, fn)
}
