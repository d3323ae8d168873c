package log

import (
	"iter"
	"log/slog"
	"strings"
)

// Level represents the severity of a log message.
//
// Levels use the [slog.Level] numeric scale, extended below Debug with Trace
// and above Error with Fatal and Unknown. Unknown is the highest level: it is
// never suppressed by a lower threshold.
type Level slog.Level

const (
	LevelTrace   = Level(slog.LevelDebug - 4) // trace
	LevelDebug   = Level(slog.LevelDebug)     // debug
	LevelInfo    = Level(slog.LevelInfo)      // info
	LevelWarn    = Level(slog.LevelWarn)      // warn
	LevelError   = Level(slog.LevelError)     // error
	LevelFatal   = Level(slog.LevelError + 4) // fatal
	LevelUnknown = Level(slog.LevelError + 8) // unknown
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// levels lists the named levels in ascending order.
var levels = []struct {
	level Level
	name  string
	color string
}{
	{LevelTrace, "trace", colorBlue},
	{LevelDebug, "debug", colorBlue},
	{LevelInfo, "info", colorGreen},
	{LevelWarn, "warn", colorYellow},
	{LevelError, "error", colorRed},
	{LevelFatal, "fatal", colorMagenta},
	{LevelUnknown, "unknown", colorMagenta},
}

// named returns the index in levels of the highest named level at or below
// l, or -1 if l is below every named level.
func (l Level) named() int {
	for i := len(levels) - 1; i >= 0; i-- {
		if l >= levels[i].level {
			return i
		}
	}

	return -1
}

// String returns the lowercase name of a named level, or the [slog.Level]
// representation (e.g., "INFO+2") of any other value.
func (l Level) String() string {
	if i := l.named(); i >= 0 && levels[i].level == l {
		return levels[i].name
	}

	return slog.Level(l).String()
}

// Valid reports whether l is one of the named levels.
func (l Level) Valid() bool {
	i := l.named()

	return i >= 0 && levels[i].level == l
}

// label is the uppercase name written to log records.
func (l Level) label() string { return strings.ToUpper(l.String()) }

// color is the ANSI color of the nearest named level at or below l.
func (l Level) color() string {
	if i := l.named(); i >= 0 {
		return levels[i].color
	}

	return colorBlue
}

// Levels returns an iterator over the names of all defined log levels.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range levels {
			if !yield(level.name) {
				return
			}
		}
	}
}

// ParseLevel parses a level name, ignoring case and surrounding space.
// The four [slog] names may carry an offset such as "info+2" (see
// [slog.Level.UnmarshalText]); "any" is an alias for "unknown".
// Any other input yields [DefaultLevel].
func ParseLevel(s string) Level {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "any" {
		return LevelUnknown
	}

	for _, level := range levels {
		if level.name == name {
			return level.level
		}
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return DefaultLevel
	}

	return Level(l)
}
