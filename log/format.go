package log

import (
	"iter"
	"strconv"
	"strings"
	"time"
)

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota // text
	FormatJSON               // json
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatJSON

var formatName = [...]string{
	FormatText: "text",
	FormatJSON: "json",
}

// String returns the name of the format.
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatName) {
		return formatName[f]
	}

	return "format(" + strconv.Itoa(int(f)) + ")"
}

// Formats returns an iterator over all defined log formats, default first.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = yield(FormatJSON.String()) && yield(FormatText.String())
	}
}

// ParseFormat parses a format name, ignoring case and surrounding space.
// Any name other than "json" or "text" yields [DefaultFormat].
func ParseFormat(s string) Format {
	name := strings.ToLower(strings.TrimSpace(s))

	for f, n := range formatName {
		if n == name {
			return Format(f)
		}
	}

	return DefaultFormat
}

// FormatTime formats a record timestamp. An empty result omits the time.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the default used when no valid time layout is provided.
const DefaultTimeLayout = time.RFC3339

// timeLayout maps layout names, reduced to lowercase letters and digits, to
// their layouts.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"stamp":       time.Stamp,
	"datetime":    time.DateTime,
	"none":        "",
}

// stampAliases are shorthand names for the sub-second Stamp layouts.
var stampAliases = map[string][]string{
	time.StampMilli: {"stampmilli", "milli", "millis", "ms"},
	time.StampMicro: {"stampmicro", "micro", "micros", "us"},
	time.StampNano:  {"stampnano", "nano", "nanos", "ns"},
}

func init() {
	for layout, names := range stampAliases {
		for _, name := range names {
			timeLayout[name] = layout
		}
	}
}

// layoutKey reduces a layout name to lowercase letters and digits.
func layoutKey(layout string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}

		return -1
	}, strings.ToLower(layout))
}

// makeFormatTimeFunc returns a FormatTime for a named or custom layout.
// Custom layouts are used verbatim; a layout with no letters or digits
// disables timestamps.
func makeFormatTimeFunc(layout string) FormatTime {
	key := layoutKey(layout)
	if std, ok := timeLayout[key]; ok {
		layout = std
	}

	if key == "" || layout == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
