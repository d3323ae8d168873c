package annotate

import (
	"context"

	"github.com/ardnew/arprof/log"
	"github.com/ardnew/arprof/pkg"
)

// Sink is a severity-leveled log destination.
// [log.Logger] and [*Logger] both implement Sink.
type Sink interface {
	// Level returns the minimum level the sink writes.
	Level() log.Level
	// AddContext writes msg at level with an optional tag.
	AddContext(ctx context.Context, level log.Level, msg any, tag string) error
}

// Collector reports the source location that started the operation
// currently being measured, e.g. "app/models/user.rb:42".
// An empty string means no location is known.
type Collector interface {
	CallLocation() string
}

// CollectorFunc adapts an ordinary function to the [Collector] interface.
type CollectorFunc func() string

// CallLocation returns f().
func (f CollectorFunc) CallLocation() string { return f() }

// Static is a [Collector] that always reports the same location.
type Static string

// CallLocation returns s.
func (s Static) CallLocation() string { return string(s) }

// Logger decorates a [Sink], appending the current call site to every
// duration report it forwards.
//
// A Logger holds no mutable state. Thread safety of the sink and collector
// is their own concern.
type Logger struct {
	sink      Sink
	collector Collector
	config
}

// New returns a [Logger] that forwards to sink and reads call sites from
// collector.
func New(sink Sink, collector Collector, opts ...Option) *Logger {
	return &Logger{
		sink:      sink,
		collector: collector,
		config:    pkg.Wrap(makeConfig(), opts...),
	}
}

// Level returns the minimum level of the wrapped sink.
func (l *Logger) Level() log.Level {
	if l == nil || l.sink == nil {
		return log.DefaultLevel
	}

	return l.sink.Level()
}

// Tag returns the default tag used when a tag is promoted to the message.
func (l *Logger) Tag() string {
	if l == nil {
		return ""
	}

	return l.tag
}

// AddContext implements [Sink] so that a Logger can replace the sink it
// wraps. It is equivalent to LogContext(ctx, level, msg, tag, nil).
func (l *Logger) AddContext(
	ctx context.Context,
	level log.Level,
	msg any,
	tag string,
) error {
	return l.LogContext(ctx, level, msg, tag, nil)
}

// Log is [Logger.LogContext] with [log.DefaultContextProvider].
func (l *Logger) Log(level log.Level, msg any, tag string, fn func() any) error {
	return l.LogContext(log.DefaultContextProvider(), level, msg, tag, fn)
}

// LogContext writes a message at level to the wrapped sink.
//
// Levels that are not named levels are logged as [log.LevelUnknown].
// Levels below the sink's threshold return nil immediately: fn is not
// called, the collector is not queried, and the sink is not invoked.
//
// If msg is nil, the message is fn() when fn is non-nil. Otherwise tag
// becomes the message and the Logger's default tag is used in its place.
//
// A message recognized as a duration report gets its call site appended
// (see [Logger.AddCallSite]). Errors from the sink are returned unchanged.
func (l *Logger) LogContext(
	ctx context.Context,
	level log.Level,
	msg any,
	tag string,
	fn func() any,
) error {
	if l == nil || l.sink == nil {
		return nil
	}

	if !level.Valid() {
		level = log.LevelUnknown
	}

	if level < l.sink.Level() {
		return nil
	}

	if msg == nil {
		if fn != nil {
			msg = fn()
		} else {
			msg, tag = tag, l.tag
		}
	}

	return l.sink.AddContext(ctx, level, l.AddCallSite(msg), tag)
}

// AddCallSite returns msg with " CALLED BY '<location>'" appended when msg
// is a string in the shape of a duration report (see [Match]). The
// collector is queried once per matching message. Any other msg is
// returned unchanged.
func (l *Logger) AddCallSite(msg any) any {
	s, ok := msg.(string)
	if !ok || !Match(s) {
		return msg
	}

	return s + calledBy + "'" + l.formatLocation(l.location()) + "'"
}

func (l *Logger) location() string {
	if l.collector == nil {
		return ""
	}

	return l.collector.CallLocation()
}

func (l *Logger) formatLocation(loc string) string {
	if l.highlight == nil || !l.highlight() {
		return loc
	}

	if l.highlighter == nil {
		return Format(loc, true)
	}

	return l.highlighter(loc)
}
