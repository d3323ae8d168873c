package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// Logger provides a concurrency-safe simplified logging interface.
type Logger struct {
	*slog.Logger
	config
}

// Make creates a new [Logger] that writes to the specified writer.
// The default configuration is [DefaultFormat], [DefaultLevel],
// [DefaultTimeLayout], and caller info disabled.
//
// Optional configuration can be applied using functional options like
// [WithFormat], [WithLevel], [WithTimeLayout], and [WithCaller].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// Wrap returns a new [Logger] that wraps the current logger with the provided
// configuration options.
// The existing configuration is used as the base, and any provided options
// will override specific values.
func (l Logger) Wrap(opts ...Option) Logger {
	// The clone gets its own mutex, and opts are applied before anything
	// else can reference it, so only the read of l.config needs the lock.
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	cfg := l.clone(opts...)

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// With returns a new [Logger] that includes the given attributes in each log
// message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	l.mutex.RLock()
	cfg := l.clone()
	l.mutex.RUnlock()

	return Logger{
		config: cfg,
		Logger: slog.New(l.Logger.Handler().WithAttrs(attrs)),
	}
}

// Level returns the current minimum log level.
func (l Logger) Level() Level {
	return read(l, DefaultLevel, func(c config) Level { return c.level })
}

// Format returns the current log output format.
func (l Logger) Format() Format {
	return read(l, DefaultFormat, func(c config) Format { return c.format })
}

// Pretty reports whether log output is colorized.
// Zero value loggers are never colorized.
func (l Logger) Pretty() bool {
	return read(l, false, func(c config) bool { return c.pretty })
}

// read returns get(l.config) under the read lock, or def for zero value
// loggers.
func read[T any](l Logger, def T, get func(config) T) T {
	if l.Logger == nil || l.mutex == nil {
		return def
	}

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return get(l.config)
}

// TraceContext logs a message at Trace level with the provided context.
func (l Logger) TraceContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelTrace, msg, attrs...)
}

// Trace logs a message at Trace level.
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelTrace, msg, attrs...)
}

// DebugContext logs a message at Debug level with the provided context.
func (l Logger) DebugContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelDebug, msg, attrs...)
}

// Debug logs a message at Debug level.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelDebug, msg, attrs...)
}

// InfoContext logs a message at Info level with the provided context.
func (l Logger) InfoContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelInfo, msg, attrs...)
}

// Info logs a message at Info level.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelInfo, msg, attrs...)
}

// WarnContext logs a message at Warn level with the provided context.
func (l Logger) WarnContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelWarn, msg, attrs...)
}

// Warn logs a message at Warn level.
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelWarn, msg, attrs...)
}

// ErrorContext logs a message at Error level with the provided context.
func (l Logger) ErrorContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelError, msg, attrs...)
}

// Error logs a message at Error level.
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelError, msg, attrs...)
}

// FatalContext logs a message at Fatal level with the provided context.
// It does not exit the process.
func (l Logger) FatalContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelFatal, msg, attrs...)
}

// Fatal logs a message at Fatal level.
func (l Logger) Fatal(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelFatal, msg, attrs...)
}

// UnknownContext logs a message at Unknown level with the provided context.
func (l Logger) UnknownContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelUnknown, msg, attrs...)
}

// Unknown logs a message of unknown severity. It is always written.
func (l Logger) Unknown(msg string, attrs ...slog.Attr) {
	l.logContext(DefaultContextProvider(), LevelUnknown, msg, attrs...)
}

// AddContext writes msg at the given level with the provided context and
// returns any error reported by the underlying handler.
//
// Messages that are not strings are rendered with [fmt.Sprint].
// A non-empty tag is attached as the "tag" attribute.
// Messages below the configured level are discarded and nil is returned.
func (l Logger) AddContext(
	ctx context.Context,
	level Level,
	msg any,
	tag string,
) error {
	return l.add(ctx, level, msg, tag)
}

// Add writes msg at the given level. See [Logger.AddContext].
func (l Logger) Add(level Level, msg any, tag string) error {
	return l.add(DefaultContextProvider(), level, msg, tag)
}

// add is shared by Add and AddContext so both sit the same number of frames
// above handle.
func (l Logger) add(ctx context.Context, level Level, msg any, tag string) error {
	var attrs []slog.Attr
	if tag != "" {
		attrs = append(attrs, slog.String(TagKey, tag))
	}

	return l.handle(ctx, callerSkip, level, messageString(msg), attrs...)
}

// TagKey is the attribute key used for the tag passed to [Logger.Add].
const TagKey = "tag"

func messageString(msg any) string {
	switch m := msg.(type) {
	case nil:
		return ""
	case string:
		return m
	case fmt.Stringer:
		return m.String()
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}

// logContext writes a log message at the specified level with the provided
// context.
func (l Logger) logContext(
	ctx context.Context,
	level Level,
	msg string,
	attrs ...slog.Attr,
) {
	_ = l.handle(ctx, callerSkip, level, msg, attrs...)
}

// callerSkip is the runtime.Callers skip from handle to the user's frame:
// runtime.Callers, handle, logContext or add, and the exported method.
const callerSkip = 4

// handle builds a record whose source is the frame skip levels up and passes
// it to the handler.
func (l Logger) handle(
	ctx context.Context,
	skip int,
	level Level,
	msg string,
	attrs ...slog.Attr,
) error {
	// Silently return for zero value loggers
	if l.Logger == nil {
		return nil
	}

	if l.mutex == nil {
		l.mutex = &sync.RWMutex{}
	} else {
		l.mutex.RLock()
		defer l.mutex.RUnlock()
	}

	// Since slog.Logger doesn't expose PC control directly, we use the Handler
	// interface with a custom Record that has the correct PC.
	if !l.Enabled(ctx, slog.Level(level)) {
		return nil
	}

	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.AddAttrs(attrs...)

	return l.Handler().Handle(ctx, r)
}
