package cmd

import (
	"log/slog"
	"slices"
)

// Error is a command failure. Its LogValue groups the message, the cause,
// and any attributes added with [Error.With], so logging it with
// slog.Any("error", err) keeps the detail structured.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// Sentinel command errors. Wrapped copies match them with errors.Is.
var (
	ErrOpenOutput = NewError("open output file")
	ErrReadSource = NewError("read source")
	ErrWriteLog   = NewError("write log record")
	ErrFilter     = NewError("filter")
)

// NewError returns an Error with the given message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error returns "msg: cause", or whichever of the two is set.
func (e *Error) Error() string {
	switch {
	case e.err == nil:
		return e.msg
	case e.msg == "":
		return e.err.Error()
	default:
		return e.msg + ": " + e.err.Error()
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an Error with the same message and no
// cause, such as the sentinel e was wrapped from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.err == nil && t.msg == e.msg
}

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = append(slices.Clip(e.attrs), attrs...)

	return &c
}
