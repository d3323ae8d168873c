package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyHandler writes colorized records, either as key=value pairs on one
// line or as an indented JSON-like object.
//
// Attributes in groups are written with dotted keys.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	json   bool
	attrs  []slog.Attr
	prefix string
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	json bool,
) *prettyHandler {
	return &prettyHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
		json: json,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	rec := prettyRecord{json: h.json}

	if !r.Time.IsZero() {
		h.builtin(&rec, slog.Time(slog.TimeKey, r.Time))
	}

	level := Level(r.Level)
	rec.field(slog.LevelKey, level.color(), level.label())

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.builtin(&rec, slog.String(slog.SourceKey,
				fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	rec.field(slog.MessageKey, colorCyan, r.Message)

	for _, a := range h.attrs {
		rec.attr("", a)
	}

	r.Attrs(func(a slog.Attr) bool {
		rec.attr(h.prefix, a)

		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(rec.bytes())

	return err
}

// builtin writes a built-in attribute after ReplaceAttr, if any.
func (h *prettyHandler) builtin(rec *prettyRecord, a slog.Attr) {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	rec.attr("", a)
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = slices.Clip(h.attrs)

	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}

		c.attrs = append(c.attrs, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix += name + "."

	return &c
}

// prettyRecord accumulates the fields of one record.
type prettyRecord struct {
	buf  bytes.Buffer
	json bool
	n    int
}

func (p *prettyRecord) field(key, color, text string) {
	switch {
	case !p.json:
		if p.n > 0 {
			p.buf.WriteByte(' ')
		}
	case p.n == 0:
		p.buf.WriteString("{\n  ")
	default:
		p.buf.WriteString(",\n  ")
	}

	p.paint(colorGray, key)

	if p.json {
		p.buf.WriteString(": ")
	} else {
		p.buf.WriteByte('=')
	}

	p.paint(color, text)
	p.n++
}

// attr writes a, flattening groups into dotted keys under prefix.
func (p *prettyRecord) attr(prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			p.attr(prefix, ga)
		}

		return
	}

	color, text := valueStyle(a.Value)
	p.field(prefix+a.Key, color, text)
}

func (p *prettyRecord) paint(color, text string) {
	p.buf.WriteString(color)
	p.buf.WriteString(text)
	p.buf.WriteString(colorReset)
}

func (p *prettyRecord) bytes() []byte {
	if p.json {
		p.buf.WriteString("\n}")
	}

	p.buf.WriteByte('\n')

	return p.buf.Bytes()
}

// valueStyle returns the color and unquoted text of v.
func valueStyle(v slog.Value) (color, text string) {
	switch v.Kind() {
	case slog.KindString:
		return colorCyan, v.String()

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return colorYellow, v.String()

	case slog.KindBool:
		if v.Bool() {
			return colorGreen, "true"
		}

		return colorRed, "false"

	case slog.KindDuration:
		return colorMagenta, v.String()

	case slog.KindTime:
		return colorBlue, v.String()

	case slog.KindAny:
		switch a := v.Any().(type) {
		case nil:
			return colorGray, "null"
		case slog.Level:
			return Level(a).color(), Level(a).label()
		case Level:
			return a.color(), a.label()
		case error:
			return colorRed, a.Error()
		}
	}

	return colorCyan, strings.TrimSpace(v.String())
}
