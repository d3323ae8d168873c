package cmd

import (
	"errors"
	"log/slog"
	"testing"
)

func TestError(t *testing.T) {
	cause := errors.New("disk full")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message", ErrWriteLog, "write log record"},
		{"wrapped", ErrWriteLog.Wrap(cause), "write log record: disk full"},
		{"cause only", NewError("").Wrap(cause), "disk full"},
		{"empty", NewError(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	cause := errors.New("disk full")
	err := ErrWriteLog.Wrap(cause).With(slog.Int("line", 3))

	if !errors.Is(err, ErrWriteLog) {
		t.Error("expected wrapped error to match its sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("expected wrapped error to match its cause")
	}

	if errors.Is(err, ErrReadSource) {
		t.Error("expected no match for a different sentinel")
	}

	if errors.Is(ErrWriteLog, err) {
		t.Error("expected a sentinel not to match a wrapped error")
	}
}

func TestError_With(t *testing.T) {
	base := ErrFilter.With(slog.String("where", "matched"))
	a := base.With(slog.Int("line", 1))
	b := base.With(slog.Int("line", 2))

	if len(ErrFilter.attrs) != 0 {
		t.Errorf("expected sentinel unchanged, got %v", ErrFilter.attrs)
	}

	if got := a.attrs[1].Value.Int64(); got != 1 {
		t.Errorf("expected line 1, got %d", got)
	}

	if got := b.attrs[1].Value.Int64(); got != 2 {
		t.Errorf("expected line 2, got %d", got)
	}

	v := b.Wrap(errors.New("bad")).LogValue().Group()
	if len(v) != 4 || v[0].Key != "error" || v[1].Key != "cause" {
		t.Errorf("unexpected log value %v", v)
	}
}
