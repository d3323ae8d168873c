package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"
)

// useDefault points the default logger at buf for the duration of the test.
func useDefault(t *testing.T, buf *bytes.Buffer, opts ...Option) {
	t.Helper()

	original := defaultLog

	t.Cleanup(func() { defaultLog = original })

	defaultLog = Make(buf, append([]Option{
		WithLevel(LevelDebug),
		WithFormat(FormatJSON),
		WithPretty(false),
	}, opts...)...)
}

type sourceRecord struct {
	Level  string `json:"level"`
	Msg    string `json:"msg"`
	Key    string `json:"key"`
	Source struct {
		File string `json:"file"`
	} `json:"source"`
}

func decodeRecord(t *testing.T, buf *bytes.Buffer) sourceRecord {
	t.Helper()

	var r sourceRecord
	if err := json.Unmarshal(buf.Bytes(), &r); err != nil {
		t.Fatalf("invalid record %q: %v", buf.String(), err)
	}

	return r
}

func TestPackageFunctions(t *testing.T) {
	var buf bytes.Buffer

	useDefault(t, &buf, WithCaller(true))

	tests := []struct {
		name  string
		log   func()
		level string
		msg   string
	}{
		{
			"DebugContext",
			func() {
				DebugContext(context.Background(), "replay complete",
					slog.String("key", "value"))
			},
			"DEBUG", "replay complete",
		},
		{
			"Error",
			func() { Error("run failed", slog.String("key", "value")) },
			"ERROR", "run failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log()

			r := decodeRecord(t, &buf)

			if r.Level != tt.level || r.Msg != tt.msg || r.Key != "value" {
				t.Errorf("unexpected record %+v", r)
			}

			if got := filepath.Base(r.Source.File); got != "pkg_test.go" {
				t.Errorf("expected source in pkg_test.go, got %q", r.Source.File)
			}
		})
	}
}

func TestConfigUpdatesDefault(t *testing.T) {
	var buf bytes.Buffer

	useDefault(t, &buf)

	Config(WithLevel(LevelError))

	if Default().Level() != LevelError {
		t.Fatalf("expected level error, got %v", Default().Level())
	}

	DebugContext(context.Background(), "dropped")

	if buf.Len() != 0 {
		t.Errorf("expected debug record to be dropped, got %q", buf.String())
	}
}

// TestCallerSource verifies that every entry point reports the line that
// called it, not a frame inside the log package.
func TestCallerSource(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf,
		WithLevel(LevelTrace),
		WithFormat(FormatJSON),
		WithPretty(false),
		WithCaller(true),
	)
	ctx := context.Background()

	tests := []struct {
		name string
		log  func()
	}{
		{"Trace", func() { l.Trace("m") }},
		{"Debug", func() { l.Debug("m") }},
		{"Info", func() { l.Info("m") }},
		{"InfoContext", func() { l.InfoContext(ctx, "m") }},
		{"Warn", func() { l.Warn("m") }},
		{"Error", func() { l.Error("m") }},
		{"Fatal", func() { l.Fatal("m") }},
		{"UnknownContext", func() { l.UnknownContext(ctx, "m") }},
		{"Add", func() { _ = l.Add(LevelInfo, "m", "") }},
		{"AddContext", func() { _ = l.AddContext(ctx, LevelInfo, "m", "") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log()

			r := decodeRecord(t, &buf)
			if got := filepath.Base(r.Source.File); got != "pkg_test.go" {
				t.Errorf("expected source in pkg_test.go, got %q", r.Source.File)
			}
		})
	}
}
