package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

type stringer struct{}

func (stringer) String() string { return "from stringer" }

func TestLogger_Add_WritesMessageAndTag(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug), WithPretty(false))

	if err := logger.Add(LevelWarn, "cache miss", "store"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if result["msg"] != "cache miss" {
		t.Errorf("expected msg=cache miss, got %v", result["msg"])
	}
	if result[TagKey] != "store" {
		t.Errorf("expected tag=store, got %v", result[TagKey])
	}
	if result["level"] != "WARN" {
		t.Errorf("expected level=WARN, got %v", result["level"])
	}
}

func TestLogger_Add_OmitsEmptyTag(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(false))

	if err := logger.Add(LevelInfo, "untagged", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(buf.String(), `"tag"`) {
		t.Errorf("expected no tag attribute, got: %s", buf.String())
	}
}

func TestLogger_Add_RendersNonStringMessages(t *testing.T) {
	tests := []struct {
		name string
		msg  any
		want string
	}{
		{"nil", nil, `"msg":""`},
		{"int", 42, `"msg":"42"`},
		{"stringer", stringer{}, `"msg":"from stringer"`},
		{"error", errors.New("boom"), `"msg":"boom"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithPretty(false))

			if err := logger.Add(LevelInfo, tt.msg, ""); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected output to contain %s, got: %s", tt.want, buf.String())
			}
		})
	}
}

func TestLogger_Add_BelowLevel_Discarded(t *testing.T) {
	w := failWriter{err: errors.New("must not write")}
	logger := Make(w, WithLevel(LevelError), WithPretty(false))

	if err := logger.Add(LevelInfo, "ignored", ""); err != nil {
		t.Errorf("expected nil error for discarded message, got %v", err)
	}
}

func TestLogger_Add_ReturnsWriterError(t *testing.T) {
	want := errors.New("disk full")

	for _, pretty := range []bool{false, true} {
		logger := Make(failWriter{err: want}, WithPretty(pretty))

		err := logger.Add(LevelError, "write me", "")
		if !errors.Is(err, want) {
			t.Errorf("pretty=%v: expected %v, got %v", pretty, want, err)
		}
	}
}

func TestLogger_Add_ZeroValue(t *testing.T) {
	var logger Logger

	if err := logger.Add(LevelUnknown, "nowhere", "tag"); err != nil {
		t.Errorf("expected nil error from zero value logger, got %v", err)
	}
	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level, got %v", logger.Level())
	}
	if logger.Pretty() {
		t.Error("expected zero value logger not to be pretty")
	}
}

func TestLogger_Pretty_ReflectsOption(t *testing.T) {
	var buf bytes.Buffer

	if !Make(&buf).Pretty() {
		t.Error("expected pretty enabled by default")
	}
	if Make(&buf, WithPretty(false)).Pretty() {
		t.Error("expected pretty disabled")
	}
}
