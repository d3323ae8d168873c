package log

import (
	"bytes"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"testing"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string { return ansi.ReplaceAllString(s, "") }

type replayError struct{}

func (replayError) Error() string { return "replay failed" }

func (replayError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "replay failed"),
		slog.Int("line", 3),
	)
}

func TestPrettyText(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithTimeLayout("none"))
	_ = logger.Add(LevelFatal, "Query (1.2ms)  SELECT 1", "sql")

	out := buf.String()
	want := "level=FATAL msg=Query (1.2ms)  SELECT 1 tag=sql\n"

	if got := plain(out); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if !strings.Contains(out, colorMagenta+"FATAL"+colorReset) {
		t.Errorf("expected magenta fatal label in %q", out)
	}
}

func TestPrettyJSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithTimeLayout("none"))
	logger.Unknown("replayed", slog.Int("lines", 3), slog.Bool("ok", false))

	want := "{\n" +
		"  level: UNKNOWN,\n" +
		"  msg: replayed,\n" +
		"  lines: 3,\n" +
		"  ok: false\n" +
		"}\n"

	if got := plain(buf.String()); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPretty_Attributes(t *testing.T) {
	tests := []struct {
		name string
		log  func(Logger)
		want string
	}{
		{
			"with",
			func(l Logger) {
				l.With(slog.String("component", "replay")).Info("m")
			},
			"component=replay",
		},
		{
			"group",
			func(l Logger) {
				l.Logger.WithGroup("report").Info("m", "seconds", 0.5)
			},
			"report.seconds=0.5",
		},
		{
			"group attr",
			func(l Logger) {
				l.Info("m", slog.Group("report", slog.String("unit", "ms")))
			},
			"report.unit=ms",
		},
		{
			"log valuer",
			func(l Logger) { l.Error("m", slog.Any("err", replayError{})) },
			"err.error=replay failed err.line=3",
		},
		{
			"plain error",
			func(l Logger) { l.Error("m", slog.Any("err", errors.New("boom"))) },
			"err=boom",
		},
		{
			"nil",
			func(l Logger) { l.Info("m", slog.Any("v", nil)) },
			"v=null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.log(Make(&buf, WithFormat(FormatText), WithTimeLayout("none")))

			if got := plain(buf.String()); !strings.Contains(got, tt.want) {
				t.Errorf("expected %q in %q", tt.want, got)
			}
		})
	}
}

func TestPretty_Caller(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithFormat(FormatText), WithCaller(true)).Info("m")

	if got := plain(buf.String()); !strings.Contains(got, "pretty_test.go:") {
		t.Errorf("expected source in %q", got)
	}
}
