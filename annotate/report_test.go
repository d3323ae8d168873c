package annotate

import (
	"strings"
	"testing"
	"time"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want bool
	}{
		{"seconds", "Query (0.002 seconds)  SELECT 1", true},
		{"second", "Cache read (1 second)", true},
		{"milliseconds", "User Load (0.3ms)  SELECT \"users\".* FROM \"users\"", true},
		{"microseconds", "Fetch (12us)", true},
		{"nanoseconds", "Tick (40 ns)", true},
		{"bare s", "Render (1.5s) index.html", true},
		{"leading whitespace", "   Query (0.1 seconds)", true},
		{
			"color escapes",
			"\x1b[1m\x1b[36mUser Load (0.4ms)\x1b[0m  \x1b[1mSELECT 1\x1b[0m",
			true,
		},
		{"compound escape", "\x1b[1;35mSQL (2.0ms)\x1b[0m DELETE", true},
		{"second line", "header\nQuery (0.002 seconds) SELECT 1", true},
		{"plain text", "plain text", false},
		{"empty", "", false},
		{"no unit", "Query (0.002) SELECT 1", false},
		{"unknown unit", "Query (5 minutes) SELECT 1", false},
		{"word in parens", "Started GET (index)", false},
		{"already annotated", "Query (0.002 seconds)  SELECT 1 CALLED BY 'app.rb:10'", false},
		{"annotated with newline", "Query (1ms) CALLED BY 'app.rb:10'\n", false},
		{"annotated with spaces", "Query (1ms) CALLED BY 'app.rb:10' \r\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.msg); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestAddCallSite_Properties(t *testing.T) {
	messages := []string{
		"Query (0.002 seconds)  SELECT 1",
		"User Load (0.3ms)  SELECT 1",
		"\x1b[1m\x1b[36mSQL (2.0ms)\x1b[0m  \x1b[1mSELECT 1\x1b[0m",
		"plain text",
		"",
		"(no duration here)",
		"Started GET \"/\" for 127.0.0.1",
	}

	for _, highlight := range []bool{false, true} {
		logger := New(nil, Static("app.rb:10"),
			WithHighlight(func() bool { return highlight }))
		suffix := "CALLED BY '" + Format("app.rb:10", highlight) + "'"

		for _, msg := range messages {
			got, _ := logger.AddCallSite(msg).(string)

			if !Match(msg) {
				if got != msg {
					t.Errorf("expected %q unchanged, got %q", msg, got)
				}

				continue
			}

			if !strings.HasPrefix(got, msg) {
				t.Errorf("expected %q to start with %q", got, msg)
			}
			if !strings.HasSuffix(got, suffix) {
				t.Errorf("expected %q to end with %q", got, suffix)
			}
			if Match(got) {
				t.Errorf("expected annotated %q not to match again", got)
			}
			if again := logger.AddCallSite(got); again != got {
				t.Errorf("expected second rewrite to be a no-op, got %q", again)
			}
		}
	}
}

func TestAddCallSite_NonString(t *testing.T) {
	logger := New(nil, Static("loc"))

	type payload struct{ n int }

	for _, msg := range []any{nil, 7, payload{1}, []byte("Query (1s)")} {
		got := logger.AddCallSite(msg)
		if b, ok := msg.([]byte); ok {
			if string(got.([]byte)) != string(b) {
				t.Errorf("expected %v unchanged, got %v", msg, got)
			}

			continue
		}

		if got != msg {
			t.Errorf("expected %v unchanged, got %v", msg, got)
		}
	}
}

func TestParseReport(t *testing.T) {
	tests := []struct {
		msg      string
		want     Report
		duration time.Duration
	}{
		{
			msg:      "Query (0.002 seconds)  SELECT 1",
			want:     Report{"Query", "0.002", "seconds", "SELECT 1"},
			duration: 2 * time.Millisecond,
		},
		{
			msg:      "\x1b[1m\x1b[36mUser Load (0.5ms)\x1b[0m  SELECT \"users\".*",
			want:     Report{"User Load", "0.5", "ms", "SELECT \"users\".*"},
			duration: 500 * time.Microsecond,
		},
		{
			msg:      "Render (2s)",
			want:     Report{"Render", "2", "s", ""},
			duration: 2 * time.Second,
		},
		{
			msg:      "Broken (1.2.3ms)",
			want:     Report{"Broken", "1.2.3", "ms", ""},
			duration: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.want.Label, func(t *testing.T) {
			got, ok := ParseReport(tt.msg)
			if !ok {
				t.Fatalf("ParseReport(%q) did not match", tt.msg)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if d := got.Duration(); d != tt.duration {
				t.Errorf("expected duration %v, got %v", tt.duration, d)
			}
		})
	}

	if _, ok := ParseReport("plain text"); ok {
		t.Error("expected plain text not to parse")
	}
}

func TestAddCallSite_TrailingNewlineNotRepeated(t *testing.T) {
	logger := New(&recordingSink{}, Static("app.rb:10"))

	once := logger.AddCallSite("Query (1ms)  SELECT 1").(string) + "\n"

	if got := logger.AddCallSite(once); got != once {
		t.Errorf("expected %q unchanged, got %q", once, got)
	}
}
