package pkg

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestPrefixOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/local/bin/arprof", "arprof"},
		{"arprof.exe", "arprof"},
		{"/tmp/__debug_bin3012", Name},
		{"__debug_bin", Name},
		{"/home/u/.replay", "replay"},
		{"...", Name},
		{"./bin/profiler-tail", "profiler-tail"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := prefixOf(tt.path); got != tt.want {
				t.Errorf("prefixOf(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	ok := func() (string, error) { return "/base", nil }
	if got, want := userDir(ok, ".config"), filepath.Join("/base", Prefix()); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	fail := func() (string, error) { return "", errors.New("unset") }
	if got, want := userDir(fail, ".cache"), filepath.Join(home, ".cache", Prefix()); got != want {
		t.Errorf("expected fallback %q, got %q", want, got)
	}
}
