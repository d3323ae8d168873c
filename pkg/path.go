package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

// Prefix returns the name under which arprof keeps its configuration and
// cache directories: the base name of the running executable, without
// extension, normalized by [prefixOf].
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(func() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}

	return prefixOf(exe)
})

// debugBinary matches the default output name of the dlv debugger.
var debugBinary = regexp.MustCompile(`^__debug_bin\d*$`)

// prefixOf returns the directory prefix for the executable at path.
// Debugger builds map to [Name], and leading dots are dropped.
func prefixOf(path string) string {
	base := strings.TrimLeft(filepath.Base(path), ".")
	base = strings.TrimSuffix(base, filepath.Ext(base))

	if base == "" || debugBinary.MatchString(base) {
		return Name
	}

	return base
}

// ConfigDir returns the configuration directory path.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// CacheDir returns the cache directory path used for transient files.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// userDir returns [Prefix] under the directory reported by base. If base
// fails, the hidden directory named fallback in the home directory is used,
// then the working directory.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		dir = fallbackDir(fallback)
	}

	return filepath.Join(dir, Prefix())
}

func fallbackDir(name string) string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, name)
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	return "."
}
