package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/arprof/pkg"
)

// baseConfig is the base name of the configuration files.
const baseConfig = "config"

// defaultDirMode is the default permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// configPath returns the path formed by joining the configuration directory
// with the given path elements.
//
// If no elements are given, it is equivalent to calling [pkg.ConfigDir].
func configPath(elem ...string) string {
	return filepath.Join(append([]string{pkg.ConfigDir()}, elem...)...)
}

// cacheDir returns the cache directory used for transient files such as
// profiles.
func cacheDir() string { return pkg.CacheDir() }

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	err := os.MkdirAll(pkg.ConfigDir(), defaultDirMode)
	if err != nil {
		return err
	}

	return os.MkdirAll(pkg.CacheDir(), defaultDirMode)
}
