package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

type (
	contextKey struct{}
	sourcesKey struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(contextKey{}).(*kong.Context)

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// Sources reads a deduplicated list of input files in order, then stdin if
// it was requested. Each file is opened when reading reaches it and closed
// at its end.
type Sources struct {
	paths []string
	stdin bool

	cur  io.Reader
	file *os.File
}

// fileKey identifies a file by device and inode, so the same file reached
// through a symlink or a different relative path is read once.
type fileKey struct {
	dev uint64
	ino uint64
}

// WithSourceFiles returns a new context.Context carrying the [Sources] for
// paths. All occurrences of "-", and any path naming the same file as
// stdin, collapse to a single read of stdin after every other file.
// Paths that cannot be resolved are skipped.
func WithSourceFiles(ctx context.Context, paths []string) context.Context {
	return context.WithValue(ctx, sourcesKey{}, makeSources(paths))
}

// sourceFilesFrom returns the Sources stored by WithSourceFiles, or nil.
func sourceFilesFrom(ctx context.Context) *Sources {
	s, _ := ctx.Value(sourcesKey{}).(*Sources)

	return s
}

func makeSources(paths []string) *Sources {
	var (
		s    Sources
		seen = map[fileKey]bool{}
	)

	stdinKey, stdinOK := statKey(os.Stdin.Stat())

	for _, path := range paths {
		if path == stdinSource {
			s.stdin = true

			continue
		}

		resolved, key, ok := resolve(path)
		if !ok || seen[key] {
			continue
		}

		seen[key] = true

		if stdinOK && key == stdinKey {
			s.stdin = true

			continue
		}

		s.paths = append(s.paths, resolved)
	}

	if len(s.paths) == 0 && !s.stdin {
		return nil
	}

	return &s
}

// resolve returns the symlink-free absolute path of path and its file key.
func resolve(path string) (string, fileKey, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fileKey{}, false
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fileKey{}, false
	}

	key, ok := statKey(os.Stat(resolved))

	return resolved, key, ok
}

// statKey returns the file key of a Stat result. It fails on a Stat error,
// e.g. a closed stdin, or when the platform does not report inodes.
func statKey(info os.FileInfo, err error) (fileKey, bool) {
	if err != nil || info == nil {
		return fileKey{}, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileKey{}, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// IsZero reports whether s has nothing to read.
func (s *Sources) IsZero() bool {
	return s == nil || (len(s.paths) == 0 && !s.stdin)
}

// Read implements io.Reader. An error opening a file is returned from
// Read; the following Read continues with the next source.
func (s *Sources) Read(p []byte) (int, error) {
	for {
		if s.cur == nil {
			more, err := s.advance()
			if err != nil {
				return 0, err
			}

			if !more {
				return 0, io.EOF
			}
		}

		n, err := s.cur.Read(p)
		if errors.Is(err, io.EOF) {
			_ = s.closeCurrent()

			if n > 0 {
				return n, nil
			}

			continue
		}

		return n, err
	}
}

// advance makes the next source current. It reports false when every
// source has been read.
func (s *Sources) advance() (bool, error) {
	switch {
	case len(s.paths) > 0:
		path := s.paths[0]
		s.paths = s.paths[1:]

		f, err := os.Open(path)
		if err != nil {
			return true, err
		}

		s.cur, s.file = f, f

	case s.stdin:
		s.stdin = false
		s.cur = os.Stdin

	default:
		return false, nil
	}

	return true, nil
}

func (s *Sources) closeCurrent() error {
	s.cur = nil

	if s.file == nil {
		return nil
	}

	f := s.file
	s.file = nil

	return f.Close()
}

// Close closes the file being read, if any, and drops unread sources.
func (s *Sources) Close() error {
	if s == nil {
		return nil
	}

	s.paths, s.stdin = nil, false

	return s.closeCurrent()
}
