package annotate

import "github.com/ardnew/arprof/pkg"

// Option applies a configuration option to a [Logger].
type Option = pkg.Option[config]

// config holds the settings of a Logger. It is fixed at construction.
type config struct {
	tag         string
	highlight   func() bool
	highlighter Highlighter
}

func makeConfig() config {
	return config{
		highlighter: DefaultHighlighter,
	}
}

// WithTag returns an option that sets the default tag. The default tag is
// forwarded when a log call supplies neither a message nor a message func,
// and the tag argument is promoted to the message.
func WithTag(tag string) Option {
	return func(c config) config {
		c.tag = tag

		return c
	}
}

// WithHighlight returns an option that reports whether call-site locations
// are highlighted. enabled is called for every annotated message, so it may
// follow configuration that changes at run time. A nil func disables
// highlighting.
func WithHighlight(enabled func() bool) Option {
	return func(c config) config {
		c.highlight = enabled

		return c
	}
}

// WithHighlighter returns an option that sets how a location is highlighted
// when highlighting is enabled. A nil h restores [DefaultHighlighter].
func WithHighlighter(h Highlighter) Option {
	return func(c config) config {
		if h == nil {
			h = DefaultHighlighter
		}

		c.highlighter = h

		return c
	}
}
