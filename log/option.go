package log

import (
	"io"
	"sync"
)

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// update returns an Option that calls set with the config's lock held.
func update(set func(*config)) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		set(&c)

		return c
	}
}

// WithDefaults returns an Option that resets every setting to its default
// and writes to w: [DefaultTimeLayout], [DefaultLevel], [DefaultFormat],
// [DefaultCaller], and [DefaultPretty].
// A nil w writes to [io.Discard].
func WithDefaults(w io.Writer) Option {
	return update(func(c *config) {
		c.output = discardNil(w)
		c.formatTime = makeFormatTimeFunc(DefaultTimeLayout)
		c.level = DefaultLevel
		c.format = DefaultFormat
		c.caller = DefaultCaller
		c.pretty = DefaultPretty
	})
}

// WithOutput returns an Option that sets the output [io.Writer].
// A nil w writes to [io.Discard].
func WithOutput(w io.Writer) Option {
	return update(func(c *config) { c.output = discardNil(w) })
}

// WithLevel returns an Option that sets the minimum log level.
// Messages below this level are discarded.
func WithLevel(level Level) Option {
	return update(func(c *config) { c.level = level })
}

// WithFormat returns an Option that sets the output format.
func WithFormat(format Format) Option {
	return update(func(c *config) { c.format = format })
}

// WithTimeLayout returns an Option that sets the layout used to format log
// timestamps.
//
// The layout may name a layout from the [time] package, matched without
// regard to case or punctuation ("RFC3339", "rfc-3339-nano", "kitchen"),
// or one of the Stamp shorthands ("ms", "us", "ns"). Any other layout is
// passed verbatim to [time.Time.Format].
//
// An empty layout, or "none", disables timestamps.
func WithTimeLayout(layout string) Option {
	format := makeFormatTimeFunc(layout)

	return update(func(c *config) { c.formatTime = format })
}

// WithCaller returns an Option that controls whether the source file and
// line of the logging call are included in log output.
func WithCaller(enable bool) Option {
	return update(func(c *config) { c.caller = enable })
}

// WithPretty returns an Option that controls whether log output is
// colorized. Pretty text output drops quoting; pretty JSON output is
// indented, one attribute per line.
func WithPretty(enable bool) Option {
	return update(func(c *config) { c.pretty = enable })
}

func discardNil(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}
