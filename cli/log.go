package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/arprof/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevelEnum}"  help:"Set log level; replayed lines below it are dropped."`
	Format     logFormat `default:"json"    enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                         help:"Set timestamp format."`
	Caller     bool      `default:"false"                           help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                            help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// options returns the logger options for the parsed flag values.
func (f *logConfig) options() []log.Option {
	return []log.Option{
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	}
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(f.options()...)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing. This ensures the
// logger is configured properly regardless of flag position on the command
// line.
//
// While logFormat and logLevel implement encoding.TextUnmarshaler, boolean
// flags like --log-pretty don't go through that interface.
func (f *logConfig) scan(args []string) {
	boolFlag := map[string]struct {
		field *bool
		opt   func(bool) log.Option
	}{
		"pretty": {&f.Pretty, log.WithPretty},
		"caller": {&f.Caller, log.WithCaller},
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		negate := strings.HasPrefix(arg, "--no-log-")

		var rest string

		switch {
		case negate:
			rest = strings.TrimPrefix(arg, "--no-log-")
		case strings.HasPrefix(arg, "--log-"):
			rest = strings.TrimPrefix(arg, "--log-")
		default:
			continue
		}

		name, value, assigned := strings.Cut(rest, "=")

		// Non-boolean flags consume the next arg as value if not assigned.
		takeValue := func() string {
			if !assigned && i+1 < len(args) && args[i+1] != "" &&
				args[i+1][0] != '-' {
				i++

				return args[i]
			}

			return value
		}

		switch name {
		case "level":
			if !negate {
				_ = f.Level.UnmarshalText([]byte(takeValue()))
			}

		case "format":
			if !negate {
				_ = f.Format.UnmarshalText([]byte(takeValue()))
			}

		default:
			b, ok := boolFlag[name]
			if !ok {
				continue
			}

			// Boolean flags only parse a value explicitly assigned with =.
			v := true
			if assigned {
				parsed, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				v = parsed
			}

			if negate {
				v = !v
			}

			*b.field = v
			log.Config(b.opt(v))
		}
	}
}
