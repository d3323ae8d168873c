package cmd

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/arprof/annotate"
	"github.com/ardnew/arprof/pkg"
)

// filterEnv is the environment a --where expression is evaluated against.
// Report fields are zero when the line is not a duration report.
type filterEnv struct {
	Line    string  `expr:"line"`
	Matched bool    `expr:"matched"`
	Label   string  `expr:"label"`
	Seconds float64 `expr:"seconds"`
	Unit    string  `expr:"unit"`
	Rest    string  `expr:"rest"`
}

func makeFilterEnv(line string) filterEnv {
	env := filterEnv{Line: line, Matched: annotate.Match(line)}

	if r, ok := annotate.ParseReport(line); ok {
		env.Label = r.Label
		env.Seconds = r.Seconds()
		env.Unit = r.Unit
		env.Rest = r.Rest
	}

	return env
}

// filter selects which input lines are replayed.
// A nil filter selects every line.
type filter struct {
	source  string
	program *vm.Program
}

// compileFilter compiles source into a filter.
// An empty source yields a nil filter.
func compileFilter(source string) (*filter, error) {
	if source == "" {
		return nil, nil //nolint:nilnil
	}

	program, err := expr.Compile(source, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrFilter.Wrap(pkg.ErrFilterCompile.Wrap(err)).
			With(slog.String("where", source))
	}

	return &filter{source: source, program: program}, nil
}

// match reports whether line passes the filter.
func (f *filter) match(line string) (bool, *Error) {
	if f == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, makeFilterEnv(line))
	if err != nil {
		return false, ErrFilter.Wrap(err).With(slog.String("where", f.source))
	}

	ok, isBool := out.(bool)
	if !isBool {
		return false, ErrFilter.Wrap(pkg.ErrFilterResult).
			With(slog.String("where", f.source))
	}

	return ok, nil
}
