package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ardnew/arprof/annotate"
	"github.com/ardnew/arprof/log"
)

// stdoutTarget is the special output indicator for writing to stdout.
const stdoutTarget = "-"

// Replay reads log lines and writes each one through an annotating logger.
// Lines in the shape of a profiler duration report get the call site
// appended; all other lines pass through unchanged.
type Replay struct {
	Location  string `help:"Call site appended to duration reports (default: input line number)." short:"l"`
	Level     string `default:"info" enum:"${severityEnum}" help:"Severity of every replayed line."`
	Tag       string `help:"Tag attached to every replayed line."`
	Highlight bool   `default:"true" help:"Highlight call sites when logging pretty text." negatable:""`
	Color     string `help:"Lipgloss color of highlighted call sites." name:"highlight-color"`
	Where     string `help:"Only replay lines for which this expression is true." placeholder:"EXPR"`
	Output    string `default:"-" help:"Output file or '-' for stdout." short:"o" type:"path"`
}

// maxLineSize bounds a single input line. Profiler reports of queries with
// long IN lists can run far past bufio's default of 64 KiB.
const maxLineSize = 32 << 20

// Run replays the configured sources, or stdin when none were given.
func (r *Replay) Run(ctx context.Context) error {
	var in io.Reader = os.Stdin
	if src := sourceFilesFrom(ctx); !src.IsZero() {
		defer func() { _ = src.Close() }()

		in = src
	}

	out, done, err := r.openOutput()
	if err != nil {
		return err
	}
	defer done()

	return r.run(ctx, in, out)
}

func (r *Replay) openOutput() (io.Writer, func(), error) {
	if r.Output == "" || r.Output == stdoutTarget {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(r.Output)
	if err != nil {
		return nil, nil, ErrOpenOutput.Wrap(err).
			With(slog.String("path", r.Output))
	}

	return f, func() { _ = f.Close() }, nil
}

// run replays each line of in to a copy of the default logger writing to
// out, with opts applied.
func (r *Replay) run(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	opts ...log.Option,
) error {
	level, _ := annotate.Severity(r.Level)
	sink := log.Default().Wrap(append([]log.Option{log.WithOutput(out)}, opts...)...)

	where, err := compileFilter(r.Where)
	if err != nil {
		return err
	}

	var (
		line      int
		replayed  int
		annotated int
	)

	logger := annotate.New(sink, r.collector(&line), r.options(sink, out)...)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		line++
		text := scanner.Text()

		ok, ferr := where.match(text)
		if ferr != nil {
			return ferr.With(slog.Int("line", line))
		}

		if !ok {
			continue
		}

		err = logger.LogContext(ctx, level, text, r.Tag, nil)
		if err != nil {
			return ErrWriteLog.Wrap(err).With(slog.Int("line", line))
		}

		replayed++

		if annotate.Match(text) {
			annotated++
		}
	}

	err = scanner.Err()
	if err != nil {
		return ErrReadSource.Wrap(err).With(slog.Int("line", line))
	}

	log.DebugContext(ctx, "replay complete",
		slog.Int("lines", line),
		slog.Int("replayed", replayed),
		slog.Int("annotated", annotated),
	)

	return nil
}

// collector returns the call-site source for replayed lines. Without an
// explicit location, the call site is the current input line.
func (r *Replay) collector(line *int) annotate.Collector {
	if r.Location != "" {
		return annotate.Static(r.Location)
	}

	return annotate.CollectorFunc(func() string {
		return fmt.Sprintf("input:%d", *line)
	})
}

func (r *Replay) options(sink log.Logger, out io.Writer) []annotate.Option {
	opts := []annotate.Option{
		annotate.WithTag(r.Tag),
		annotate.WithHighlight(func() bool {
			return r.Highlight && sink.Pretty() &&
				sink.Format() == log.FormatText
		}),
	}

	if r.Color != "" {
		renderer := lipgloss.NewRenderer(out)
		if renderer.ColorProfile() == termenv.Ascii {
			// Pretty log output is colored whether or not out is a terminal.
			renderer.SetColorProfile(termenv.ANSI256)
		}

		style := renderer.NewStyle().
			Foreground(lipgloss.Color(r.Color)).
			Bold(true)
		opts = append(opts, annotate.WithHighlighter(
			annotate.StyleHighlighter(style),
		))
	}

	return opts
}
