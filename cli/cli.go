package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/arprof/annotate"
	"github.com/ardnew/arprof/cli/cmd"
	"github.com/ardnew/arprof/pkg"
)

// CLI is the top-level command-line interface for arprof.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Source []string `help:"Input source file(s) or '-' for stdin" name:"source" short:"s" type:"existingfile"`

	Replay  cmd.Replay  `cmd:"" default:"withargs" help:"Replay profiler log lines with call sites"`
	Version cmd.Version `cmd:""                    help:"Print version information"`
}

// vars returns the kong variables shared by all commands.
func (cli *CLI) vars() kong.Vars {
	return kong.Vars{
		cmd.ConfigIdentifier:   configPath(baseConfig),
		cmd.CacheIdentifier:    cacheDir(),
		cmd.SeverityIdentifier: strings.Join(annotate.Severities(), ","),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())
}

// Run executes the arprof CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	// The provider reads ctx when a command runs, after the values below are
	// added.
	provide := func() context.Context { return ctx }

	parser, err := newParser(&cli, exit, provide,
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolveYAML, configPath(baseConfig+".yaml")),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSourceFiles(ctx, cli.Source)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}

// newParser builds the kong parser for cli with any extra options.
// Commands receive the context returned by provide.
func newParser(
	cli *CLI,
	exit func(code int),
	provide func() context.Context,
	opts ...kong.Option,
) (*kong.Kong, error) {
	return kong.New(cli,
		append([]kong.Option{
			kong.Name(pkg.Name),
			kong.Description(pkg.Description),
			kong.UsageOnError(),
			kong.Exit(exit),
			kong.ExplicitGroups(
				[]kong.Group{cli.Log.group(), cli.Pprof.group()},
			),
			kong.BindSingletonProvider(provide),
			kong.ConfigureHelp(
				kong.HelpOptions{
					Compact:             true,
					Summary:             true,
					Tree:                true,
					NoExpandSubcommands: true,
				}),
			cli.vars(),
		}, opts...)...,
	)
}
