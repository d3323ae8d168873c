// Package cli contains the command line interface for arprof.
//
// # Usage
//
// The default command replays log lines from the given sources (or stdin)
// and appends the call site to every profiler duration report:
//
//	arprof -s development.log --location app/models/user.rb:42
//	tail -f development.log | arprof replay --where 'seconds > 0.1'
//
// # Configuration
//
// Flag values are also read from config.json and config.yaml in the user
// configuration directory. Command-line flags override config file values.
// YAML keys may use underscores or nested mappings (see [resolveYAML]).
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error,
//     fatal, unknown)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// Logging flags are applied before the command line is parsed, so they also
// affect parse errors.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o arprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
