// Package profile provides optional runtime profiling for arprof.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. Without the tag every operation is a no-op and [Modes] is empty.
//
//	go build -tags pprof -o arprof .
//
// # Available Profiling Modes
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// # Usage
//
// A [Config] is a function returning the profiler parameters. Functional
// options derive new configurations from an existing one:
//
//	var cfg profile.Config = func() (string, string, bool) {
//		return "", "", false
//	}
//
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/arprof")(cfg)
//
//	ctrl := cfg.Start()
//	defer ctrl.Stop()
//
// Profiles are written to the configured directory with names matching the
// mode (e.g., cpu.pprof) and can be inspected with:
//
//	go tool pprof -http=: /tmp/arprof/cpu.pprof
//
// The arprof command exposes the same settings as --pprof-mode and
// --pprof-dir.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
