// Package logger holds the process-wide zerolog logger.
//
// main calls Init once with the configured level; everything else asks for a
// component-scoped child with Component, or the root logger with Get.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// DefaultService names this binary in log output.
const DefaultService = "hospitality-hub"

// Options controls how the root logger is built.
type Options struct {
	// Level is trace, debug, info, warn or error. Anything else means info.
	Level string
	// Pretty switches to the coloured console writer for local runs.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
	// Service is stamped on every entry. Defaults to DefaultService.
	Service string
}

var root atomic.Pointer[zerolog.Logger]

// Init builds the root logger and returns it. Once a root logger exists,
// later calls return it unchanged.
func Init(opts Options) zerolog.Logger {
	if l := root.Load(); l != nil {
		return *l
	}

	l := build(opts)
	if !root.CompareAndSwap(nil, &l) {
		return *root.Load()
	}
	zerolog.SetGlobalLevel(l.GetLevel())
	return l
}

func build(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	service := opts.Service
	if service == "" {
		service = DefaultService
	}

	return zerolog.New(out).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Str("service", service).
		Caller().
		Logger()
}

// Get returns the root logger. It panics when Init has not run, since a
// silently discarded log is worse than a crash at startup.
func Get() zerolog.Logger {
	l := root.Load()
	if l == nil {
		panic("logger: Get called before Init")
	}
	return *l
}

// Component returns a child of the root logger tagged with component=name.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset drops the root logger so the next Init rebuilds it. Tests only.
func Reset() {
	root.Store(nil)
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
