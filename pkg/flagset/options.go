package flagset

import (
	"io"
	"log/slog"

	"github.com/askiada/go-flagset/pkg/flagset/sources"
	"github.com/askiada/go-flagset/pkg/flagset/usage"
)

type Option func(s *Set)

// WithName sets the program name used in usage output.
func WithName(name string) Option {
	return func(s *Set) {
		s.name = name
	}
}

// WithOutput sets the writer usage and errors are printed to.
func WithOutput(w io.Writer) Option {
	return func(s *Set) {
		s.output = w
	}
}

// WithErrorHandling sets how Parse reacts to an error.
func WithErrorHandling(handling ErrorHandling) Option {
	return func(s *Set) {
		s.errorHandling = handling
	}
}

// WithSources adds external value sources, applied before the command line
// in the order they are given. A later source wins over an earlier one.
func WithSources(srcs ...sources.Source) Option {
	return func(s *Set) {
		s.srcs = append(s.srcs, srcs...)
	}
}

// WithLogger sets the logger used to trace source resolution.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Set) {
		s.logger = logger
	}
}

// WithUsage replaces the default text usage renderer.
func WithUsage(renderer usage.Renderer) Option {
	return func(s *Set) {
		s.renderer = renderer
	}
}

type flagSettings struct {
	mandatory bool
}

type FlagOption func(*flagSettings)

// Mandatory marks a flag as required on the command line or a source.
func Mandatory() FlagOption {
	return func(settings *flagSettings) {
		settings.mandatory = true
	}
}
