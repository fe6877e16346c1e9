package flagset

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/askiada/go-flagset/pkg/flagset/model"
	"github.com/askiada/go-flagset/pkg/flagset/sources"
	"github.com/askiada/go-flagset/pkg/flagset/usage"
)

// ErrorHandling defines how a Set reacts to a parsing error.
type ErrorHandling int

const (
	// ContinueOnError makes Parse return the error.
	ContinueOnError ErrorHandling = iota
	// ExitOnError makes Parse print the error and the usage, then exit
	// with status 1.
	ExitOnError
	// PanicOnError makes Parse panic with the error.
	PanicOnError
)

// Set is a registry of flags sharing one command line.
type Set struct {
	name          string
	output        io.Writer
	errorHandling ErrorHandling
	logger        *slog.Logger
	renderer      usage.Renderer
	srcs          []sources.Source

	flags       map[string]value
	order       []string
	unsatisfied map[string]struct{}
	relations   *relations
	parsed      bool
}

// New creates a new flag set. The zero configuration reports errors to the
// caller, renders usage as text and names the set after the program.
func New(opts ...Option) *Set {
	set := &Set{
		name:          filepath.Base(os.Args[0]),
		output:        os.Stderr,
		errorHandling: ContinueOnError,
		renderer:      usage.NewText(),
		flags:         make(map[string]value),
		unsatisfied:   make(map[string]struct{}),
		relations:     newRelations(),
	}

	for _, opt := range opts {
		opt(set)
	}

	return set
}

// Name returns the program name used in usage output.
func (s *Set) Name() string {
	return s.name
}

// Parsed reports whether Parse has been called.
func (s *Set) Parsed() bool {
	return s.parsed
}

// Lookup returns the metadata of the named flag, or nil if the flag is not
// registered.
func (s *Set) Lookup(name string) *model.FlagInfo {
	flag, ok := s.flags[name]
	if !ok {
		return nil
	}

	return flag.info()
}

// VisitAll calls fn for every registered flag, in registration order.
func (s *Set) VisitAll(fn func(*model.FlagInfo)) {
	for _, name := range s.order {
		fn(s.flags[name].info())
	}
}

// Visit calls fn for every flag that was provided a value, in registration
// order.
func (s *Set) Visit(fn func(*model.FlagInfo)) {
	for _, name := range s.order {
		info := s.flags[name].info()
		if info.Provided {
			fn(info)
		}
	}
}

// Origins reports the origin of every flag value after parsing.
func (s *Set) Origins() map[string]model.Origin {
	origins := make(map[string]model.Origin, len(s.order))
	for _, name := range s.order {
		origins[name] = s.flags[name].info().Origin
	}

	return origins
}

// PrintDefaults renders the usage of all registered flags to the output of
// the set.
func (s *Set) PrintDefaults() {
	infos := make([]*model.FlagInfo, 0, len(s.order))
	for _, name := range s.order {
		infos = append(infos, s.flags[name].info())
	}

	_ = s.renderer.Render(s.output, s.name, infos)
}

// DrawRelations renders the requires and conflicts relations of the set as
// a DOT graph.
func (s *Set) DrawRelations(w io.Writer) error {
	return usage.DOT(s.relations.graph, s.relations.conflicts, w)
}

func (s *Set) register(flag value) error {
	info := flag.info()
	if _, ok := s.flags[info.Name]; ok {
		return errors.Wrapf(ErrAlreadyDefined, "flag %q", info.Name)
	}

	err := s.relations.addFlag(info)
	if err != nil {
		return err
	}

	s.flags[info.Name] = flag
	s.order = append(s.order, info.Name)

	if info.Mandatory {
		s.unsatisfied[info.Name] = struct{}{}
	}

	return nil
}

func (s *Set) provided(name string) bool {
	flag, ok := s.flags[name]
	if !ok {
		return false
	}

	return flag.info().Provided
}
