package flagset

import (
	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-flagset/internal/store"
	"github.com/askiada/go-flagset/pkg/flagset/model"
)

// relations holds the requires graph and the conflict pairs of a set.
// Every registered flag is a vertex of the graph; a requires declaration
// adds a directed edge from the requiring flag to the required one.
type relations struct {
	store     *store.FlagStore
	graph     graph.Graph[string, *model.FlagInfo]
	conflicts [][2]string
}

func newRelations() *relations {
	st := store.New()

	return &relations{
		store: st,
		graph: graph.NewWithStore(func(info *model.FlagInfo) string {
			return info.Name
		}, st, graph.Directed()),
	}
}

func (r *relations) addFlag(info *model.FlagInfo) error {
	err := r.graph.AddVertex(info)
	if err != nil {
		return errors.Wrapf(err, "unable to add flag %q to the relations graph", info.Name)
	}

	return nil
}

// Requires declares that providing name also requires providing required.
// Both flags must be registered. An edge that would close a cycle is
// rejected.
func (s *Set) Requires(name, required string) error {
	if _, ok := s.flags[name]; !ok {
		return errors.Wrapf(ErrUnknownFlag, "%q", name)
	}
	if _, ok := s.flags[required]; !ok {
		return errors.Wrapf(ErrUnknownFlag, "%q", required)
	}

	cycle, err := s.relations.store.CreatesCycle(name, required)
	if err != nil {
		return errors.Wrap(err, "unable to check for cycles")
	}
	if cycle {
		return errors.Wrapf(ErrRequiresCycle, "%q requires %q", name, required)
	}

	err = s.relations.graph.AddEdge(name, required)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %q to %q", name, required)
	}

	return nil
}

// Conflicts declares that name and other cannot both be provided. The
// relation is symmetric.
func (s *Set) Conflicts(name, other string) error {
	if _, ok := s.flags[name]; !ok {
		return errors.Wrapf(ErrUnknownFlag, "%q", name)
	}
	if _, ok := s.flags[other]; !ok {
		return errors.Wrapf(ErrUnknownFlag, "%q", other)
	}

	s.relations.conflicts = append(s.relations.conflicts, [2]string{name, other})

	return nil
}

func (r *relations) validate(s *Set) error {
	edges, err := r.graph.Edges()
	if err != nil {
		return errors.Wrap(err, "unable to list requires relations")
	}

	for _, edge := range edges {
		if s.provided(edge.Source) && !s.provided(edge.Target) {
			return errors.Wrapf(ErrFlagRequired, "%q requires %q", edge.Source, edge.Target)
		}
	}

	for _, conflict := range r.conflicts {
		if s.provided(conflict[0]) && s.provided(conflict[1]) {
			return errors.Wrapf(ErrFlagConflict, "%q and %q", conflict[0], conflict[1])
		}
	}

	return nil
}
