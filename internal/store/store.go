package store

import (
	"fmt"
	"sync"

	"github.com/dominikbraun/graph"

	"github.com/askiada/go-flagset/pkg/flagset/model"
)

// FlagStore is a thread-safe graph store holding registered flags as
// vertices and their requires relations as directed edges.
type FlagStore struct {
	lock             sync.RWMutex
	vertices         map[string]*model.FlagInfo
	vertexProperties map[string]*graph.VertexProperties

	// outEdges and inEdges store all outgoing and ingoing edges for all
	// vertices. For O(1) access, these edges themselves are stored in maps
	// whose keys are the names of the target vertices.
	outEdges map[string]map[string]graph.Edge[string] // source -> target
	inEdges  map[string]map[string]graph.Edge[string] // target -> source
}

func New() *FlagStore {
	return &FlagStore{
		vertices:         make(map[string]*model.FlagInfo),
		vertexProperties: make(map[string]*graph.VertexProperties),
		outEdges:         make(map[string]map[string]graph.Edge[string]),
		inEdges:          make(map[string]map[string]graph.Edge[string]),
	}
}

func (s *FlagStore) AddVertex(name string, info *model.FlagInfo, p graph.VertexProperties) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.vertices[name]; ok {
		return graph.ErrVertexAlreadyExists
	}

	s.vertices[name] = info
	s.vertexProperties[name] = &p

	return nil
}

func (s *FlagStore) ListVertices() ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	names := make([]string, 0, len(s.vertices))
	for name := range s.vertices {
		names = append(names, name)
	}

	return names, nil
}

func (s *FlagStore) VertexCount() (int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.vertices), nil
}

func (s *FlagStore) Vertex(name string) (*model.FlagInfo, graph.VertexProperties, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	info, ok := s.vertices[name]
	if !ok {
		return nil, graph.VertexProperties{}, graph.ErrVertexNotFound
	}

	p := s.vertexProperties[name]

	return info, *p, nil
}

func (s *FlagStore) RemoveVertex(name string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.vertices[name]; !ok {
		return graph.ErrVertexNotFound
	}

	if edges, ok := s.inEdges[name]; ok {
		if len(edges) > 0 {
			return graph.ErrVertexHasEdges
		}
		delete(s.inEdges, name)
	}

	if edges, ok := s.outEdges[name]; ok {
		if len(edges) > 0 {
			return graph.ErrVertexHasEdges
		}
		delete(s.outEdges, name)
	}

	delete(s.vertices, name)
	delete(s.vertexProperties, name)

	return nil
}

func (s *FlagStore) AddEdge(sourceName, targetName string, edge graph.Edge[string]) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.outEdges[sourceName]; !ok {
		s.outEdges[sourceName] = make(map[string]graph.Edge[string])
	}

	s.outEdges[sourceName][targetName] = edge

	if _, ok := s.inEdges[targetName]; !ok {
		s.inEdges[targetName] = make(map[string]graph.Edge[string])
	}

	s.inEdges[targetName][sourceName] = edge

	return nil
}

func (s *FlagStore) UpdateEdge(sourceName, targetName string, edge graph.Edge[string]) error {
	if _, err := s.Edge(sourceName, targetName); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.outEdges[sourceName][targetName] = edge
	s.inEdges[targetName][sourceName] = edge

	return nil
}

func (s *FlagStore) RemoveEdge(sourceName, targetName string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.inEdges[targetName], sourceName)
	delete(s.outEdges[sourceName], targetName)

	return nil
}

func (s *FlagStore) Edge(sourceName, targetName string) (graph.Edge[string], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	sourceEdges, ok := s.outEdges[sourceName]
	if !ok {
		return graph.Edge[string]{}, graph.ErrEdgeNotFound
	}

	edge, ok := sourceEdges[targetName]
	if !ok {
		return graph.Edge[string]{}, graph.ErrEdgeNotFound
	}

	return edge, nil
}

func (s *FlagStore) ListEdges() ([]graph.Edge[string], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	res := make([]graph.Edge[string], 0)
	for _, edges := range s.outEdges {
		for _, edge := range edges {
			res = append(res, edge)
		}
	}

	return res, nil
}

// CreatesCycle reports whether adding an edge from source to target would
// introduce a cycle. It walks the predecessors of source using inEdges
// directly, which avoids the garbage generated by building a full
// predecessor map.
func (s *FlagStore) CreatesCycle(source, target string) (bool, error) {
	if _, _, err := s.Vertex(source); err != nil {
		return false, fmt.Errorf("could not get vertex %q: %w", source, err)
	}

	if _, _, err := s.Vertex(target); err != nil {
		return false, fmt.Errorf("could not get vertex %q: %w", target, err)
	}

	if source == target {
		return true, nil
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	stack := []string{source}
	visited := make(map[string]struct{})

	for len(stack) > 0 {
		currentName := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[currentName]; !ok {
			// If a predecessor also is the target vertex, the target is an
			// ancestor of the source vertex. The edge would introduce a cycle.
			if currentName == target {
				return true, nil
			}

			visited[currentName] = struct{}{}

			for adjacency := range s.inEdges[currentName] {
				stack = append(stack, adjacency)
			}
		}
	}

	return false, nil
}

var _ graph.Store[string, *model.FlagInfo] = (*FlagStore)(nil)
