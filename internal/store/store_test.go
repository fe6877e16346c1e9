package store_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-flagset/internal/store"
	"github.com/askiada/go-flagset/pkg/flagset/model"
)

func addVertex(t *testing.T, s *store.FlagStore, name string) {
	t.Helper()

	err := s.AddVertex(name, &model.FlagInfo{Name: name}, graph.VertexProperties{Attributes: map[string]string{}})
	require.NoError(t, err)
}

func addEdge(t *testing.T, s *store.FlagStore, source, target string) {
	t.Helper()

	err := s.AddEdge(source, target, graph.Edge[string]{Source: source, Target: target})
	require.NoError(t, err)
}

func TestAddVertex(t *testing.T) {
	t.Parallel()

	s := store.New()
	addVertex(t, s, "retry")

	info, _, err := s.Vertex("retry")
	require.NoError(t, err)
	assert.Equal(t, "retry", info.Name)

	count, err := s.VertexCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAddVertexDuplicate(t *testing.T) {
	t.Parallel()

	s := store.New()
	addVertex(t, s, "retry")

	err := s.AddVertex("retry", &model.FlagInfo{Name: "retry"}, graph.VertexProperties{})
	assert.ErrorIs(t, err, graph.ErrVertexAlreadyExists)
}

func TestVertexNotFound(t *testing.T) {
	t.Parallel()

	s := store.New()

	_, _, err := s.Vertex("missing")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestListVertices(t *testing.T) {
	t.Parallel()

	s := store.New()
	addVertex(t, s, "a")
	addVertex(t, s, "b")

	names, err := s.ListVertices()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestEdges(t *testing.T) {
	t.Parallel()

	s := store.New()
	addVertex(t, s, "a")
	addVertex(t, s, "b")
	addEdge(t, s, "a", "b")

	edge, err := s.Edge("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "b", edge.Target)

	_, err = s.Edge("b", "a")
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)

	edges, err := s.ListEdges()
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}

func TestRemoveVertexWithEdges(t *testing.T) {
	t.Parallel()

	s := store.New()
	addVertex(t, s, "a")
	addVertex(t, s, "b")
	addEdge(t, s, "a", "b")

	assert.ErrorIs(t, s.RemoveVertex("a"), graph.ErrVertexHasEdges)

	require.NoError(t, s.RemoveEdge("a", "b"))
	assert.NoError(t, s.RemoveVertex("a"))
}

func TestCreatesCycle(t *testing.T) {
	t.Parallel()

	s := store.New()
	addVertex(t, s, "a")
	addVertex(t, s, "b")
	addVertex(t, s, "c")
	addEdge(t, s, "a", "b")
	addEdge(t, s, "b", "c")

	// a -> c shares direction with the existing path, no cycle
	cycle, err := s.CreatesCycle("a", "c")
	require.NoError(t, err)
	assert.False(t, cycle)

	// c -> a closes the loop
	cycle, err = s.CreatesCycle("c", "a")
	require.NoError(t, err)
	assert.True(t, cycle)
}

func TestCreatesCycleSelf(t *testing.T) {
	t.Parallel()

	s := store.New()
	addVertex(t, s, "a")

	cycle, err := s.CreatesCycle("a", "a")
	require.NoError(t, err)
	assert.True(t, cycle)
}

func TestCreatesCycleUnknownVertex(t *testing.T) {
	t.Parallel()

	s := store.New()
	addVertex(t, s, "a")

	_, err := s.CreatesCycle("a", "missing")
	assert.Error(t, err)
}
