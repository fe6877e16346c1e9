package flagset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-flagset/pkg/flagset"
	"github.com/askiada/go-flagset/pkg/flagset/model"
)

func newSet(t *testing.T, opts ...flagset.Option) *flagset.Set {
	t.Helper()

	return flagset.New(append([]flagset.Option{flagset.WithName("test")}, opts...)...)
}

func mustInt(t *testing.T, set *flagset.Set, name string, def int, desc string, opts ...flagset.FlagOption) *flagset.Flag[int] {
	t.Helper()

	flag, err := flagset.Int(set, name, def, desc, opts...)
	require.NoError(t, err)

	return flag
}

func mustString(t *testing.T, set *flagset.Set, name, def, desc string, opts ...flagset.FlagOption) *flagset.Flag[string] {
	t.Helper()

	flag, err := flagset.String(set, name, def, desc, opts...)
	require.NoError(t, err)

	return flag
}

func mustBool(t *testing.T, set *flagset.Set, name, desc string) *flagset.Flag[bool] {
	t.Helper()

	flag, err := flagset.Bool(set, name, desc)
	require.NoError(t, err)

	return flag
}

// mapSource is an in-memory sources.Source used to exercise source
// precedence without touching the environment or the filesystem.
type mapSource struct {
	values map[string]string
	origin model.Origin
	err    error
}

func (m *mapSource) Load(_ context.Context) (map[string]string, error) {
	if m.err != nil {
		return nil, m.err
	}

	return m.values, nil
}

func (m *mapSource) Origin() model.Origin {
	return m.origin
}
