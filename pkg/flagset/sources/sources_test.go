package sources_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-flagset/pkg/flagset/model"
	"github.com/askiada/go-flagset/pkg/flagset/sources"
)

type staticSource struct {
	values map[string]string
	origin model.Origin
	err    error
}

func (s *staticSource) Load(_ context.Context) (map[string]string, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.values, nil
}

func (s *staticSource) Origin() model.Origin {
	return s.origin
}

func TestEnvSource(t *testing.T) {
	t.Setenv("GOFLAGSET_RETRY_COUNT", "5")
	t.Setenv("GOFLAGSET_INPUT", "data.csv")

	values, err := sources.Env("GOFLAGSET_").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "5", values["retry_count"])
	assert.Equal(t, "data.csv", values["input"])
}

func TestEnvSourceOrigin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, model.OriginEnv, sources.Env("X_").Origin())
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "retry_count: 5\ninput: data.csv\nverbose: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	src := sources.File(path)
	assert.Equal(t, model.OriginFile, src.Origin())

	values, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "5", values["retry_count"])
	assert.Equal(t, "data.csv", values["input"])
	assert.Equal(t, "true", values["verbose"])
}

func TestFileSourceMissing(t *testing.T) {
	t.Parallel()

	_, err := sources.File(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background())
	assert.Error(t, err)
}

func TestLoadMergeOrder(t *testing.T) {
	t.Parallel()

	first := &staticSource{
		values: map[string]string{"retry": "1", "input": "a.csv"},
		origin: model.OriginFile,
	}
	second := &staticSource{
		values: map[string]string{"retry": "2"},
		origin: model.OriginEnv,
	}

	merged, err := sources.Load(context.Background(), nil, first, second)
	require.NoError(t, err)

	assert.Equal(t, sources.Value{Raw: "2", Origin: model.OriginEnv}, merged["retry"])
	assert.Equal(t, sources.Value{Raw: "a.csv", Origin: model.OriginFile}, merged["input"])
}

func TestLoadFailure(t *testing.T) {
	t.Parallel()

	broken := &staticSource{
		origin: model.OriginFile,
		err:    assert.AnError,
	}
	fine := &staticSource{
		values: map[string]string{"retry": "1"},
		origin: model.OriginEnv,
	}

	_, err := sources.Load(context.Background(), nil, broken, fine)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLoadCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retry: 1\n"), 0o600))

	_, err := sources.Load(ctx, nil, sources.File(path))
	assert.Error(t, err)
}
