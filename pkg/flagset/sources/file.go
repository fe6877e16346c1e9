package sources

import (
	"context"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/askiada/go-flagset/pkg/flagset/model"
)

// FileSource reads flag values from the top-level keys of a YAML file.
type FileSource struct {
	path string
}

// File creates a source backed by the YAML file at path.
func File(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	err := k.Load(file.Provider(s.path), yaml.Parser())
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load file %s", s.path)
	}

	return flatten(k.All()), nil
}

func (s *FileSource) Origin() model.Origin {
	return model.OriginFile
}

var _ Source = (*FileSource)(nil)
