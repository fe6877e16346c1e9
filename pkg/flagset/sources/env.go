package sources

import (
	"context"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/askiada/go-flagset/pkg/flagset/model"
)

// EnvSource reads flag values from environment variables sharing a common
// prefix. MYAPP_RETRY_COUNT maps to the flag "retry_count" when the prefix
// is "MYAPP_".
type EnvSource struct {
	prefix string
}

// Env creates a source backed by the environment variables starting with
// the given prefix.
func Env(prefix string) *EnvSource {
	return &EnvSource{prefix: prefix}
}

func (s *EnvSource) Load(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	err := k.Load(env.Provider(s.prefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, s.prefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read environment with prefix %q", s.prefix)
	}

	return flatten(k.All()), nil
}

func (s *EnvSource) Origin() model.Origin {
	return model.OriginEnv
}

var _ Source = (*EnvSource)(nil)
