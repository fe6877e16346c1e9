package sources

import (
	"context"

	"github.com/askiada/go-flagset/pkg/flagset/model"
)

// Source supplies flag values from outside the command line.
type Source interface {
	// Load returns raw values keyed by flag name.
	Load(ctx context.Context) (map[string]string, error)
	// Origin identifies where the values come from.
	Origin() model.Origin
}
