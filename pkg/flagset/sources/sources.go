// Package sources provides external value sources for flag sets.
//
// A source yields raw flag values keyed by flag name. Sources are loaded
// concurrently and merged in the order they are given, so a value supplied
// by a later source replaces the same key from an earlier one. The flagset
// package applies the merged values before reading the command line, which
// makes the overall precedence: default < earlier sources < later sources
// < command line.
package sources

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-flagset/pkg/flagset/model"
)

// Value is a raw flag value together with the origin that supplied it.
type Value struct {
	Raw    string
	Origin model.Origin
}

// Load loads all sources concurrently and merges their values. Later
// sources win on conflicting keys. The logger records at debug level which
// source supplied each key; a nil logger falls back to slog.Default.
func Load(ctx context.Context, logger *slog.Logger, srcs ...Source) (map[string]Value, error) {
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]map[string]string, len(srcs))

	errGrp, dCtx := errgroup.WithContext(ctx)
	for idx, src := range srcs {
		localIdx := idx
		localSrc := src
		errGrp.Go(func() error {
			values, err := localSrc.Load(dCtx)
			if err != nil {
				return errors.Wrapf(err, "unable to load %s source", localSrc.Origin())
			}
			results[localIdx] = values

			return nil
		})
	}

	if err := errGrp.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[string]Value)
	for idx, values := range results {
		origin := srcs[idx].Origin()
		for key, raw := range values {
			merged[key] = Value{Raw: raw, Origin: origin}
			logger.DebugContext(ctx, "source supplied value", "source", origin, "key", key)
		}
	}

	return merged, nil
}

// flatten renders every koanf value as a string. Sources only deal in raw
// strings; conversion to the flag's kind happens at assignment time.
func flatten(all map[string]interface{}) map[string]string {
	out := make(map[string]string, len(all))
	for key, value := range all {
		out[key] = fmt.Sprintf("%v", value)
	}

	return out
}
