package usage

import (
	"io"

	"github.com/askiada/go-flagset/pkg/flagset/model"
)

// Renderer is an interface that defines the methods for rendering flag
// usage information.
type Renderer interface {
	// Render writes the usage of the given flags for a program.
	Render(w io.Writer, program string, flags []*model.FlagInfo) error
}
