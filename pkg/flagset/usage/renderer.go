// Package usage renders help output for flag sets, either as plain text or
// as a DOT graph of the declared flag relations.
package usage

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/askiada/go-flagset/pkg/flagset/model"
)

// Text is the default usage renderer. Boolean flags are shown in their
// --name form, every other flag as -name followed by its argument name.
type Text struct{}

// NewText creates a new text renderer.
func NewText() *Text {
	return &Text{}
}

func (t *Text) Render(w io.Writer, program string, flags []*model.FlagInfo) error {
	_, err := fmt.Fprintf(w, "Usage of %s:\n", program)
	if err != nil {
		return errors.Wrap(err, "unable to write usage header")
	}

	for _, flag := range flags {
		err := renderFlag(w, flag)
		if err != nil {
			return errors.Wrapf(err, "unable to write usage of flag %q", flag.Name)
		}
	}

	return nil
}

func renderFlag(w io.Writer, flag *model.FlagInfo) error {
	var err error

	switch {
	case flag.Kind == model.KindBool:
		_, err = fmt.Fprintf(w, "--%s\n", flag.Name)
	case flag.ArgName != "":
		_, err = fmt.Fprintf(w, "-%s %s\n", flag.Name, flag.ArgName)
	default:
		_, err = fmt.Fprintf(w, "-%s\n", flag.Name)
	}
	if err != nil {
		return err
	}

	suffix := ""
	if flag.Mandatory {
		suffix = " (mandatory)"
	}

	_, err = fmt.Fprintf(w, "    %s%s\n", flag.Desc, suffix)

	return err
}

var _ Renderer = (*Text)(nil)
