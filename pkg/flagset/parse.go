package flagset

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-flagset/pkg/flagset/model"
	"github.com/askiada/go-flagset/pkg/flagset/sources"
)

// Parse assigns flag values from the configured sources and the given
// command line arguments, which must not include the program name.
//
// Three shapes are accepted: "-name value", "-name=value" and "--name" for
// boolean flags. A boolean flag given in either of the first two shapes
// with a single dash is rejected. After assignment, mandatory flags and
// flag relations are checked.
func (s *Set) Parse(ctx context.Context, args []string) error {
	err := s.parse(ctx, args)
	if err == nil {
		return nil
	}

	switch s.errorHandling {
	case ContinueOnError:
		return err
	case ExitOnError:
		fmt.Fprintf(s.output, "Error: %v\n", err)
		s.PrintDefaults()
		os.Exit(1)
	case PanicOnError:
		panic(err)
	}

	return err
}

func (s *Set) parse(ctx context.Context, args []string) error {
	if s.parsed {
		return ErrAlreadyParsed
	}
	s.parsed = true

	err := s.applySources(ctx)
	if err != nil {
		return err
	}

	for idx := 0; idx < len(args); idx++ {
		arg := args[idx]

		var name, raw string

		switch {
		case strings.HasPrefix(arg, "-") && strings.Contains(arg, "="):
			parts := strings.SplitN(arg, "=", 2)
			name, raw = parts[0], parts[1]
		case strings.HasPrefix(arg, "--"):
			name, raw = arg, "true"
		case strings.HasPrefix(arg, "-"):
			name = arg
			if idx+1 >= len(args) {
				return errors.Wrapf(ErrMissingValue, "flag %q", strings.TrimLeft(arg, "-"))
			}
			idx++
			raw = args[idx]
		default:
			return errors.Wrapf(ErrMalformedFlag, "%q", arg)
		}

		key := strings.TrimLeft(name, "-")

		flag, ok := s.flags[key]
		if !ok {
			return errors.Wrapf(ErrUnknownFlag, "%q", key)
		}

		isBool := flag.info().Kind == model.KindBool

		if isBool && !strings.HasPrefix(arg, "--") {
			hint := "-flag_name value"
			if strings.Contains(arg, "=") {
				hint = "-flag_name=value"
			}

			return errors.Wrapf(ErrBoolFormat, "not %q", hint)
		}

		if !isBool && strings.HasPrefix(arg, "--") && !strings.Contains(arg, "=") {
			return errors.Wrapf(ErrMissingValue, "flag %q", key)
		}

		err := flag.assign(raw, model.OriginCommandLine)
		if err != nil {
			return err
		}

		delete(s.unsatisfied, key)
	}

	// Report the first missing mandatory flag, in registration order.
	for _, name := range s.order {
		if _, ok := s.unsatisfied[name]; ok {
			return errors.Wrapf(ErrMandatoryFlag, "%q", name)
		}
	}

	return s.relations.validate(s)
}

func (s *Set) applySources(ctx context.Context) error {
	if len(s.srcs) == 0 {
		return nil
	}

	values, err := sources.Load(ctx, s.logger, s.srcs...)
	if err != nil {
		return errors.Wrap(err, "unable to load sources")
	}

	for key, val := range values {
		flag, ok := s.flags[key]
		if !ok {
			// config files may carry keys that are not flags
			continue
		}

		err := flag.assign(val.Raw, val.Origin)
		if err != nil {
			return err
		}

		delete(s.unsatisfied, key)
	}

	return nil
}
