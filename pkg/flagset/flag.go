package flagset

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1"

	"github.com/askiada/go-flagset/pkg/flagset/model"
)

// value is the kind-erased view of a flag held by a Set.
type value interface {
	info() *model.FlagInfo
	assign(raw string, origin model.Origin) error
}

// Flag is a typed flag registered on a Set.
type Flag[T any] struct {
	details *model.FlagInfo
	def     T
	current T
	convert func(string) (T, error)
	render  func(T) string
}

// Value returns the current value of the flag.
func (f *Flag[T]) Value() T {
	return f.current
}

// Default returns the default value of the flag.
func (f *Flag[T]) Default() T {
	return f.def
}

// IsDefault reports whether the flag currently holds its default value,
// including when that value was provided explicitly.
func (f *Flag[T]) IsDefault() bool {
	return f.render(f.current) == f.render(f.def)
}

// Provided reports whether the flag was given a value by the command line
// or a source.
func (f *Flag[T]) Provided() bool {
	return f.details.Provided
}

// Info returns the metadata of the flag.
func (f *Flag[T]) Info() *model.FlagInfo {
	return f.details
}

func (f *Flag[T]) String() string {
	return f.render(f.current)
}

func (f *Flag[T]) info() *model.FlagInfo {
	return f.details
}

func (f *Flag[T]) assign(raw string, origin model.Origin) error {
	converted, err := f.convert(raw)
	if err != nil {
		return errors.Wrapf(ErrBadValue, "%q for flag %q (expected type: %s)", raw, f.details.Name, f.details.Kind)
	}

	f.current = converted
	f.details.Provided = true
	f.details.Origin = origin

	return nil
}

// String registers a string flag and returns it.
func String(s *Set, name, defaultValue, desc string, opts ...FlagOption) (*Flag[string], error) {
	return add(s, name, defaultValue, model.KindString, desc, convertString, renderString, opts...)
}

// Int registers an int flag and returns it.
func Int(s *Set, name string, defaultValue int, desc string, opts ...FlagOption) (*Flag[int], error) {
	return add(s, name, defaultValue, model.KindInt, desc, convertInt, renderInt, opts...)
}

// Float64 registers a float64 flag and returns it.
func Float64(s *Set, name string, defaultValue float64, desc string, opts ...FlagOption) (*Flag[float64], error) {
	return add(s, name, defaultValue, model.KindFloat64, desc, convertFloat64, renderFloat64, opts...)
}

// Bool registers a boolean flag and returns it. Boolean flags always
// default to false and cannot be mandatory.
func Bool(s *Set, name, desc string) (*Flag[bool], error) {
	return add(s, name, false, model.KindBool, desc, convertBool, renderBool)
}

// Duration registers a time.Duration flag and returns it.
func Duration(s *Set, name string, defaultValue time.Duration, desc string, opts ...FlagOption) (*Flag[time.Duration], error) {
	return add(s, name, defaultValue, model.KindDuration, desc, convertDuration, renderDuration, opts...)
}

// UUID registers a uuid.UUID flag and returns it.
func UUID(s *Set, name string, defaultValue uuid.UUID, desc string, opts ...FlagOption) (*Flag[uuid.UUID], error) {
	return add(s, name, defaultValue, model.KindUUID, desc, convertUUID, renderUUID, opts...)
}

// Color registers a colour flag and returns it. The default is given in
// any notation accepted by colors.Parse; an empty default means no colour.
func Color(s *Set, name, defaultValue, desc string, opts ...FlagOption) (*Flag[colors.Color], error) {
	var def colors.Color
	if defaultValue != "" {
		parsed, err := colors.Parse(defaultValue)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse default colour %q for flag %q", defaultValue, name)
		}
		def = parsed
	}

	return add(s, name, def, model.KindColor, desc, convertColor, renderColor, opts...)
}

func add[T any](s *Set, name string, defaultValue T, kind model.Kind, desc string, convert func(string) (T, error), render func(T) string, opts ...FlagOption) (*Flag[T], error) {
	if s == nil {
		return nil, ErrSetMustBeSet
	}
	if s.parsed {
		return nil, errors.Wrapf(ErrAlreadyParsed, "unable to register flag %q", name)
	}

	settings := flagSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	if kind == model.KindBool && settings.mandatory {
		return nil, errors.Wrapf(ErrBoolMandatory, "flag %q", name)
	}

	argName, cleanDesc, err := extractArgName(desc)
	if err != nil {
		return nil, err
	}

	flag := &Flag[T]{
		details: &model.FlagInfo{
			Name:      name,
			ArgName:   argName,
			Desc:      cleanDesc,
			Kind:      kind,
			Default:   render(defaultValue),
			Mandatory: settings.mandatory,
			Origin:    model.OriginDefault,
		},
		def:     defaultValue,
		current: defaultValue,
		convert: convert,
		render:  render,
	}

	err = s.register(flag)
	if err != nil {
		return nil, err
	}

	return flag, nil
}

var argNameRegexp = regexp.MustCompile(`'(.*?)'`)

// extractArgName pulls the single-quoted argument name out of a flag
// description. More than one quoted word is a conflict.
func extractArgName(desc string) (string, string, error) {
	matches := argNameRegexp.FindAllStringSubmatch(desc, -1)
	if len(matches) == 0 {
		return "", desc, nil
	}

	if len(matches) > 1 {
		candidates := make([]string, 0, len(matches))
		for _, match := range matches {
			candidates = append(candidates, match[1])
		}

		return "", "", errors.Wrapf(ErrArgNameConflict, "in %q, between: %s", desc, strings.Join(candidates, ", "))
	}

	return matches[0][1], strings.ReplaceAll(desc, "'", ""), nil
}
