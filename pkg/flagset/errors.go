package flagset

import (
	"github.com/pkg/errors"
)

var (
	ErrSetMustBeSet    = errors.New("set must be set")
	ErrAlreadyParsed   = errors.New("set already parsed")
	ErrAlreadyDefined  = errors.New("flag already registered")
	ErrUnknownFlag     = errors.New("unknown flag")
	ErrMalformedFlag   = errors.New("invalid flag format")
	ErrMissingValue    = errors.New("flag needs a value")
	ErrBoolFormat      = errors.New(`boolean flags have to be specified as "--flag_name"`)
	ErrMandatoryFlag   = errors.New("mandatory flag not provided")
	ErrBadValue        = errors.New("cannot convert value")
	ErrArgNameConflict = errors.New("argument names conflict")
	ErrBoolMandatory   = errors.New("boolean flags cannot be mandatory")
	ErrRequiresCycle   = errors.New("requires relation creates a cycle")
	ErrFlagRequired    = errors.New("required flag not provided")
	ErrFlagConflict    = errors.New("conflicting flags provided")
)
