package model

// Kind identifies the value type a flag accepts.
type Kind string

const (
	KindString   Kind = "string"
	KindInt      Kind = "int"
	KindFloat64  Kind = "float64"
	KindBool     Kind = "bool"
	KindDuration Kind = "duration"
	KindUUID     Kind = "uuid"
	KindColor    Kind = "color"
)

// Origin identifies where the current value of a flag was resolved from.
type Origin string

const (
	OriginDefault     Origin = "default"
	OriginFile        Origin = "file"
	OriginEnv         Origin = "env"
	OriginCommandLine Origin = "command line"
)

// FlagInfo holds the metadata of a registered flag.
type FlagInfo struct {
	// Name is the flag name without any leading dashes.
	Name string
	// ArgName is the argument placeholder shown in usage output. It is
	// extracted from the single-quoted word of the description, if any.
	ArgName string
	// Desc is the flag description with argument quotes stripped.
	Desc string
	Kind Kind
	// Default is the rendered default value.
	Default   string
	Mandatory bool
	// Provided reports whether a value was supplied by the command line
	// or a source during parsing.
	Provided bool
	Origin   Origin
}
