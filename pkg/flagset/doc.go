// Package flagset provides typed command line flag parsing.
//
// Flags are declared against a Set with a name, a default value and a
// description, then Parse assigns values from the command line. Three
// argument shapes are accepted: "-name value", "-name=value" and, for
// boolean flags only, "--name". A description may carry a single-quoted
// word which becomes the argument placeholder shown in usage output.
//
// Values can also come from external sources such as environment variables
// or a YAML file. Sources are applied before the command line is read, so
// a flag resolves to its default, then the source values in order, then
// the command line. The origin of every value is tracked and can be
// inspected after parsing.
//
// Flags can declare relations between each other: a flag can require
// another one to be provided, or conflict with it. Relations are validated
// once all values are assigned, and the requires relation rejects cycles
// at declaration time.
package flagset
