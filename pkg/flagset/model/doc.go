// Package model provides the data structures shared by the flagset package
// and its subpackages. It defines the metadata attached to every flag and
// the origins a flag value can be resolved from.
package model
