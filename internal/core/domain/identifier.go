package domain

import "regexp"

var identifierRegex = regexp.MustCompile("^[0-9A-F]{8,32}$")

// Identifier is the hex token that keys a record in the manifest.
type Identifier string

// String returns the identifier as a string.
func (id Identifier) String() string {
	return string(id)
}

// Valid reports whether the identifier is an upper-case hex token of plausible length.
func (id Identifier) Valid() bool {
	return identifierRegex.MatchString(string(id))
}
