// Package model defines the data structures shared by the resolver, the
// declaration scanner and the class map store.
package model

import "strings"

// Path represents a file system path.
type Path string

// Identifier is a fully-qualified, case-sensitive symbol name such as
// `MyApp\Model\User` or `Foo_Bar`.
type Identifier string

// Convention selects how a prefix binding turns an identifier into a path.
type Convention string

const (
	// ConventionLegacy uses the whole identifier as the relative path; the
	// matched prefix only selects the directory root.
	ConventionLegacy Convention = "legacy"

	// ConventionModern strips the matched prefix and uses the remainder as
	// the relative path under the bound directory.
	ConventionModern Convention = "modern"
)

// Syntax describes how identifiers and source files are spelled.
type Syntax struct {
	// Separator is the hierarchical namespace separator.
	Separator string
	// FlatSeparator is the legacy separator used when an identifier has no
	// hierarchical separator at all.
	FlatSeparator string
	// Extension is the source file extension, including the leading dot.
	Extension string
}

// DefaultSyntax matches PHP-style sources: `Vendor\Package\Class` in `.php` files.
var DefaultSyntax = Syntax{
	Separator:     `\`,
	FlatSeparator: "_",
	Extension:     ".php",
}

// HasExtension reports whether name ends with the source extension,
// ignoring case.
func (s Syntax) HasExtension(name string) bool {
	ext := s.Extension
	if ext == "" || len(name) < len(ext) {
		return false
	}

	return strings.EqualFold(name[len(name)-len(ext):], ext)
}

// Join builds the identifier declared by a file from its namespace and type name.
func (s Syntax) Join(namespace, name string) Identifier {
	if namespace == "" {
		return Identifier(name)
	}

	return Identifier(namespace + s.Separator + name)
}

// PrefixBinding associates a namespace prefix with a base directory.
type PrefixBinding struct {
	Prefix string
	Dir    Path
}
