package adapter

import (
	"regexp"
)

var (
	declarationPattern = regexp.MustCompile(`(?m)^(abstract\s+class|interface|trait|class)\s+([^\s{]+)`)
	namespacePattern   = regexp.MustCompile(`(?m)^namespace\s+([^;\s]+)\s*;`)
)

// Declaration is what a source file says about itself.
type Declaration struct {
	Namespace string // empty when the file has no namespace header
	Kind      string // "class", "abstract class", "interface" or "trait"
	Name      string
}

// DeclarationParser extracts the declaration header of a source file. It
// exists so a full parser can replace the line-oriented one without touching
// the scanner.
type DeclarationParser interface {
	// Parse returns the first declaration found in src, or false when the
	// file declares nothing.
	Parse(src []byte) (Declaration, bool)
}

// LineDeclarationParser matches declaration and namespace headers anchored at
// the start of a line. Anything else in the file is ignored.
type LineDeclarationParser struct{}

// NewLineDeclarationParser constructs a LineDeclarationParser.
func NewLineDeclarationParser() *LineDeclarationParser {
	return &LineDeclarationParser{}
}

// Parse finds the first declaration header and the first namespace header.
func (p *LineDeclarationParser) Parse(src []byte) (Declaration, bool) {
	match := declarationPattern.FindSubmatch(src)
	if match == nil {
		return Declaration{}, false
	}

	decl := Declaration{
		Kind: normalizeKind(string(match[1])),
		Name: string(match[2]),
	}

	if ns := namespacePattern.FindSubmatch(src); ns != nil {
		decl.Namespace = string(ns[1])
	}

	return decl, true
}

func normalizeKind(kind string) string {
	if kind == "class" || kind == "interface" || kind == "trait" {
		return kind
	}

	return "abstract class"
}
