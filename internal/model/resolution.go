package model

// ResolutionSource tells which lookup produced a resolution.
type ResolutionSource string

const (
	// SourceNone marks a miss.
	SourceNone ResolutionSource = "none"
	// SourceOverride marks a hit in the class map.
	SourceOverride ResolutionSource = "override"
	// SourceModern marks a hit through a modern prefix binding.
	SourceModern ResolutionSource = "modern"
	// SourceLegacy marks a hit through a legacy prefix binding.
	SourceLegacy ResolutionSource = "legacy"
)

// Resolution is the outcome of resolving one identifier.
type Resolution struct {
	Identifier Identifier
	Path       Path             // canonical file path, empty on a miss
	Source     ResolutionSource // where the path came from
	Prefix     string           // matched prefix for prefix-table hits
}

// Found reports whether the identifier was resolved to a file.
func (r Resolution) Found() bool {
	return r.Source != "" && r.Source != SourceNone
}
