package model

import "iter"

// ClassMap is an insertion-ordered mapping from identifiers to source files.
// It backs both the resolver's override table and the result of a scan.
//
// Setting an existing identifier replaces its path and keeps its position.
type ClassMap struct {
	keys  []Identifier
	paths map[Identifier]Path
}

// NewClassMap returns an empty ClassMap.
func NewClassMap() *ClassMap {
	return &ClassMap{paths: make(map[Identifier]Path)}
}

// ClassMapOf builds a ClassMap from identifier/path pairs, in argument order.
func ClassMapOf(pairs ...string) *ClassMap {
	cm := NewClassMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		cm.Set(Identifier(pairs[i]), Path(pairs[i+1]))
	}

	return cm
}

// Set stores path under id.
func (c *ClassMap) Set(id Identifier, path Path) {
	if c.paths == nil {
		c.paths = make(map[Identifier]Path)
	}

	if _, exists := c.paths[id]; !exists {
		c.keys = append(c.keys, id)
	}

	c.paths[id] = path
}

// Get returns the path stored under id.
func (c *ClassMap) Get(id Identifier) (Path, bool) {
	if c == nil {
		return "", false
	}

	path, ok := c.paths[id]

	return path, ok
}

// Has reports whether id is present.
func (c *ClassMap) Has(id Identifier) bool {
	_, ok := c.Get(id)
	return ok
}

// Len returns the number of entries.
func (c *ClassMap) Len() int {
	if c == nil {
		return 0
	}

	return len(c.keys)
}

// Keys returns the identifiers in insertion order.
func (c *ClassMap) Keys() []Identifier {
	if c == nil {
		return nil
	}

	return append([]Identifier(nil), c.keys...)
}

// All iterates over the entries in insertion order.
func (c *ClassMap) All() iter.Seq2[Identifier, Path] {
	return func(yield func(Identifier, Path) bool) {
		if c == nil {
			return
		}

		for _, id := range c.keys {
			if !yield(id, c.paths[id]) {
				return
			}
		}
	}
}

// Merge copies every entry of other into c, in other's order. Entries of
// other overwrite entries of c with the same identifier.
func (c *ClassMap) Merge(other *ClassMap) {
	for id, path := range other.All() {
		c.Set(id, path)
	}
}

// Clone returns an independent copy of c.
func (c *ClassMap) Clone() *ClassMap {
	clone := NewClassMap()
	clone.Merge(c)

	return clone
}

// Equal reports whether both maps hold the same entries in the same order.
func (c *ClassMap) Equal(other *ClassMap) bool {
	if c.Len() != other.Len() {
		return false
	}

	for i, id := range c.Keys() {
		if other.keys[i] != id || other.paths[id] != c.paths[id] {
			return false
		}
	}

	return true
}
