package domain

import (
	"fmt"
	"strings"

	"github.com/mouse-blink/autoload/internal/adapter"
	m "github.com/mouse-blink/autoload/internal/model"
)

// PrefixTable holds the namespace-prefix to directory bindings of one
// convention and answers longest-prefix queries.
//
// Prefixes are unique: inserting a prefix that is already bound replaces the
// old binding. Two matching bindings therefore never have the same length,
// and the binding held for a prefix is always the most recently registered
// one. Table order (prepend or append) only affects Keys.
type PrefixTable struct {
	fs         adapter.SourceFSAdapter
	convention m.Convention
	syntax     m.Syntax
	bindings   []m.PrefixBinding
}

// NewPrefixTable creates an empty table for the given convention.
func NewPrefixTable(fs adapter.SourceFSAdapter, convention m.Convention, syntax m.Syntax) *PrefixTable {
	return &PrefixTable{
		fs:         fs,
		convention: convention,
		syntax:     syntax,
	}
}

// Convention returns the convention the table was created for.
func (t *PrefixTable) Convention() m.Convention {
	return t.convention
}

// Insert binds prefix to the canonical form of dir. A failed insert leaves
// the table untouched.
func (t *PrefixTable) Insert(prefix string, dir m.Path, prepend bool) error {
	if err := t.validatePrefix(prefix); err != nil {
		return err
	}

	canonical, err := t.fs.Normalize(dir)
	if err != nil {
		return fmt.Errorf("prefix %q: %w", prefix, err)
	}

	info, err := t.fs.FileInfo(canonical)
	if err != nil {
		return fmt.Errorf("prefix %q: %w", prefix, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("prefix %q: %w: %s is not a directory", prefix, m.ErrNotFound, dir)
	}

	binding := m.PrefixBinding{Prefix: prefix, Dir: canonical}
	bindings := make([]m.PrefixBinding, 0, len(t.bindings)+1)

	if prepend {
		bindings = append(bindings, binding)
	}

	for _, existing := range t.bindings {
		if existing.Prefix != prefix {
			bindings = append(bindings, existing)
		}
	}

	if !prepend {
		bindings = append(bindings, binding)
	}

	t.bindings = bindings

	return nil
}

// LongestMatch returns the binding with the longest prefix that is a literal
// leading substring of id.
func (t *PrefixTable) LongestMatch(id m.Identifier) (m.PrefixBinding, bool) {
	best := -1

	for i, binding := range t.bindings {
		if !strings.HasPrefix(string(id), binding.Prefix) {
			continue
		}

		if best == -1 || len(binding.Prefix) > len(t.bindings[best].Prefix) {
			best = i
		}
	}

	if best == -1 {
		return m.PrefixBinding{}, false
	}

	return t.bindings[best], true
}

// Keys returns the registered prefixes in table order.
func (t *PrefixTable) Keys() []string {
	keys := make([]string, 0, len(t.bindings))
	for _, binding := range t.bindings {
		keys = append(keys, binding.Prefix)
	}

	return keys
}

// Bindings returns a copy of the bindings in table order.
func (t *PrefixTable) Bindings() []m.PrefixBinding {
	return append([]m.PrefixBinding(nil), t.bindings...)
}

// Len returns the number of bindings.
func (t *PrefixTable) Len() int {
	return len(t.bindings)
}

func (t *PrefixTable) validatePrefix(prefix string) error {
	if t.convention != m.ConventionModern {
		return nil
	}

	if prefix == "" || !strings.HasSuffix(prefix, t.syntax.Separator) {
		return fmt.Errorf("%w: %q must end with the namespace separator %q", m.ErrInvalidPrefix, prefix, t.syntax.Separator)
	}

	return nil
}
