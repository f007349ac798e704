package domain

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/autoload/internal/adapter"
	m "github.com/mouse-blink/autoload/internal/model"
)

// LoadFunc brings a resolved file into the running program. It is the only
// side effect of Resolver.Load.
type LoadFunc func(id m.Identifier, path m.Path) error

// Option configures a Resolver.
type Option func(*resolverConfig)

type resolverConfig struct {
	syntax        m.Syntax
	logger        *log.Logger
	loadFn        LoadFunc
	scanner       Scanner
	store         adapter.MapStore
	authoritative bool
	strict        bool
	bootstrap     []bootstrapBinding
}

type bootstrapBinding struct {
	convention m.Convention
	prefix     string
	dir        m.Path
}

// WithSyntax sets the separators and source extension.
func WithSyntax(syntax m.Syntax) Option {
	return func(c *resolverConfig) {
		c.syntax = syntax
	}
}

// WithLogger sets the resolver logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *resolverConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLoadFunc sets the callback Load runs on a hit.
func WithLoadFunc(fn LoadFunc) Option {
	return func(c *resolverConfig) {
		c.loadFn = fn
	}
}

// WithScanner sets the scanner used by AddClassMapFromDir.
func WithScanner(scanner Scanner) Option {
	return func(c *resolverConfig) {
		c.scanner = scanner
	}
}

// WithMapStore sets the store used by AddClassMapFromFile.
func WithMapStore(store adapter.MapStore) Option {
	return func(c *resolverConfig) {
		c.store = store
	}
}

// WithAuthoritative makes the class map the only resolution source.
func WithAuthoritative(authoritative bool) Option {
	return func(c *resolverConfig) {
		c.authoritative = authoritative
	}
}

// WithStrict turns misses in Load into ErrUnresolved.
func WithStrict(strict bool) Option {
	return func(c *resolverConfig) {
		c.strict = strict
	}
}

// WithBinding registers a binding while the resolver is built, before any
// caller-supplied prefixes. Typical use is the loader's own namespace.
func WithBinding(convention m.Convention, prefix string, dir m.Path) Option {
	return func(c *resolverConfig) {
		c.bootstrap = append(c.bootstrap, bootstrapBinding{convention: convention, prefix: prefix, dir: dir})
	}
}

// Resolver maps identifiers to source files through a class map and two
// prefix tables.
//
// A Resolver has no internal locking. Configure it first, then query it from
// as many goroutines as needed; use GuardedResolver when mutations and
// queries must overlap.
type Resolver struct {
	fs            adapter.SourceFSAdapter
	syntax        m.Syntax
	logger        *log.Logger
	loadFn        LoadFunc
	scanner       Scanner
	store         adapter.MapStore
	classMap      *m.ClassMap
	legacy        *PrefixTable
	modern        *PrefixTable
	authoritative bool
	strict        bool
}

// NewResolver creates a resolver backed by fs.
func NewResolver(fs adapter.SourceFSAdapter, opts ...Option) (*Resolver, error) {
	cfg := resolverConfig{
		syntax: m.DefaultSyntax,
		logger: log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.scanner == nil {
		cfg.scanner = NewScanner(fs, adapter.NewLineDeclarationParser(),
			WithScanSyntax(cfg.syntax),
			WithScanLogger(cfg.logger),
		)
	}

	if cfg.store == nil {
		cfg.store = adapter.NewMapStore()
	}

	r := &Resolver{
		fs:            fs,
		syntax:        cfg.syntax,
		logger:        cfg.logger,
		loadFn:        cfg.loadFn,
		scanner:       cfg.scanner,
		store:         cfg.store,
		classMap:      m.NewClassMap(),
		legacy:        NewPrefixTable(fs, m.ConventionLegacy, cfg.syntax),
		modern:        NewPrefixTable(fs, m.ConventionModern, cfg.syntax),
		authoritative: cfg.authoritative,
		strict:        cfg.strict,
	}

	for _, b := range cfg.bootstrap {
		if err := r.AddPrefix(b.convention, b.prefix, b.dir, false); err != nil {
			return nil, fmt.Errorf("bootstrap binding: %w", err)
		}
	}

	return r, nil
}

// Resolve returns the file defining id. It never fails; a miss is reported
// by the boolean.
func (r *Resolver) Resolve(id m.Identifier) (m.Path, bool) {
	res := r.Explain(id)
	return res.Path, res.Found()
}

// Explain resolves id and reports which source produced the result.
func (r *Resolver) Explain(id m.Identifier) m.Resolution {
	miss := m.Resolution{Identifier: id, Source: m.SourceNone}

	if stored, ok := r.classMap.Get(id); ok {
		if path, ok := r.existingFile(stored); ok {
			return m.Resolution{Identifier: id, Path: path, Source: m.SourceOverride}
		}

		r.logger.Debug("stale class map entry", "identifier", id, "path", stored)

		return miss
	}

	if r.authoritative {
		return miss
	}

	if binding, ok := r.modern.LongestMatch(id); ok {
		remainder := strings.TrimPrefix(string(id), binding.Prefix)
		if path, ok := r.candidate(binding.Dir, remainder, r.syntax.Separator); ok {
			return m.Resolution{Identifier: id, Path: path, Source: m.SourceModern, Prefix: binding.Prefix}
		}
	}

	if binding, ok := r.legacy.LongestMatch(id); ok {
		separator := r.syntax.FlatSeparator
		if strings.Contains(string(id), r.syntax.Separator) {
			separator = r.syntax.Separator
		}

		if path, ok := r.candidate(binding.Dir, string(id), separator); ok {
			return m.Resolution{Identifier: id, Path: path, Source: m.SourceLegacy, Prefix: binding.Prefix}
		}
	}

	return miss
}

// Load resolves id and hands the file to the LoadFunc. A miss returns false
// and a nil error unless the resolver is strict.
func (r *Resolver) Load(id m.Identifier) (bool, error) {
	path, ok := r.Resolve(id)
	if !ok {
		if r.strict {
			return false, fmt.Errorf("%w: %s", m.ErrUnresolved, id)
		}

		return false, nil
	}

	if r.loadFn != nil {
		if err := r.loadFn(id, path); err != nil {
			return false, fmt.Errorf("load %s from %s: %w", id, path, err)
		}
	}

	r.logger.Debug("loaded", "identifier", id, "path", path)

	return true, nil
}

// Require resolves id and fails with ErrUnresolved on a miss, whatever the
// strict setting.
func (r *Resolver) Require(id m.Identifier) (m.Path, error) {
	path, ok := r.Resolve(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", m.ErrUnresolved, id)
	}

	return path, nil
}

// AddPrefix binds prefix to dir in the table of the given convention.
func (r *Resolver) AddPrefix(convention m.Convention, prefix string, dir m.Path, prepend bool) error {
	table, err := r.table(convention)
	if err != nil {
		return err
	}

	if err := table.Insert(prefix, dir, prepend); err != nil {
		return err
	}

	r.logger.Debug("prefix registered", "convention", convention, "prefix", prefix, "dir", dir, "prepend", prepend)

	return nil
}

// AddPsr0 appends a legacy binding.
func (r *Resolver) AddPsr0(prefix string, dir m.Path) error {
	return r.AddPrefix(m.ConventionLegacy, prefix, dir, false)
}

// AddPsr4 appends a modern binding. The prefix must end with the separator.
func (r *Resolver) AddPsr4(prefix string, dir m.Path) error {
	return r.AddPrefix(m.ConventionModern, prefix, dir, false)
}

// AddClassMap merges cm into the override map; entries of cm win over
// existing ones. Nothing is merged when an entry is unusable.
func (r *Resolver) AddClassMap(cm *m.ClassMap) error {
	for id, path := range cm.All() {
		if err := validateEntry(id, path); err != nil {
			return err
		}
	}

	r.classMap.Merge(cm)

	return nil
}

// AddClassMapFromFile loads a persisted class map and merges it.
func (r *Resolver) AddClassMapFromFile(ctx context.Context, url string) error {
	cm, err := r.store.Load(ctx, url)
	if err != nil {
		return err
	}

	if err := r.AddClassMap(cm); err != nil {
		return fmt.Errorf("class map %s: %w", url, err)
	}

	r.logger.Debug("class map loaded", "url", url, "entries", cm.Len())

	return nil
}

// AddClassMapFromDir scans dirs and merges the declarations found.
func (r *Resolver) AddClassMapFromDir(ctx context.Context, dirs ...m.Path) error {
	cm, err := r.scanner.Scan(ctx, dirs...)
	if err != nil {
		return err
	}

	return r.AddClassMap(cm)
}

// Prefixes returns the legacy prefixes in table order.
func (r *Resolver) Prefixes() []string {
	return r.legacy.Keys()
}

// PrefixesPsr4 returns the modern prefixes in table order.
func (r *Resolver) PrefixesPsr4() []string {
	return r.modern.Keys()
}

// Bindings returns a copy of the bindings of one convention in table order.
func (r *Resolver) Bindings(convention m.Convention) []m.PrefixBinding {
	table, err := r.table(convention)
	if err != nil {
		return nil
	}

	return table.Bindings()
}

// ClassMap returns a copy of the override map.
func (r *Resolver) ClassMap() *m.ClassMap {
	return r.classMap.Clone()
}

// SetAuthoritative toggles authoritative mode.
func (r *Resolver) SetAuthoritative(authoritative bool) {
	r.authoritative = authoritative
}

// IsAuthoritative reports whether the class map is the only resolution source.
func (r *Resolver) IsAuthoritative() bool {
	return r.authoritative
}

// SetStrict toggles strict mode.
func (r *Resolver) SetStrict(strict bool) {
	r.strict = strict
}

// IsStrict reports whether Load fails on a miss.
func (r *Resolver) IsStrict() bool {
	return r.strict
}

func (r *Resolver) table(convention m.Convention) (*PrefixTable, error) {
	switch convention {
	case m.ConventionLegacy:
		return r.legacy, nil
	case m.ConventionModern:
		return r.modern, nil
	default:
		return nil, fmt.Errorf("%w: unknown convention %q", m.ErrInvalidPrefix, convention)
	}
}

// candidate turns name into a relative file path under dir and returns its
// canonical form when it exists as a regular file.
func (r *Resolver) candidate(dir m.Path, name, separator string) (m.Path, bool) {
	if name == "" {
		return "", false
	}

	rel := strings.ReplaceAll(name, separator, string(filepath.Separator)) + r.syntax.Extension
	if !filepath.IsLocal(rel) {
		return "", false
	}

	return r.existingFile(r.fs.JoinPath(string(dir), rel))
}

func (r *Resolver) existingFile(path m.Path) (m.Path, bool) {
	canonical, err := r.fs.Normalize(path)
	if err != nil {
		return "", false
	}

	info, err := r.fs.FileInfo(canonical)
	if err != nil || info.IsDir() {
		return "", false
	}

	return canonical, true
}

func validateEntry(id m.Identifier, path m.Path) error {
	switch {
	case id == "":
		return fmt.Errorf("%w: empty identifier", m.ErrInvalidFormat)
	case path == "":
		return fmt.Errorf("%w: %s has an empty path", m.ErrInvalidFormat, id)
	case strings.ContainsRune(string(path), 0):
		return fmt.Errorf("%w: %s has a path containing NUL", m.ErrInvalidFormat, id)
	default:
		return nil
	}
}
