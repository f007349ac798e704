package domain

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/autoload/internal/adapter"
	"github.com/mouse-blink/autoload/internal/controller"
	m "github.com/mouse-blink/autoload/internal/model"
)

// Workflow defines the use cases behind the command line.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	Resolve(ctx context.Context, args ResolveArgs) error
	List(ctx context.Context, args ListArgs) error
}

// ScanArgs holds the arguments of a scan.
type ScanArgs struct {
	Paths   []m.Path
	Output  string // class map URL; empty displays the map instead of saving it
	Syntax  m.Syntax
	Workers int
}

// ResolveArgs holds the arguments of a resolution run.
type ResolveArgs struct {
	Setup       Setup
	Identifiers []m.Identifier
}

// ListArgs holds the arguments of a listing.
type ListArgs struct {
	Setup Setup
}

// BindingSpec describes one prefix binding to register.
type BindingSpec struct {
	Prefix  string
	Dir     m.Path
	Prepend bool
}

// Setup describes how to build a resolver: its bindings, the class maps to
// merge and the flags to apply.
type Setup struct {
	Syntax        m.Syntax
	Legacy        []BindingSpec
	Modern        []BindingSpec
	ClassMaps     []string
	ScanDirs      []m.Path
	Authoritative bool
	Strict        bool
	Workers       int
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.MapStore
	parser    adapter.DeclarationParser
	ui        controller.UI
	logger    *log.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, store adapter.MapStore, ui controller.UI, logger *log.Logger) Workflow {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		parser:    adapter.NewLineDeclarationParser(),
		ui:        ui,
		logger:    logger,
	}
}

// Scan builds a class map from args.Paths and saves or displays it.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	syntax := syntaxOrDefault(args.Syntax)

	scanner := NewScanner(w.fsAdapter, w.parser,
		WithScanSyntax(syntax),
		WithWorkers(args.Workers),
		WithScanLogger(w.logger),
	)

	classMap, err := scanner.Scan(ctx, args.Paths...)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	if args.Output == "" {
		return w.ui.DisplayClassMap(classMap)
	}

	if err := w.store.Save(ctx, args.Output, classMap); err != nil {
		return fmt.Errorf("save class map: %w", err)
	}

	return w.ui.DisplaySaved(args.Output, classMap.Len())
}

// Resolve explains every identifier. In strict mode any miss fails the run
// once all results have been displayed.
func (w *workflow) Resolve(ctx context.Context, args ResolveArgs) error {
	resolver, err := NewResolverFromSetup(ctx, w.fsAdapter, w.store, w.logger, args.Setup)
	if err != nil {
		return err
	}

	resolutions := make([]m.Resolution, 0, len(args.Identifiers))

	var missing []string

	for _, id := range args.Identifiers {
		res := resolver.Explain(id)
		if !res.Found() {
			missing = append(missing, string(id))
		}

		resolutions = append(resolutions, res)
	}

	if err := w.ui.DisplayResolutions(resolutions); err != nil {
		return err
	}

	if resolver.IsStrict() && len(missing) > 0 {
		return fmt.Errorf("%w: %s", m.ErrUnresolved, strings.Join(missing, ", "))
	}

	return nil
}

// List displays the configured bindings and override map.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	resolver, err := NewResolverFromSetup(ctx, w.fsAdapter, w.store, w.logger, args.Setup)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayPrefixes(resolver.Bindings(m.ConventionLegacy), resolver.Bindings(m.ConventionModern)); err != nil {
		return err
	}

	return w.ui.DisplayClassMap(resolver.ClassMap())
}

// NewResolverFromSetup builds a resolver and applies setup to it. Class map
// files are merged before scanned directories, so scanned entries win.
func NewResolverFromSetup(ctx context.Context, fsAdapter adapter.SourceFSAdapter, store adapter.MapStore, logger *log.Logger, setup Setup) (*Resolver, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	syntax := syntaxOrDefault(setup.Syntax)

	resolver, err := NewResolver(fsAdapter,
		WithSyntax(syntax),
		WithLogger(logger),
		WithMapStore(store),
		WithAuthoritative(setup.Authoritative),
		WithStrict(setup.Strict),
		WithScanner(NewScanner(fsAdapter, adapter.NewLineDeclarationParser(),
			WithScanSyntax(syntax),
			WithWorkers(setup.Workers),
			WithScanLogger(logger),
		)),
	)
	if err != nil {
		return nil, err
	}

	for _, b := range setup.Legacy {
		if err := resolver.AddPrefix(m.ConventionLegacy, b.Prefix, b.Dir, b.Prepend); err != nil {
			return nil, err
		}
	}

	for _, b := range setup.Modern {
		if err := resolver.AddPrefix(m.ConventionModern, b.Prefix, b.Dir, b.Prepend); err != nil {
			return nil, err
		}
	}

	for _, url := range setup.ClassMaps {
		if err := resolver.AddClassMapFromFile(ctx, url); err != nil {
			return nil, err
		}
	}

	if len(setup.ScanDirs) > 0 {
		if err := resolver.AddClassMapFromDir(ctx, setup.ScanDirs...); err != nil {
			return nil, err
		}
	}

	return resolver, nil
}

func syntaxOrDefault(syntax m.Syntax) m.Syntax {
	if syntax == (m.Syntax{}) {
		return m.DefaultSyntax
	}

	return syntax
}
