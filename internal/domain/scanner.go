package domain

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/autoload/internal/adapter"
	m "github.com/mouse-blink/autoload/internal/model"
)

// Scanner builds a class map from the declarations found under a set of
// source directories.
type Scanner interface {
	Scan(ctx context.Context, roots ...m.Path) (*m.ClassMap, error)
}

// ScannerOption configures a Scanner.
type ScannerOption func(*scanner)

// WithScanSyntax sets the identifier syntax and source extension.
func WithScanSyntax(syntax m.Syntax) ScannerOption {
	return func(s *scanner) {
		s.syntax = syntax
	}
}

// WithWorkers bounds how many files are read and parsed at once. Values
// below one mean runtime.NumCPU().
func WithWorkers(workers int) ScannerOption {
	return func(s *scanner) {
		s.workers = workers
	}
}

// WithScanLogger sets the logger used for skipped files and duplicates.
func WithScanLogger(logger *log.Logger) ScannerOption {
	return func(s *scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type scanner struct {
	fsAdapter adapter.SourceFSAdapter
	parser    adapter.DeclarationParser
	syntax    m.Syntax
	workers   int
	logger    *log.Logger
}

// scannedFile is the outcome of parsing one discovered file.
type scannedFile struct {
	path m.Path
	id   m.Identifier
	ok   bool
}

// NewScanner creates a Scanner that walks directories with fsAdapter and
// reads declarations with parser.
func NewScanner(fsAdapter adapter.SourceFSAdapter, parser adapter.DeclarationParser, opts ...ScannerOption) Scanner {
	s := &scanner{
		fsAdapter: fsAdapter,
		parser:    parser,
		syntax:    m.DefaultSyntax,
		logger:    log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.workers < 1 {
		s.workers = runtime.NumCPU()
	}

	return s
}

// Scan walks every root and maps each declared identifier to its file.
// Every root must exist; nothing is read when one of them is missing.
// When two files declare the same identifier the one discovered last wins.
func (s *scanner) Scan(ctx context.Context, roots ...m.Path) (*m.ClassMap, error) {
	canonicalRoots, err := s.normalizeRoots(roots)
	if err != nil {
		return nil, err
	}

	files, err := s.discoverFiles(ctx, canonicalRoots)
	if err != nil {
		return nil, err
	}

	scanned := make([]scannedFile, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			scanned[i] = s.parseFile(file)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := m.NewClassMap()

	for _, file := range scanned {
		if !file.ok {
			continue
		}

		if previous, exists := result.Get(file.id); exists {
			s.logger.Warn("duplicate declaration", "identifier", file.id, "kept", file.path, "dropped", previous)
		}

		result.Set(file.id, file.path)
	}

	s.logger.Debug("scan complete", "roots", len(canonicalRoots), "files", len(files), "identifiers", result.Len())

	return result, nil
}

func (s *scanner) normalizeRoots(roots []m.Path) ([]m.Path, error) {
	canonicalRoots := make([]m.Path, 0, len(roots))

	for _, root := range roots {
		canonical, err := s.fsAdapter.Normalize(root)
		if err != nil {
			return nil, fmt.Errorf("scan root: %w", err)
		}

		info, err := s.fsAdapter.FileInfo(canonical)
		if err != nil {
			return nil, fmt.Errorf("scan root: %w", err)
		}

		if !info.IsDir() {
			return nil, fmt.Errorf("scan root: %w: %s is not a directory", m.ErrNotFound, root)
		}

		canonicalRoots = append(canonicalRoots, canonical)
	}

	return canonicalRoots, nil
}

// discoverFiles lists candidate files in walk order. Roots are canonical and
// symlinks are never followed, so every discovered path is canonical too and
// overlapping roots are deduplicated by path.
func (s *scanner) discoverFiles(ctx context.Context, roots []m.Path) ([]m.Path, error) {
	seen := make(map[m.Path]struct{})

	var files []m.Path

	for _, root := range roots {
		err := s.fsAdapter.Walk(root, true, func(path string, info os.FileInfo, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if err != nil {
				if info != nil && info.IsDir() {
					s.logger.Warn("skipping unreadable directory", "path", path, "error", err)
				} else {
					s.logger.Warn("skipping unreadable file", "path", path, "error", err)
				}

				return nil
			}

			if !info.Mode().IsRegular() || !s.syntax.HasExtension(info.Name()) {
				return nil
			}

			file := m.Path(path)
			if _, exists := seen[file]; exists {
				return nil
			}

			seen[file] = struct{}{}
			files = append(files, file)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func (s *scanner) parseFile(path m.Path) scannedFile {
	content, err := s.fsAdapter.ReadFile(path)
	if err != nil {
		s.logger.Warn("skipping unreadable file", "path", path, "error", err)
		return scannedFile{path: path}
	}

	decl, ok := s.parser.Parse(content)
	if !ok {
		return scannedFile{path: path}
	}

	return scannedFile{
		path: path,
		id:   s.syntax.Join(decl.Namespace, decl.Name),
		ok:   true,
	}
}
