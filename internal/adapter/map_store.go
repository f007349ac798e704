package adapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/autoload/internal/model"
)

const (
	generatedHeader = "Code generated by autoload scan. DO NOT EDIT."
	binaryTag       = "!!binary"
)

// MapStore renders, parses and persists class maps.
type MapStore interface {
	Render(classMap *m.ClassMap) ([]byte, error)
	Parse(data []byte) (*m.ClassMap, error)
	Load(ctx context.Context, url string) (*m.ClassMap, error)
	Save(ctx context.Context, url string, classMap *m.ClassMap) error
}

// LocalMapStore stores class maps as YAML documents through an afs service,
// so any URL afs understands (local paths, file://, mem://) can be used.
type LocalMapStore struct {
	fs afs.Service
}

// NewMapStore constructs a MapStore backed by afs.New().
func NewMapStore() *LocalMapStore {
	return &LocalMapStore{fs: afs.New()}
}

// NewMapStoreWithService constructs a MapStore backed by the given afs service.
func NewMapStoreWithService(fs afs.Service) *LocalMapStore {
	return &LocalMapStore{fs: fs}
}

// Render encodes the class map as one double-quoted YAML pair per entry, in
// the map's iteration order.
func (s *LocalMapStore) Render(classMap *m.ClassMap) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for id, path := range classMap.All() {
		root.Content = append(root.Content, stringNode(string(id)), stringNode(string(path)))
	}

	doc := &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: generatedHeader,
		Content:     []*yaml.Node{root},
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode class map: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode class map: %w", err)
	}

	return buf.Bytes(), nil
}

// Parse decodes a YAML class map. Every key and value must be a string.
// When a key repeats, the last value wins.
func (s *LocalMapStore) Parse(data []byte) (*m.ClassMap, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", m.ErrInvalidFormat, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", m.ErrInvalidFormat)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping", m.ErrInvalidFormat, root.Line)
	}

	classMap := m.NewClassMap()

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		key, ok := scalarValue(keyNode)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: key is not a string", m.ErrInvalidFormat, keyNode.Line)
		}

		value, ok := scalarValue(valueNode)
		if !ok {
			return nil, fmt.Errorf("%w: line %d: value of %q is not a string", m.ErrInvalidFormat, valueNode.Line, key)
		}

		classMap.Set(m.Identifier(key), m.Path(value))
	}

	return classMap, nil
}

// Load reads and parses the class map stored at url.
func (s *LocalMapStore) Load(ctx context.Context, url string) (*m.ClassMap, error) {
	location, err := storageURL(url)
	if err != nil {
		return nil, err
	}

	exists, err := s.service().Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to check class map %s: %w", url, err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: class map %s", m.ErrNotFound, url)
	}

	data, err := s.service().DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read class map %s: %w", url, err)
	}

	classMap, err := s.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}

	return classMap, nil
}

// Save renders the class map and writes it to url, creating parent
// directories as needed.
func (s *LocalMapStore) Save(ctx context.Context, url string, classMap *m.ClassMap) error {
	location, err := storageURL(url)
	if err != nil {
		return err
	}

	data, err := s.Render(classMap)
	if err != nil {
		return err
	}

	if err := s.service().Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write class map %s: %w", url, err)
	}

	return nil
}

func (s *LocalMapStore) service() afs.Service {
	if s.fs == nil {
		s.fs = afs.New()
	}

	return s.fs
}

// storageURL turns plain local paths into absolute ones so afs does not
// depend on its own working-directory handling.
func storageURL(url string) (string, error) {
	if strings.Contains(url, "://") {
		return url, nil
	}

	expanded, err := expandHome(url)
	if err != nil {
		return "", err
	}

	return filepath.Abs(expanded)
}

// stringNode quotes value, or stores it base64 encoded under !!binary when
// it is not valid UTF-8.
func stringNode(value string) *yaml.Node {
	if !utf8.ValidString(value) {
		return &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   binaryTag,
			Value: base64.StdEncoding.EncodeToString([]byte(value)),
		}
	}

	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.DoubleQuotedStyle,
		Value: value,
	}
}

// scalarValue returns the string held by a !!str or !!binary scalar.
func scalarValue(node *yaml.Node) (string, bool) {
	if node.Kind != yaml.ScalarNode {
		return "", false
	}

	switch node.ShortTag() {
	case "!!str":
		return node.Value, true
	case binaryTag:
		decoded, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(node.Value), ""))
		if err != nil {
			return "", false
		}

		return string(decoded), true
	default:
		return "", false
	}
}
