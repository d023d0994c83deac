package attributes

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ionform/pkg/model"
)

// Store holds the attributes declared by overlay documents, keyed by type
// name and field name. It is read-only once loaded.
type Store struct {
	types map[string]map[string]model.Attribute
}

// LoadFS walks fsys and parses every .json, .yaml and .yml file as an overlay
// document. A nil fsys yields an empty store. Declaring the same type field
// in two files is an error.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverlayFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("attributes: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		return store.add(doc, path)
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Parse reads a single overlay document. source names the document in error
// messages.
func Parse(data []byte, source string) (*Store, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	store := newStore()
	if err := store.add(doc, source); err != nil {
		return nil, err
	}
	return store, nil
}

// Attribute implements builder.AttributeSource. The target type is looked up
// by its bare name first, then by its package qualified name.
func (s *Store) Attribute(target reflect.Type, field reflect.StructField) (model.Attribute, bool) {
	if s == nil || target == nil {
		return model.Attribute{}, false
	}
	for _, name := range []string{target.Name(), target.String()} {
		if attr, ok := s.Lookup(name, field.Name); ok {
			return attr, true
		}
	}
	return model.Attribute{}, false
}

// Lookup returns the attribute declared for typeName.fieldName.
func (s *Store) Lookup(typeName, fieldName string) (model.Attribute, bool) {
	if s == nil || typeName == "" {
		return model.Attribute{}, false
	}
	attr, ok := s.types[typeName][fieldName]
	if !ok {
		return model.Attribute{}, false
	}
	attr.Relations = append([]string{}, attr.Relations...)
	return attr, true
}

// Types lists the declared type names in sorted order.
func (s *Store) Types() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.types))
	for name := range s.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store declares anything.
func (s *Store) Empty() bool {
	return s == nil || len(s.types) == 0
}

type documentFile struct {
	Types map[string]map[string]model.Attribute `json:"types" yaml:"types"`
}

func newStore() *Store {
	return &Store{types: make(map[string]map[string]model.Attribute)}
}

func (s *Store) add(doc documentFile, source string) error {
	for rawType, fields := range doc.Types {
		typeName := strings.TrimSpace(rawType)
		if typeName == "" {
			return fmt.Errorf("attributes: file %s declares an empty type name", source)
		}
		declared, ok := s.types[typeName]
		if !ok {
			declared = make(map[string]model.Attribute, len(fields))
			s.types[typeName] = declared
		}
		for rawField, attr := range fields {
			fieldName := strings.TrimSpace(rawField)
			if fieldName == "" {
				return fmt.Errorf("attributes: file %s type %q declares an empty field name", source, typeName)
			}
			if _, exists := declared[fieldName]; exists {
				return fmt.Errorf("attributes: duplicate field %s.%s (file %s)", typeName, fieldName, source)
			}
			declared[fieldName] = normaliseAttribute(attr)
		}
	}
	return nil
}

func normaliseAttribute(attr model.Attribute) model.Attribute {
	if v, ok := attr.Label.Get(); ok {
		attr.Label = model.Some(sanitizeText(v))
	}
	if v, ok := attr.Description.Get(); ok {
		attr.Description = model.Some(sanitizeText(v))
	}
	if v, ok := attr.Placeholder.Get(); ok {
		attr.Placeholder = model.Some(sanitizeText(v))
	}

	relations := make([]string, 0, len(attr.Relations))
	for _, rel := range attr.Relations {
		if rel = strings.TrimSpace(rel); rel != "" {
			relations = append(relations, rel)
		}
	}
	attr.Relations = relations
	return attr
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("attributes: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("attributes: parse %s: %w", source, err)
	}
	return doc, nil
}

func isOverlayFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
