package config

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Key is one schema entry. Required keys have no default and must be present
// in the backing source.
type Key struct {
	Name     string
	Default  any
	Required bool
}

// Required declares a key that must be provided by the source.
func Required(name string) Key {
	return Key{Name: name, Required: true}
}

// Optional declares a key whose default is used when the source lacks it.
// The default's type also selects how a raw value is coerced.
func Optional(name string, def any) Key {
	return Key{Name: name, Default: def}
}

// Schema lists the sections and keys a source should resolve, in order.
//
// A section spec may be a map[string]any or Section of defaults, a []Key, a
// []string of required keys, or a []any mixing required key names, Keys and
// single-entry maps of key to default. Any other spec is rejected when the
// schema is imported.
type Schema struct {
	names []string
	specs map[string]any
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{specs: make(map[string]any)}
}

// Add appends a section spec, replacing any previous spec for the section.
func (s *Schema) Add(section string, spec any) *Schema {
	if _, ok := s.specs[section]; !ok {
		s.names = append(s.names, section)
	}
	s.specs[section] = spec
	return s
}

// Sections iterates section specs in the order they were added.
func (s *Schema) Sections() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if s == nil {
			return
		}
		for _, name := range s.names {
			if !yield(name, s.specs[name]) {
				return
			}
		}
	}
}

// ParseSchema reads a schema from a YAML document. Mapping sections declare
// optional keys with defaults; sequence sections list required key names and
// may mix in "key: default" entries. Document order is kept.
func ParseSchema(doc []byte) (*Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	schema := NewSchema()
	if root.Kind == 0 || len(root.Content) == 0 {
		return schema, nil
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse schema: %w", ErrNotMapping)
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		name, node := top.Content[i].Value, top.Content[i+1]
		spec, err := schemaSpec(node)
		if err != nil {
			return nil, fmt.Errorf("parse schema section %q: %w", name, err)
		}
		schema.Add(name, spec)
	}
	return schema, nil
}

func schemaSpec(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return nodeKeys(node)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				items = append(items, item.Value)
			case yaml.MappingNode:
				keys, err := nodeKeys(item)
				if err != nil {
					return nil, err
				}
				for _, k := range keys {
					items = append(items, k)
				}
			default:
				var raw any
				if err := item.Decode(&raw); err != nil {
					return nil, err
				}
				items = append(items, raw)
			}
		}
		return items, nil
	}

	// Left as decoded so the import step reports the bad section.
	var raw any
	if err := node.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func nodeKeys(node *yaml.Node) ([]Key, error) {
	keys := make([]Key, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var def any
		if err := node.Content[i+1].Decode(&def); err != nil {
			return nil, err
		}
		keys = append(keys, Optional(node.Content[i].Value, def))
	}
	return keys, nil
}

// sectionKeys resolves a raw section spec into keys.
func sectionKeys(spec any) ([]Key, bool) {
	switch t := spec.(type) {
	case []Key:
		return t, true
	case []string:
		keys := make([]Key, len(t))
		for i, name := range t {
			keys[i] = Required(name)
		}
		return keys, true
	case Section:
		return defaultKeys(t), true
	case map[string]any:
		return defaultKeys(t), true
	case []any:
		keys := make([]Key, 0, len(t))
		for _, item := range t {
			switch it := item.(type) {
			case string:
				keys = append(keys, Required(it))
			case Key:
				keys = append(keys, it)
			case map[string]any:
				if len(it) != 1 {
					return nil, false
				}
				keys = append(keys, defaultKeys(it)...)
			default:
				return nil, false
			}
		}
		return keys, true
	}
	return nil, false
}

func defaultKeys(defaults map[string]any) []Key {
	names := slices.Sorted(maps.Keys(defaults))
	keys := make([]Key, len(names))
	for i, name := range names {
		keys[i] = Optional(name, defaults[name])
	}
	return keys
}
