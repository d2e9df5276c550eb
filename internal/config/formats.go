package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type decodeFunc func(path string, raw []byte) (*Data, error)

var decoders = map[Format]decodeFunc{
	FormatYAML: decodeYAML,
	FormatJSON: decodeJSON,
	FormatTOML: decodeTOML,
	FormatCUE:  decodeCUE,
}

// decodeYAML keeps the document order of sections.
func decodeYAML(path string, raw []byte) (*Data, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, &StructuralError{Path: path, Err: fmt.Errorf("parse: %w", err)}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, &StructuralError{Path: path, Err: ErrNotMapping}
	}

	top := root.Content[0]
	data := NewData()
	for i := 0; i+1 < len(top.Content); i += 2 {
		name, node := top.Content[i].Value, top.Content[i+1]
		for node.Kind == yaml.AliasNode && node.Alias != nil {
			node = node.Alias
		}
		if node.Kind != yaml.MappingNode {
			return nil, &StructuralError{Section: name, Path: path, Err: ErrInvalidSection}
		}
		var section map[string]any
		if err := node.Decode(&section); err != nil {
			return nil, &StructuralError{Section: name, Path: path, Err: err}
		}
		data.Set(name, normalizeSection(section))
	}
	return data, nil
}

// decodeJSON streams the top-level object so section order is kept.
func decodeJSON(path string, raw []byte) (*Data, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, &StructuralError{Path: path, Err: ErrNotMapping}
	}

	data := NewData()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &StructuralError{Path: path, Err: fmt.Errorf("parse: %w", err)}
		}
		name, _ := tok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, &StructuralError{Section: name, Path: path, Err: fmt.Errorf("parse: %w", err)}
		}
		section, ok := value.(map[string]any)
		if !ok {
			return nil, &StructuralError{Section: name, Path: path, Err: ErrInvalidSection}
		}
		data.Set(name, normalizeSection(section))
	}
	if _, err := dec.Token(); err != nil {
		return nil, &StructuralError{Path: path, Err: fmt.Errorf("parse: %w", err)}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &StructuralError{Path: path, Err: errors.New("parse: trailing data after object")}
	}
	return data, nil
}

// decodeTOML loads TOML tables as sections. TOML maps carry no order, so
// sections are stored sorted by name.
func decodeTOML(path string, raw []byte) (*Data, error) {
	var doc map[string]any
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, &StructuralError{Path: path, Err: fmt.Errorf("parse: %w", err)}
	}

	data := NewData()
	for _, name := range slices.Sorted(maps.Keys(doc)) {
		section, ok := doc[name].(map[string]any)
		if !ok {
			return nil, &StructuralError{Section: name, Path: path, Err: ErrInvalidSection}
		}
		data.Set(name, normalizeSection(section))
	}
	return data, nil
}

// decodeCUE evaluates a CUE file. The result must be fully concrete.
func decodeCUE(path string, raw []byte) (*Data, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(raw, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, &StructuralError{Path: path, Err: fmt.Errorf("evaluate: %w", err)}
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, &StructuralError{Path: path, Err: fmt.Errorf("evaluate: %w", err)}
	}
	if value.Kind() != cue.StructKind {
		return nil, &StructuralError{Path: path, Err: ErrNotMapping}
	}

	fields, err := value.Fields()
	if err != nil {
		return nil, &StructuralError{Path: path, Err: err}
	}
	data := NewData()
	for fields.Next() {
		name := fields.Selector().Unquoted()
		field := fields.Value()
		if field.Kind() != cue.StructKind {
			return nil, &StructuralError{Section: name, Path: path, Err: ErrInvalidSection}
		}
		var section map[string]any
		if err := field.Decode(&section); err != nil {
			return nil, &StructuralError{Section: name, Path: path, Err: err}
		}
		data.Set(name, normalizeSection(section))
	}
	return data, nil
}

func normalizeSection(section map[string]any) Section {
	out := make(Section, len(section))
	for k, v := range section {
		out[k] = normalize(v)
	}
	return out
}

// normalize converts decoder specific integer types to int so every format
// reads alike.
func normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return normalize(n)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case int64:
		if t >= math.MinInt && t <= math.MaxInt {
			return int(t)
		}
		return t
	case uint64:
		if t <= math.MaxInt {
			return int(t)
		}
		return t
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	}
	return v
}
