package config

import (
	"strings"

	"github.com/eugenenazirov/confload/internal/values"
)

// EnvSource resolves a schema against environment variables named
// [PREFIX_]SECTION_KEY in upper case.
//
// Required keys must be set and are stored verbatim. Optional keys fall back
// to their default when unset or empty; otherwise the raw value is coerced to
// the default's type with values.Cast.
type EnvSource struct {
	schema *Schema
	prefix string
	env    Environment
}

// EnvOption configures an EnvSource.
type EnvOption func(*EnvSource)

// WithEnvironment replaces the process environment as the variable provider.
func WithEnvironment(e Environment) EnvOption {
	return func(s *EnvSource) {
		if e != nil {
			s.env = e
		}
	}
}

// NewEnvSource creates a source for schema. prefix may be empty.
func NewEnvSource(schema *Schema, prefix string, opts ...EnvOption) *EnvSource {
	s := &EnvSource{
		schema: schema,
		prefix: prefix,
		env:    OSEnvironment{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the source.
func (s *EnvSource) Name() string { return "env" }

// Import resolves every schema section. The first invalid section or missing
// required variable aborts the import.
func (s *EnvSource) Import() (*Data, error) {
	data := NewData()
	for section, spec := range s.schema.Sections() {
		keys, ok := sectionKeys(spec)
		if !ok {
			return nil, &StructuralError{Section: section, Err: ErrInvalidSection}
		}

		resolved, err := s.resolve(section, keys)
		if err != nil {
			return nil, err
		}
		data.Set(section, resolved)
	}
	return data, nil
}

func (s *EnvSource) resolve(section string, keys []Key) (Section, error) {
	out := make(Section, len(keys))
	for _, key := range keys {
		name := EnvName(s.prefix, section, key.Name)
		raw, found := s.env.LookupEnv(name)

		switch {
		case key.Required && !found:
			return nil, &StructuralError{Variable: name, Err: ErrMissingVariable}
		case key.Required:
			out[key.Name] = raw
		case !found || raw == "":
			out[key.Name] = key.Default
		default:
			out[key.Name] = values.Cast(raw, key.Default)
		}
	}
	return out, nil
}

// EnvName derives the variable name for section/key, e.g. APP_DATABASE_HOST
// for prefix "app", section "database" and key "host".
func EnvName(prefix, section, key string) string {
	name := strings.ToUpper(section + "_" + key)
	if prefix == "" {
		return name
	}
	return strings.ToUpper(prefix) + "_" + name
}
