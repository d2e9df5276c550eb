package config

import "fmt"

// SourceKind selects the source built by Open.
type SourceKind string

const (
	SourceEnv  SourceKind = "env"
	SourceFile SourceKind = "file"
	SourceNoop SourceKind = "noop"
)

// Kinds lists every supported source kind.
func Kinds() []SourceKind {
	return []SourceKind{SourceEnv, SourceFile, SourceNoop}
}

// Hints carries source specific input. Each source reads only its own
// fields: Schema, Prefix and Env for SourceEnv; Path and Format for
// SourceFile. SourceNoop ignores all of them.
type Hints struct {
	Schema *Schema
	Prefix string
	Env    Environment
	Path   string
	Format Format
}

// NewSource builds the source for kind.
func NewSource(kind SourceKind, hints Hints) (Source, error) {
	switch kind {
	case SourceEnv:
		return NewEnvSource(hints.Schema, hints.Prefix, WithEnvironment(hints.Env)), nil
	case SourceFile:
		return NewFileSource(hints.Path, WithFormat(hints.Format)), nil
	case SourceNoop:
		return NoopSource{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
}

// Open builds the source for kind and loads it.
func Open(kind SourceKind, hints Hints) (*Config, error) {
	src, err := NewSource(kind, hints)
	if err != nil {
		return nil, err
	}
	return Load(src)
}
