package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Format names a config file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatCUE  Format = "cue"
)

var extensionFormats = map[string]Format{
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
	".toml": FormatTOML,
	".cue":  FormatCUE,
}

// DetectFormat infers the format from the file extension.
func DetectFormat(path string) (Format, bool) {
	f, ok := extensionFormats[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// FileSource loads a declarative config file whose top level maps section
// names to mappings of keys and values.
//
// CUE files are evaluated, so the path must never be user controlled.
type FileSource struct {
	path   string
	format Format
}

// FileOption configures a FileSource.
type FileOption func(*FileSource)

// WithFormat forces a format instead of detecting it from the extension.
func WithFormat(f Format) FileOption {
	return func(s *FileSource) {
		s.format = f
	}
}

// NewFileSource creates a source reading path.
func NewFileSource(path string, opts ...FileOption) *FileSource {
	s := &FileSource{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the source.
func (s *FileSource) Name() string { return "file" }

// Import reads and decodes the file.
func (s *FileSource) Import() (*Data, error) {
	if s.path == "" {
		return nil, &StructuralError{Err: ErrFileRequired}
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileError{Path: s.path, Reason: "config file not found", Err: err}
		}
		return nil, &FileError{Path: s.path, Reason: "config file not readable", Err: err}
	}

	format := s.format
	if format == "" {
		detected, ok := DetectFormat(s.path)
		if !ok {
			return nil, &StructuralError{Path: s.path, Err: ErrUnknownFormat}
		}
		format = detected
	}
	decode, ok := decoders[format]
	if !ok {
		return nil, &StructuralError{Path: s.path, Err: ErrUnknownFormat}
	}

	return decode(s.path, raw)
}
