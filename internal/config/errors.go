package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSection is returned when a schema or file section is not a mapping.
	ErrInvalidSection = errors.New("section must be a mapping")
	// ErrMissingVariable is returned when a required environment variable is unset.
	ErrMissingVariable = errors.New("missing required environment variable")
	// ErrNotMapping is returned when a config file does not contain a mapping.
	ErrNotMapping = errors.New("config file must contain a mapping")
	// ErrFileRequired is returned by the file source when no path was given.
	ErrFileRequired = errors.New("file parameter required")
	// ErrUnknownFormat is returned when the file format cannot be determined.
	ErrUnknownFormat = errors.New("unknown config file format")
	// ErrUnknownSource is returned by Open for an unsupported SourceKind.
	ErrUnknownSource = errors.New("unknown config source")
)

// StructuralError describes configuration data or schema with the wrong shape.
// Only the fields relevant to the failure are set.
type StructuralError struct {
	Section  string
	Path     string
	Variable string
	Err      error
}

func (e *StructuralError) Error() string {
	switch {
	case e.Variable != "":
		return fmt.Sprintf("%v: %s", e.Err, e.Variable)
	case e.Section != "" && e.Path != "":
		return fmt.Sprintf("section '%s' in %s: %v", e.Section, e.Path, e.Err)
	case e.Section != "":
		return fmt.Sprintf("section '%s': %v", e.Section, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%v: %s", e.Err, e.Path)
	}
	return e.Err.Error()
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// FileError reports a config file that does not exist or cannot be read.
type FileError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FileError) Error() string {
	if e.Reason == "" {
		return "file operation failed: " + e.Path
	}
	return e.Reason + ": " + e.Path
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ContractError is raised (as a panic value) when a Source reports success
// without producing data. It signals a programming defect in the source.
type ContractError struct {
	Source string
}

func (e *ContractError) Error() string {
	var b strings.Builder
	b.WriteString("config source ")
	if e.Source != "" {
		b.WriteString(e.Source + " ")
	}
	b.WriteString("returned no data without an error")
	return b.String()
}
