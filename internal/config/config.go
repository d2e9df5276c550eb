package config

import (
	"iter"
	"maps"
)

// Configuration is the read-only view shared by every source.
type Configuration interface {
	// Get returns the value stored under section/key or def when absent.
	Get(section, key string, def any) any
	// Section returns a copy of a whole section or def when absent.
	Section(section string, def Section) Section
	HasSection(section string) bool
	Has(section, key string) bool
	// All returns a copy of every section.
	All() map[string]Section
	// Sections iterates sections in load order.
	Sections() iter.Seq2[string, Section]
	Len() int
}

// Source populates a configuration store. Import is called exactly once by
// Load.
type Source interface {
	Name() string
	Import() (*Data, error)
}

// Config is a configuration loaded from a Source. It is immutable and safe
// for concurrent reads.
type Config struct {
	source string
	data   *Data
}

var _ Configuration = (*Config)(nil)

// Load imports src and returns the resulting configuration. Import errors are
// returned unchanged. A source that returns nil data without an error breaks
// its contract and Load panics with a *ContractError.
func Load(src Source) (*Config, error) {
	data, err := src.Import()
	if err != nil {
		return nil, err
	}
	if data == nil {
		panic(&ContractError{Source: src.Name()})
	}
	return &Config{source: src.Name(), data: data.clone()}, nil
}

// MustLoad is like Load but panics on any error.
func MustLoad(src Source) *Config {
	cfg, err := Load(src)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Source returns the name of the source the configuration was loaded from.
func (c *Config) Source() string {
	return c.source
}

// Get returns the stored value, or def when the section or key is absent.
func (c *Config) Get(section, key string, def any) any {
	if v := c.data.sections[section][key]; v != nil {
		return v
	}
	return def
}

// Section returns a copy of the named section, or def when it is absent.
func (c *Config) Section(section string, def Section) Section {
	if s, ok := c.data.sections[section]; ok {
		return maps.Clone(s)
	}
	if def == nil {
		return Section{}
	}
	return def
}

// HasSection reports whether the section exists.
func (c *Config) HasSection(section string) bool {
	_, ok := c.data.sections[section]
	return ok
}

// Has reports whether the section holds a non-nil value for key.
func (c *Config) Has(section, key string) bool {
	return c.data.sections[section][key] != nil
}

// All returns a copy of every section.
func (c *Config) All() map[string]Section {
	out := make(map[string]Section, len(c.data.sections))
	for name, s := range c.data.sections {
		out[name] = maps.Clone(s)
	}
	return out
}

// Sections yields each section in insertion order.
func (c *Config) Sections() iter.Seq2[string, Section] {
	return func(yield func(string, Section) bool) {
		for name, s := range c.data.All() {
			if !yield(name, maps.Clone(s)) {
				return
			}
		}
	}
}

// Len returns the number of sections.
func (c *Config) Len() int {
	return c.data.Len()
}
