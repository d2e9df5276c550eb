package config

import (
	"iter"
	"maps"
)

// Section holds the key/value pairs of one configuration section.
type Section map[string]any

// Data is an insertion-ordered mapping of section names to sections. Sources
// build it during Import; once handed to Load it is never modified.
type Data struct {
	names    []string
	sections map[string]Section
}

// NewData returns an empty store.
func NewData() *Data {
	return &Data{sections: make(map[string]Section)}
}

// Set stores a section. Replacing an existing section keeps its position.
func (d *Data) Set(name string, section Section) {
	if section == nil {
		section = Section{}
	}
	if _, ok := d.sections[name]; !ok {
		d.names = append(d.names, name)
	}
	d.sections[name] = section
}

// Len returns the number of sections.
func (d *Data) Len() int {
	return len(d.names)
}

// All iterates sections in insertion order.
func (d *Data) All() iter.Seq2[string, Section] {
	return func(yield func(string, Section) bool) {
		for _, name := range d.names {
			if !yield(name, d.sections[name]) {
				return
			}
		}
	}
}

func (d *Data) clone() *Data {
	out := &Data{
		names:    make([]string, len(d.names)),
		sections: make(map[string]Section, len(d.sections)),
	}
	copy(out.names, d.names)
	for name, section := range d.sections {
		out.sections[name] = maps.Clone(section)
	}
	return out
}
