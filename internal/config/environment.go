package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// Environment looks up environment variables.
type Environment interface {
	LookupEnv(name string) (string, bool)
}

// OSEnvironment reads the live process environment. Concurrent changes to
// the environment while a source imports are not synchronised.
type OSEnvironment struct{}

// LookupEnv calls os.LookupEnv.
func (OSEnvironment) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapEnvironment serves variables from a fixed map.
type MapEnvironment map[string]string

// LookupEnv reads name from the map.
func (m MapEnvironment) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// SnapshotEnvironment copies the process environment once, so an import
// reads a consistent view even if other goroutines modify the environment.
func SnapshotEnvironment() MapEnvironment {
	return MapEnvironment(env.ToMap(os.Environ()))
}
