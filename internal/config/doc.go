// Package config loads structured configuration once and serves read-only
// lookups afterwards. Data is organised as sections of key/value pairs and is
// produced by a Source: environment variables resolved against a schema, a
// declarative file (YAML, JSON, TOML or CUE), or the no-op source that always
// yields an empty store. Value coercion for environment strings is delegated
// to package values.
package config
