// Package values converts raw configuration strings into typed Go values.
// Cast coerces a string towards the type of a caller supplied default and
// falls back to that default when the string does not fit. InferType guesses
// the type from the string alone using a fixed priority order: structured
// data first, then integers, floats and booleans, and finally the raw string.
package values
