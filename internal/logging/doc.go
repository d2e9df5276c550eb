// Package logging builds the zap logger used by the application and exposes
// the small Logger interface through which load failures are reported.
package logging
