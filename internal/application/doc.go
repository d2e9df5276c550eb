// Package application wires configuration loading for the command line tool.
// It reads the tool's own settings from the environment, turns command line
// options into a config source, and reports load failures through the
// logging collaborator before handing them back to the caller.
package application
