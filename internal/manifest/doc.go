// Package manifest resolves the project name and release version from a
// Cargo manifest.
//
// The manifest is the single source of truth for the version string; it is
// read once at pipeline start and never written. A manifest without a usable
// version halts the pipeline before any toolchain invocation.
package manifest
