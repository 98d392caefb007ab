// Package toolchain invokes the native build toolchain as a subprocess.
//
// A [Cargo] value runs "cargo build --release" for a target and blocks
// until the process exits. Cross targets add an explicit --target triple
// and any per-target environment overrides, scoped to a single invocation.
package toolchain
