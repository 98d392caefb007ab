// Package build orchestrates the release pipeline.
//
// A run resolves to three strictly sequential stages: the caller supplies a
// version resolved from the project manifest, every declared target is built
// in order through a [Toolchain], and the resulting binaries are packaged
// into a flat output directory under deterministic version-stamped names.
// Any failure is fatal to the whole run; reruns are the recovery mechanism.
//
// Example usage:
//
//	result, err := build.Run(ctx, &toolchain.Cargo{}, build.Options{
//	    Project: "app",
//	    Version: "0.1.0",
//	    Binary:  "app",
//	    Targets: target.Defaults(),
//	    Output:  "artifacts",
//	})
//	if err != nil {
//	    return err
//	}
package build
