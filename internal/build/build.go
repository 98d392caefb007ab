package build

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/relcut/relcut/internal/target"
)

// Invokes the native toolchain for a single target, blocking until it exits.
type Toolchain interface {
	Build(ctx context.Context, t target.Target) error
}

// Controls pipeline execution.
type Options struct {
	Project   string          // Artifact name prefix.
	Version   string          // Release version stamped into every artifact name.
	Binary    string          // Name of the binary the toolchain produces.
	Targets   []target.Target // Ordered target list; built in declaration order.
	Root      string          // Project root containing the toolchain output tree. Empty uses the working directory.
	Output    string          // Artifact output directory.
	Checksums bool            // Whether to write SHA256SUMS after packaging.
	DryRun    bool            // Print the plan without building or packaging.
}

// Returned after a successful run.
type Result struct {
	Artifacts []Artifact // One artifact per target, in target order.
}

// A packaged release output.
type Artifact struct {
	Target target.Target // Target that produced the binary.
	Source string        // Toolchain output path the binary was copied from.
	Path   string        // Final artifact path inside the output directory.
	Size   int64         // Size in bytes, reported after the copy.
}

// Executes the release pipeline.
//
// Targets are built strictly in declared order; a build failure halts the
// run immediately without attempting remaining targets or packaging. Only
// after every target has built does packaging begin, so a run either
// produces the complete declared artifact set or none at all.
func Run(ctx context.Context, tc Toolchain, opts Options) (*Result, error) {
	slog.Info("starting release build",
		"project", opts.Project,
		"version", opts.Version,
		"targets", len(opts.Targets),
		"output", opts.Output,
	)

	if opts.DryRun {
		printPlan(opts)
		return &Result{}, nil
	}

	for _, t := range opts.Targets {
		slog.Info("building target", "target", t.Label(), "triple", t.Triple, "host", t.Host)
		if err := tc.Build(ctx, t); err != nil {
			return nil, fmt.Errorf("%w: target %s: %w", ErrBuild, t.Label(), err)
		}
	}

	return packageArtifacts(opts)
}

// Reports what a run would do without invoking the toolchain or touching
// the filesystem.
func printPlan(opts Options) {
	for _, t := range opts.Targets {
		slog.Info("would build",
			"target", t.Label(),
			"source", t.BinaryPath(opts.Binary),
			"artifact", t.ArtifactName(opts.Project, opts.Version),
		)
	}
}
