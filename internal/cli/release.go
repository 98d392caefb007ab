package cli

import (
	"context"
	"log/slog"

	"github.com/relcut/relcut/internal/build"
	"github.com/relcut/relcut/internal/config"
	"github.com/relcut/relcut/internal/manifest"
	"github.com/relcut/relcut/internal/toolchain"
)

// Represents the 'relcut release' command.
type ReleaseCmd struct {
	Manifest    string `short:"m" default:"Cargo.toml" help:"Path to the project manifest." placeholder:"PATH"`
	Config      string `short:"c" help:"Path to the configuration file." placeholder:"PATH"`
	Output      string `short:"o" help:"Override the artifact output directory." placeholder:"DIR"`
	DryRun      bool   `help:"Resolve the version and print the plan without building."`
	NoChecksums bool   `help:"Skip SHA256SUMS generation."`
}

// Executes the release command.
//
// Resolves the version from the project manifest, builds every configured
// target in order, and packages the binaries into the output directory. Any
// failure halts the pipeline and is surfaced as a nonzero exit status.
func (c *ReleaseCmd) Run(ctx context.Context) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}
	if c.NoChecksums {
		cfg.Checksums = false
	}

	m, err := manifest.Load(c.Manifest)
	if err != nil {
		return err
	}

	slog.Info("resolved release version", "project", m.Name, "version", m.Version)

	project := cfg.Project
	if project == "" {
		project = m.Name
	}

	result, err := build.Run(ctx, &toolchain.Cargo{Bin: cfg.Cargo}, build.Options{
		Project:   project,
		Version:   m.Version,
		Binary:    m.Name,
		Targets:   cfg.Targets,
		Output:    cfg.Output,
		Checksums: cfg.Checksums,
		DryRun:    c.DryRun,
	})
	if err != nil {
		return err
	}

	if !c.DryRun {
		slog.Info("release complete", "artifacts", len(result.Artifacts), "output", cfg.Output)
	}
	return nil
}
