package config

import (
	"path/filepath"
	"testing"
)

func TestParseEmpty(t *testing.T) {
	cfg, err := parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Output != DefaultOutput {
		t.Fatalf("output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.Cargo != DefaultCargo {
		t.Fatalf("cargo = %q, want %q", cfg.Cargo, DefaultCargo)
	}
	if !cfg.Checksums {
		t.Fatal("checksums disabled by default")
	}
	if len(cfg.Targets) != 2 {
		t.Fatalf("len(targets) = %d, want 2 (reference set)", len(cfg.Targets))
	}
	if cfg.Project != "" {
		t.Fatalf("project = %q, want empty", cfg.Project)
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := parse([]byte(`
project: app
output: dist
cargo: /opt/rust/bin/cargo
checksums: false
targets:
  - os: linux
    arch: x86_64
    host: true
  - triple: aarch64-unknown-linux-gnu
    os: linux
    arch: aarch64
    env:
      CARGO_TARGET_AARCH64_UNKNOWN_LINUX_GNU_LINKER: aarch64-linux-gnu-gcc
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Project != "app" {
		t.Fatalf("project = %q, want app", cfg.Project)
	}
	if cfg.Output != "dist" {
		t.Fatalf("output = %q, want dist", cfg.Output)
	}
	if cfg.Cargo != "/opt/rust/bin/cargo" {
		t.Fatalf("cargo = %q, want /opt/rust/bin/cargo", cfg.Cargo)
	}
	if cfg.Checksums {
		t.Fatal("checksums = true, want false")
	}

	if len(cfg.Targets) != 2 {
		t.Fatalf("len(targets) = %d, want 2", len(cfg.Targets))
	}
	if !cfg.Targets[0].Host {
		t.Fatal("first declared target is not the host")
	}
	if cfg.Targets[1].Label() != "linux-aarch64" {
		t.Fatalf("targets[1] = %q, want linux-aarch64", cfg.Targets[1].Label())
	}
	linker := cfg.Targets[1].Env["CARGO_TARGET_AARCH64_UNKNOWN_LINUX_GNU_LINKER"]
	if linker != "aarch64-linux-gnu-gcc" {
		t.Fatalf("cross linker = %q, want aarch64-linux-gnu-gcc", linker)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := parse([]byte("output: out\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "out" {
		t.Fatalf("output = %q, want out", cfg.Output)
	}
	if cfg.Cargo != DefaultCargo {
		t.Fatalf("cargo = %q, want %q", cfg.Cargo, DefaultCargo)
	}
	if !cfg.Checksums {
		t.Fatal("checksums disabled by partial config")
	}
	if len(cfg.Targets) != 2 {
		t.Fatalf("len(targets) = %d, want 2 (reference set)", len(cfg.Targets))
	}
}

func TestParseInvalidTarget(t *testing.T) {
	_, err := parse([]byte("targets:\n  - os: linux\n"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := parse([]byte("output: [unclosed"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
