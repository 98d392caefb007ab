package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/relcut/relcut/internal/paths"
	"github.com/relcut/relcut/internal/target"
)

const (

	// Default artifact output directory, relative to the working directory.
	DefaultOutput = "artifacts"

	// Default toolchain binary.
	DefaultCargo = "cargo"
)

// Resolved pipeline configuration with all defaults applied.
type Config struct {
	Project   string          // Artifact name prefix override. Empty uses the manifest name.
	Output    string          // Artifact output directory.
	Cargo     string          // Toolchain binary to invoke.
	Checksums bool            // Whether to write SHA256SUMS after packaging.
	Targets   []target.Target // Ordered target list, host first.
}

// On-disk configuration shape. Absent fields keep their defaults; Checksums
// is a pointer so "false" can be told apart from "not set".
type rawConfig struct {
	Project   string          `yaml:"project"`
	Output    string          `yaml:"output"`
	Cargo     string          `yaml:"cargo"`
	Checksums *bool           `yaml:"checksums"`
	Targets   []target.Target `yaml:"targets"`
}

// Returns the built-in configuration: the reference target set, the
// artifacts/ output directory, and checksums enabled.
func Defaults() Config {
	return Config{
		Output:    DefaultOutput,
		Cargo:     DefaultCargo,
		Checksums: true,
		Targets:   target.Defaults(),
	}
}

// Loads the pipeline configuration.
//
// When path is non-empty, the file must exist. Otherwise the per-project
// file in the working directory is tried, then the user-level XDG config
// file. When no file is found, the built-in defaults are returned.
func Load(path string) (Config, error) {
	if path != "" {
		return loadFile(path)
	}

	if _, err := os.Stat(paths.ProjectConfig()); err == nil {
		return loadFile(paths.ProjectConfig())
	}

	if user, err := paths.UserConfig(); err == nil {
		return loadFile(user)
	}

	return Defaults(), nil
}

// Reads and parses a single configuration file, applying defaults for any
// field the file leaves unset.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Parses configuration bytes and overlays them on the defaults.
func parse(data []byte) (Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, err
	}

	cfg := Defaults()
	if raw.Project != "" {
		cfg.Project = raw.Project
	}
	if raw.Output != "" {
		cfg.Output = raw.Output
	}
	if raw.Cargo != "" {
		cfg.Cargo = raw.Cargo
	}
	if raw.Checksums != nil {
		cfg.Checksums = *raw.Checksums
	}
	if len(raw.Targets) > 0 {
		cfg.Targets = raw.Targets
	}

	for _, t := range cfg.Targets {
		if err := t.Validate(); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}
