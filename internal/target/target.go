package target

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Describes one compilation target.
//
// Targets form a fixed, ordered sequence declared by configuration; they are
// never discovered at runtime. The host target is built without an explicit
// triple so the toolchain writes to its default output tree.
type Target struct {
	Triple string            `yaml:"triple"` // Toolchain target triple (e.g., "aarch64-unknown-linux-gnu").
	OS     string            `yaml:"os"`     // OS label used in artifact names (e.g., "linux").
	Arch   string            `yaml:"arch"`   // Architecture label used in artifact names (e.g., "x86_64").
	Host   bool              `yaml:"host"`   // Whether this is the host platform.
	Env    map[string]string `yaml:"env"`    // Environment overrides scoped to this target's build.
}

// Returns the ordered default target set: the host platform first, then the
// aarch64 cross target with its linker override.
func Defaults() []Target {
	return []Target{
		{
			Triple: "x86_64-unknown-linux-gnu",
			OS:     "linux",
			Arch:   "x86_64",
			Host:   true,
		},
		{
			Triple: "aarch64-unknown-linux-gnu",
			OS:     "linux",
			Arch:   "aarch64",
			Env: map[string]string{
				"CARGO_TARGET_AARCH64_UNKNOWN_LINUX_GNU_LINKER": "aarch64-linux-gnu-gcc",
			},
		},
	}
}

// Returns the target's label, used in artifact names and operator-facing
// messages (e.g., "linux-x86_64").
func (t Target) Label() string {
	return t.OS + "-" + t.Arch
}

// Returns the expected toolchain output path for the named binary, relative
// to the project root.
//
// Host builds run without an explicit --target flag, so the toolchain writes
// to target/release. Cross builds write to a triple-keyed subtree.
func (t Target) BinaryPath(binary string) string {
	if t.Host {
		return filepath.Join("target", "release", binary)
	}
	return filepath.Join("target", t.Triple, "release", binary)
}

// Returns the deterministic artifact filename for this target:
// {project}-v{version}-{os}-{arch}.
func (t Target) ArtifactName(project, version string) string {
	return fmt.Sprintf("%s-v%s-%s-%s", project, version, t.OS, t.Arch)
}

// Formats the target's environment overrides as a sorted list of "key=value"
// strings suitable for appending to a subprocess environment.
func (t Target) Environ() []string {
	env := make([]string, 0, len(t.Env))
	for k, v := range t.Env {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env
}

// Reports whether the target carries enough information to be built and
// packaged.
func (t Target) Validate() error {
	if t.OS == "" || t.Arch == "" {
		return fmt.Errorf("%w: os and arch labels are required", ErrInvalidTarget)
	}
	if !t.Host && t.Triple == "" {
		return fmt.Errorf("%w: cross target %s declares no triple", ErrInvalidTarget, t.Label())
	}
	return nil
}
