package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"
)

// Default manifest filename, looked up in the working directory.
const DefaultPath = "Cargo.toml"

// Versions must be usable as a filename component: no whitespace, no path
// separators.
var versionPattern = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z.+_-]*$`)

// Project metadata resolved from the manifest.
//
// Resolved once at pipeline start and immutable thereafter. The version
// stamps every artifact name of a run.
type Manifest struct {
	Name    string // Package name, used as the artifact name prefix.
	Version string // Declared release version.
}

// Shape of the [package] table in a Cargo manifest. Other tables are ignored.
type cargoManifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// Reads the manifest at path and resolves the project name and version.
//
// A missing or empty version field is a configuration error, not a transient
// fault: it returns [ErrVersionMissing] and the caller is expected to halt. A
// version that cannot form a valid artifact filename returns
// [ErrVersionInvalid]. When the manifest declares no package name, the name
// of the directory containing the manifest is used.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var raw cargoManifest
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if raw.Package.Version == "" {
		return nil, fmt.Errorf("%w: no version declared in %s", ErrVersionMissing, path)
	}
	if !versionPattern.MatchString(raw.Package.Version) {
		return nil, fmt.Errorf("%w: %q cannot form an artifact filename", ErrVersionInvalid, raw.Package.Version)
	}

	name := raw.Package.Name
	if name == "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolving manifest path: %w", err)
		}
		name = filepath.Base(filepath.Dir(abs))
	}

	return &Manifest{Name: name, Version: raw.Package.Version}, nil
}
