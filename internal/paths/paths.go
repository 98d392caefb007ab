package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/relcut/relcut/internal"
)

const (

	// Default permission mode for created directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for created files.
	DefaultFileMode os.FileMode = 0644

	// Permission mode for packaged binaries. Artifacts must stay executable
	// after the copy.
	BinaryFileMode os.FileMode = 0755
)

// Name of the per-project configuration file, looked up in the working
// directory.
func ProjectConfig() string {
	return "." + internal.Name + ".yaml"
}

// Path to the user-level configuration file, if one exists.
//
//	Linux:   $XDG_CONFIG_HOME/relcut/config.yaml or ~/.config/relcut/config.yaml
//	macOS:   ~/Library/Application Support/relcut/config.yaml
//
// Returns an error when no config file is found in any XDG config directory.
func UserConfig() (string, error) {
	return xdg.SearchConfigFile(filepath.Join(internal.Name, "config.yaml"))
}
