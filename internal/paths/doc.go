// Provides file modes and configuration lookup paths for relcut.
//
// Configuration is resolved in two steps: a per-project file in the working
// directory, then a user-level file following XDG conventions on Linux and
// platform-native conventions on macOS and Windows.
package paths
