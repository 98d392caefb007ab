// Package config loads the relcut pipeline configuration.
//
// Configuration is optional: a bare run uses the built-in reference target
// set. When present, a YAML file can override the project name, output
// directory, toolchain binary, checksum generation, and the ordered target
// list. Lookup order is an explicit --config path, then .relcut.yaml in the
// working directory, then the user-level XDG config file.
package config
