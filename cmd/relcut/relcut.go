package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/relcut/relcut/internal"
	"github.com/relcut/relcut/internal/cli"
)

// The entry point for the relcut CLI.
//
// Initializes logging and executes the root command. If any error occurs
// during execution, it exits with a non-zero code.
func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, nil)))

	slog.Debug("build", "version", internal.VersionString())
	slog.Debug("relcut invoked", "pid", os.Getpid(), "cwd", cwd(), "args", os.Args)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
