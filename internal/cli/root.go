package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/relcut/relcut/internal"
)

// Represents the root command for the relcut CLI.
var RootCmd struct {
	Quiet bool `short:"q" help:"Suppress informational output."`
	Debug bool `short:"d" help:"Enable debug output."`

	Release ReleaseCmd `cmd:"" default:"withargs" help:"Build and package release artifacts for every configured target."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
//
// The release command is the default, so a bare invocation runs the full
// pipeline end-to-end. The bound context is cancelled on SIGINT or SIGTERM,
// which halts the pipeline without attempting cleanup; idempotent reruns are
// the recovery mechanism.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Multi-target release build orchestrator.\n\nBuilds the project for every configured target platform and repackages the binaries into version-stamped artifacts."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	level := slog.LevelInfo
	if RootCmd.Debug {
		level = slog.LevelDebug
	} else if RootCmd.Quiet {
		level = slog.LevelWarn
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !isatty(os.Stderr),
	})))
}

// Whether the given file is an interactive terminal.
func isatty(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
