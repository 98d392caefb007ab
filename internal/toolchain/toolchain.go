package toolchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/relcut/relcut/internal/target"
)

// Default toolchain binary.
const DefaultBin = "cargo"

// Invokes cargo as an external process.
//
// Each build is a blocking subprocess call: the pipeline suspends until the
// toolchain exits. Toolchain stdout and stderr are passed through for
// operator visibility and never parsed; exit status alone signals success.
type Cargo struct {
	Bin string // Toolchain binary to invoke. Empty uses [DefaultBin].
	Dir string // Working directory for invocations. Empty uses the process working directory.
}

// Builds one target in the release profile and waits for the toolchain to
// exit.
//
// Target environment overrides (e.g., a cross linker) are applied to this
// invocation only; the process environment is never mutated, so nothing
// leaks into subsequent builds. A nonzero exit status returns
// [ErrCommandFailed].
func (c *Cargo) Build(ctx context.Context, t target.Target) error {
	cmd := c.command(ctx, t)

	slog.Info("invoking toolchain", "target", t.Label(), "command", strings.Join(cmd.Args, " "))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s exited with status %d", ErrCommandFailed, c.bin(), exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %w", ErrCommandFailed, err)
	}
	return nil
}

// Constructs the build invocation for a target.
//
// The returned command inherits the process environment plus the target's
// overrides, and wires the toolchain's output streams straight to the
// operator's.
func (c *Cargo) command(ctx context.Context, t target.Target) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.bin(), buildArgs(t)...)
	cmd.Dir = c.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), t.Environ()...)
	return cmd
}

// Returns the configured toolchain binary, falling back to [DefaultBin].
func (c *Cargo) bin() string {
	if c.Bin != "" {
		return c.Bin
	}
	return DefaultBin
}

// Returns the cargo arguments for building a target in the release profile.
// Host builds omit the --target flag so the toolchain uses its default
// output tree.
func buildArgs(t target.Target) []string {
	args := []string{"build", "--release"}
	if !t.Host {
		args = append(args, "--target", t.Triple)
	}
	return args
}
