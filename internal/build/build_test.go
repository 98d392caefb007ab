package build

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/relcut/relcut/internal/paths"
	"github.com/relcut/relcut/internal/target"
)

// Stands in for the cargo toolchain: records invocations and drops a fake
// binary at the target's expected output path.
type stubToolchain struct {
	root      string
	binary    string
	failOn    string // Label of a target whose build should fail.
	skipWrite bool   // Report success without producing a binary.
	built     []string
}

func (s *stubToolchain) Build(ctx context.Context, t target.Target) error {
	s.built = append(s.built, t.Label())
	if t.Label() == s.failOn {
		return errors.New("linker not found")
	}
	if s.skipWrite {
		return nil
	}

	path := filepath.Join(s.root, t.BinaryPath(s.binary))
	if err := os.MkdirAll(filepath.Dir(path), paths.DefaultDirMode); err != nil {
		return err
	}
	return os.WriteFile(path, []byte("binary for "+t.Label()), paths.BinaryFileMode)
}

func testOptions(t *testing.T) (Options, *stubToolchain) {
	t.Helper()
	root := t.TempDir()
	opts := Options{
		Project: "app",
		Version: "0.1.0",
		Binary:  "app",
		Targets: target.Defaults(),
		Root:    root,
		Output:  filepath.Join(root, "artifacts"),
	}
	return opts, &stubToolchain{root: root, binary: "app"}
}

func TestRunPackagesAllTargets(t *testing.T) {
	opts, tc := testOptions(t)
	opts.Checksums = true

	result, err := Run(context.Background(), tc, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Artifacts) != 2 {
		t.Fatalf("len(artifacts) = %d, want 2", len(result.Artifacts))
	}

	for _, name := range []string{"app-v0.1.0-linux-x86_64", "app-v0.1.0-linux-aarch64", "SHA256SUMS"} {
		if _, err := os.Stat(filepath.Join(opts.Output, name)); err != nil {
			t.Fatalf("missing output file %s: %v", name, err)
		}
	}

	for _, a := range result.Artifacts {
		if a.Size <= 0 {
			t.Fatalf("artifact %s has size %d", a.Path, a.Size)
		}
	}

	want := []string{"linux-x86_64", "linux-aarch64"}
	for i, label := range want {
		if tc.built[i] != label {
			t.Fatalf("built[%d] = %q, want %q (declared order)", i, tc.built[i], label)
		}
	}
}

func TestRunBuildFailureHaltsPipeline(t *testing.T) {
	opts, tc := testOptions(t)
	tc.failOn = "linux-x86_64"

	_, err := Run(context.Background(), tc, opts)
	if !errors.Is(err, ErrBuild) {
		t.Fatalf("err = %v, want %v", err, ErrBuild)
	}

	if len(tc.built) != 1 {
		t.Fatalf("built %d targets after failure, want 1", len(tc.built))
	}
	if _, statErr := os.Stat(opts.Output); !os.IsNotExist(statErr) {
		t.Fatal("output directory created despite build failure")
	}
}

func TestRunBuildFailureNamesTarget(t *testing.T) {
	opts, tc := testOptions(t)
	tc.failOn = "linux-aarch64"

	_, err := Run(context.Background(), tc, opts)
	if !errors.Is(err, ErrBuild) {
		t.Fatalf("err = %v, want %v", err, ErrBuild)
	}
	if got := err.Error(); !strings.Contains(got, "linux-aarch64") {
		t.Fatalf("error %q does not name the failed target", got)
	}
	if _, statErr := os.Stat(opts.Output); !os.IsNotExist(statErr) {
		t.Fatal("packaging ran despite build failure")
	}
}

func TestRunArtifactNotFound(t *testing.T) {
	opts, tc := testOptions(t)
	tc.skipWrite = true

	_, err := Run(context.Background(), tc, opts)
	if !errors.Is(err, ErrArtifactNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrArtifactNotFound)
	}

	if _, statErr := os.Stat(filepath.Join(opts.Output, "app-v0.1.0-linux-x86_64")); statErr == nil {
		t.Fatal("artifact produced despite missing binary")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	opts, tc := testOptions(t)
	opts.Checksums = true

	first, err := Run(context.Background(), tc, opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Run(context.Background(), tc, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	for i := range first.Artifacts {
		if first.Artifacts[i].Path != second.Artifacts[i].Path {
			t.Fatalf("artifact path changed between runs: %q vs %q",
				first.Artifacts[i].Path, second.Artifacts[i].Path)
		}
	}
}

func TestRunWithoutChecksums(t *testing.T) {
	opts, tc := testOptions(t)

	if _, err := Run(context.Background(), tc, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(opts.Output, checksumFile)); !os.IsNotExist(err) {
		t.Fatal("SHA256SUMS written with checksums disabled")
	}
}

func TestRunDryRun(t *testing.T) {
	opts, tc := testOptions(t)
	opts.DryRun = true

	result, err := Run(context.Background(), tc, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tc.built) != 0 {
		t.Fatalf("dry run invoked the toolchain %d times", len(tc.built))
	}
	if len(result.Artifacts) != 0 {
		t.Fatalf("dry run produced %d artifacts", len(result.Artifacts))
	}
	if _, statErr := os.Stat(opts.Output); !os.IsNotExist(statErr) {
		t.Fatal("dry run created the output directory")
	}
}
