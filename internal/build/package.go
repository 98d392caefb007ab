package build

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/relcut/relcut/internal/paths"
	"github.com/relcut/relcut/internal/target"
)

// Filename of the checksum manifest written into the output directory.
const checksumFile = "SHA256SUMS"

// Packages every target's binary into the output directory.
//
// Runs only after all targets have built. The output directory is created
// if absent; reruns overwrite artifacts with the same name. A missing
// source binary after a reportedly successful build is fatal.
func packageArtifacts(opts Options) (*Result, error) {
	if err := os.MkdirAll(opts.Output, paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	result := &Result{}
	for _, t := range opts.Targets {
		artifact, err := packageTarget(opts, t)
		if err != nil {
			return nil, err
		}
		result.Artifacts = append(result.Artifacts, artifact)
	}

	if opts.Checksums {
		if err := writeChecksums(opts.Output, result.Artifacts); err != nil {
			return nil, err
		}
	}

	if err := listOutput(opts.Output); err != nil {
		return nil, err
	}

	return result, nil
}

// Copies one target's binary from its toolchain output path into the output
// directory under the deterministic artifact name.
func packageTarget(opts Options, t target.Target) (Artifact, error) {
	src := filepath.Join(opts.Root, t.BinaryPath(opts.Binary))

	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return Artifact{}, fmt.Errorf("%w: target %s: expected binary at %s", ErrArtifactNotFound, t.Label(), src)
		}
		return Artifact{}, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	dest := filepath.Join(opts.Output, t.ArtifactName(opts.Project, opts.Version))

	size, err := copyFile(src, dest)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	slog.Info("packaged artifact", "artifact", dest, "size", humanize.Bytes(uint64(size)))

	return Artifact{Target: t, Source: src, Path: dest, Size: size}, nil
}

// Copies src to dest, creating or truncating dest with the executable file
// mode. Returns the number of bytes copied.
func copyFile(src, dest string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, paths.BinaryFileMode)
	if err != nil {
		return 0, err
	}

	size, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return 0, err
	}
	return size, out.Close()
}

// Writes a SHA256SUMS manifest covering every artifact of the run, one
// "{hex}  {name}" line per artifact in target order.
func writeChecksums(output string, artifacts []Artifact) error {
	var lines []byte
	for _, a := range artifacts {
		sum, err := fileChecksum(a.Path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
		lines = append(lines, fmt.Sprintf("%s  %s\n", sum, filepath.Base(a.Path))...)
	}

	path := filepath.Join(output, checksumFile)
	if err := os.WriteFile(path, lines, paths.DefaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	slog.Info("wrote checksums", "path", path, "artifacts", len(artifacts))
	return nil
}

// Returns the hex-encoded SHA-256 digest of the file at path.
func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Prints the final confirmation: every file in the output directory with
// its size.
func listOutput(output string) error {
	entries, err := os.ReadDir(output)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"File", "Size"})

	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
		table.Append([]string{entry.Name(), humanize.Bytes(uint64(info.Size()))})
	}

	fmt.Printf("\n%s:\n", output)
	table.Render()
	return nil
}
