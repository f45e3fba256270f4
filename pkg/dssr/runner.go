package dssr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/matzehuels/tetrado/pkg/errors"
)

// DefaultBinary is the annotator executable looked up on PATH.
const DefaultBinary = "x3dna-dssr"

// Runner invokes the DSSR annotator on structure files.
type Runner struct {
	// Binary is the path to the x3dna-dssr executable.
	Binary string
	// Args are appended after the mandatory --json --symmetry flags.
	Args []string
}

// NewRunner returns a Runner for binary, falling back to DefaultBinary.
func NewRunner(binary string, args ...string) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{Binary: binary, Args: args}
}

// Run annotates the PDB or mmCIF file at path and returns the JSON document.
//
// DSSR writes auxiliary files into its working directory, so the input is
// copied into a scratch directory that is removed afterwards.
func (r *Runner) Run(ctx context.Context, path string) ([]byte, error) {
	bin, err := exec.LookPath(r.Binary)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAnnotatorFailed, err, "annotator %s not found", r.Binary)
	}

	dir, err := os.MkdirTemp("", "tetrado-dssr-")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Base(path)
	if err := copyFile(path, filepath.Join(dir, name)); err != nil {
		return nil, err
	}

	args := append([]string{"-i=" + name, "--json", "--symmetry"}, r.Args...)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeAnnotatorFailed, err, "annotate %s: %s", path, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "no such file %s", src)
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
