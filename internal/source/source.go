// Package source provides the raw lines of checked files.
package source

import (
	"errors"
	"path/filepath"

	"github.com/scan-io-git/commentcheck/internal/rules"
	"github.com/scan-io-git/commentcheck/pkg/shared/files"
)

// ErrFileNotFound is returned when a provider has no such file.
var ErrFileNotFound = errors.New("file not found")

// Provider returns the lines of a file addressed by its reported path.
type Provider interface {
	Lines(path string) (rules.SourceLines, error)
}

// Dir reads files from a directory on disk.
type Dir struct {
	Root string
}

// NewDir creates a Dir provider rooted at root.
func NewDir(root string) (*Dir, error) {
	expanded, err := files.ExpandPath(root)
	if err != nil {
		return nil, err
	}
	if err := files.ValidateDir(expanded); err != nil {
		return nil, err
	}
	return &Dir{Root: expanded}, nil
}

// Lines reads path relative to the root. Absolute paths must still be inside the root.
func (d *Dir) Lines(path string) (rules.SourceLines, error) {
	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(d.Root, path)
	}
	resolved, err := files.EnsureWithinRoot(d.Root, target)
	if err != nil {
		return nil, err
	}
	lines, err := files.ReadLines(resolved)
	if err != nil {
		return nil, err
	}
	return rules.SourceLines(lines), nil
}
