package source

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/scan-io-git/commentcheck/internal/rules"
	"github.com/scan-io-git/commentcheck/pkg/shared/files"
)

// Git reads files as they are recorded in one revision of a repository.
type Git struct {
	RepoPath string
	Revision string
	Commit   plumbing.Hash

	mu   sync.Mutex
	tree *object.Tree
}

// NewGit opens the repository and resolves revision, which may be a branch,
// a tag or a full commit hash. An empty revision means HEAD.
func NewGit(repoPath, revision string) (*Git, error) {
	if revision == "" {
		revision = "HEAD"
	}
	expanded, err := files.ExpandPath(repoPath)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpen(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %q: %w", expanded, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w", revision, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit %s: %w", hash, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to load tree of %s: %w", hash, err)
	}

	return &Git{
		RepoPath: expanded,
		Revision: revision,
		Commit:   *hash,
		tree:     tree,
	}, nil
}

// Lines returns the content of a repository-relative path at the resolved revision.
func (g *Git) Lines(p string) (rules.SourceLines, error) {
	name := path.Clean(strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), "./"))

	// object storage is not safe for concurrent reads
	g.mu.Lock()
	defer g.mu.Unlock()

	f, err := g.tree.File(name)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%s at %s: %w", name, g.Commit, ErrFileNotFound)
		}
		return nil, fmt.Errorf("failed to look up %s at %s: %w", name, g.Commit, err)
	}

	content, err := f.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s at %s: %w", name, g.Commit, err)
	}
	return rules.SourceLines(files.SplitLines(content)), nil
}
