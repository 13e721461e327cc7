package gitops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// DefaultBranch is used when a Config names no branch.
const DefaultBranch = "main"

const (
	defaultAuthorName  = "Fabriq GitOps"
	defaultAuthorEmail = "gitops@fabriq.cloud"
)

// Config describes one git checkout: where it comes from, which branch to
// track, and how commits are signed. PrivateKey is a PEM-encoded SSH key;
// when empty the transport is anonymous, which suits https and local paths.
type Config struct {
	URL         string
	Branch      string
	PrivateKey  string
	AuthorName  string
	AuthorEmail string
}

// Repo is a writable checkout. Paths are repo-relative and slash-separated.
// Commit stages everything, deletions included, and reports whether a commit
// was created; a clean tree commits nothing.
type Repo interface {
	WriteFile(path string, contents []byte) error
	ReadFile(path string) ([]byte, error)
	ListFiles(dir string) ([]string, error)
	RemoveDir(dir string) error
	Commit(message string) (bool, error)
	Push() error
	Close() error
}

// GitRepo is a Repo over a real clone in a temporary directory.
type GitRepo struct {
	cfg      Config
	dir      string
	repo     *git.Repository
	worktree *git.Worktree
	auth     transport.AuthMethod
}

// Clone checks the configured branch out into a fresh temporary directory.
// Close removes the directory again.
func Clone(cfg Config) (*GitRepo, error) {
	if cfg.Branch == "" {
		cfg.Branch = DefaultBranch
	}
	if cfg.AuthorName == "" {
		cfg.AuthorName = defaultAuthorName
	}
	if cfg.AuthorEmail == "" {
		cfg.AuthorEmail = defaultAuthorEmail
	}

	var auth transport.AuthMethod
	if cfg.PrivateKey != "" {
		keys, err := gitssh.NewPublicKeys("git", []byte(cfg.PrivateKey), "")
		if err != nil {
			return nil, fmt.Errorf("parsing ssh key: %w", err)
		}
		auth = keys
	}

	dir, err := os.MkdirTemp("", "fabriq-gitops-")
	if err != nil {
		return nil, fmt.Errorf("creating checkout directory: %w", err)
	}

	repo, err := git.PlainClone(dir, false, &git.CloneOptions{
		URL:           cfg.URL,
		ReferenceName: plumbing.NewBranchReferenceName(cfg.Branch),
		SingleBranch:  true,
		Auth:          auth,
	})
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("cloning %s: %w", cfg.URL, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("opening worktree: %w", err)
	}

	return &GitRepo{
		cfg:      cfg,
		dir:      dir,
		repo:     repo,
		worktree: worktree,
		auth:     auth,
	}, nil
}

func (g *GitRepo) localPath(repoPath string) string {
	return filepath.Join(g.dir, filepath.FromSlash(repoPath))
}

// WriteFile writes contents at the repo-relative path, creating parent
// directories as needed.
func (g *GitRepo) WriteFile(path string, contents []byte) error {
	file := g.localPath(path)
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(file, contents, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadFile reads the file at the repo-relative path.
func (g *GitRepo) ReadFile(path string) ([]byte, error) {
	contents, err := os.ReadFile(g.localPath(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return contents, nil
}

// ListFiles returns the repo-relative paths of every file under dir, sorted.
// An empty dir lists the whole checkout.
func (g *GitRepo) ListFiles(dir string) ([]string, error) {
	root := g.localPath(dir)

	var files []string
	err := filepath.WalkDir(root, func(walked string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if entry.Name() == git.GitDirName {
				return filepath.SkipDir
			}
			return nil
		}
		relative, err := filepath.Rel(g.dir, walked)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(relative))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}

// RemoveDir removes the repo-relative directory and everything under it.
// Removing a directory that does not exist is a no-op.
func (g *GitRepo) RemoveDir(dir string) error {
	if err := os.RemoveAll(g.localPath(dir)); err != nil {
		return fmt.Errorf("removing %s: %w", dir, err)
	}
	return nil
}

// Commit stages all changes and commits them with the configured author.
// A clean tree creates no commit.
func (g *GitRepo) Commit(message string) (bool, error) {
	if err := g.worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return false, fmt.Errorf("staging changes: %w", err)
	}

	status, err := g.worktree.Status()
	if err != nil {
		return false, fmt.Errorf("reading worktree status: %w", err)
	}
	if status.IsClean() {
		return false, nil
	}

	_, err = g.worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  g.cfg.AuthorName,
			Email: g.cfg.AuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return false, fmt.Errorf("committing: %w", err)
	}
	return true, nil
}

// Push pushes the tracked branch to origin. An up-to-date remote is not an
// error.
func (g *GitRepo) Push() error {
	refSpec := fmt.Sprintf("refs/heads/%s:refs/heads/%s", g.cfg.Branch, g.cfg.Branch)

	err := g.repo.Push(&git.PushOptions{
		RemoteName: "origin",
		RefSpecs:   []gitconfig.RefSpec{gitconfig.RefSpec(refSpec)},
		Auth:       g.auth,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("pushing %s: %w", g.cfg.Branch, err)
	}
	return nil
}

// Close deletes the checkout directory.
func (g *GitRepo) Close() error {
	return os.RemoveAll(g.dir)
}

// relativeTo strips the directory prefix from a repo path. It is the
// slash-path counterpart of filepath.Rel for listings produced by ListFiles.
func relativeTo(dir, path string) string {
	if dir == "" {
		return path
	}
	return strings.TrimPrefix(path, dir+"/")
}
