package gitops

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// newUpstream builds a bare repository seeded with the given files on main,
// addressable by filesystem path. It stands in for the hosted remote.
func newUpstream(t *testing.T, files map[string]string) string {
	t.Helper()

	seedDir := t.TempDir()
	seed, err := git.PlainInitWithOptions(seedDir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.Main},
	})
	if err != nil {
		t.Fatalf("initializing seed repository: %v", err)
	}

	for name, contents := range files {
		file := filepath.Join(seedDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if err := os.WriteFile(file, []byte(contents), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	worktree, err := seed.Worktree()
	if err != nil {
		t.Fatalf("opening seed worktree: %v", err)
	}
	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		t.Fatalf("staging seed files: %v", err)
	}
	_, err = worktree.Commit("seed", &git.CommitOptions{
		Author: &object.Signature{Name: "seed", Email: "seed@fabriq.cloud", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("committing seed files: %v", err)
	}

	bareDir := t.TempDir()
	if _, err := git.PlainClone(bareDir, true, &git.CloneOptions{URL: seedDir}); err != nil {
		t.Fatalf("creating bare upstream: %v", err)
	}
	return bareDir
}

func mustClone(t *testing.T, cfg Config) *GitRepo {
	t.Helper()
	repo, err := Clone(cfg)
	if err != nil {
		t.Fatalf("Clone error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestGitRepoRoundTrip(t *testing.T) {
	upstream := newUpstream(t, map[string]string{"README.md": "# cluster-gitops\n"})

	// No branch in the config exercises the main default.
	repo := mustClone(t, Config{URL: upstream})

	seeded, err := repo.ReadFile("README.md")
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(seeded) != "# cluster-gitops\n" {
		t.Errorf("seed contents = %q, want %q", seeded, "# cluster-gitops\n")
	}

	rendered := "deployments/fabriq-cloud:fabriq/fabriq-cloud:fabriq:cribbage/fabriq-cloud:fabriq:cribbage:prod/deployment.yaml"
	if err := repo.WriteFile(rendered, []byte("kind: Deployment\n")); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	committed, err := repo.Commit("Processed deployment event op-1")
	if err != nil {
		t.Fatalf("Commit error: %v", err)
	}
	if !committed {
		t.Fatal("Commit = false, want a commit for a dirty tree")
	}
	if err := repo.Push(); err != nil {
		t.Fatalf("Push error: %v", err)
	}

	verify := mustClone(t, Config{URL: upstream, Branch: "main"})
	contents, err := verify.ReadFile(rendered)
	if err != nil {
		t.Fatalf("ReadFile after push error: %v", err)
	}
	if string(contents) != "kind: Deployment\n" {
		t.Errorf("pushed contents = %q, want %q", contents, "kind: Deployment\n")
	}
}

func TestGitRepoCommitCleanTree(t *testing.T) {
	upstream := newUpstream(t, map[string]string{"README.md": "seed\n"})
	repo := mustClone(t, Config{URL: upstream})

	committed, err := repo.Commit("nothing changed")
	if err != nil {
		t.Fatalf("Commit error: %v", err)
	}
	if committed {
		t.Error("Commit = true on a clean tree, want false")
	}

	// Pushing with nothing new is not an error.
	if err := repo.Push(); err != nil {
		t.Errorf("Push error on up-to-date remote: %v", err)
	}
}

func TestGitRepoListFiles(t *testing.T) {
	upstream := newUpstream(t, map[string]string{
		"README.md":                        "seed\n",
		"external-service/deployment.yaml": "kind: Deployment\n",
		"external-service/service.yaml":    "kind: Service\n",
		"other/ingress.yaml":               "kind: Ingress\n",
	})
	repo := mustClone(t, Config{URL: upstream})

	all, err := repo.ListFiles("")
	if err != nil {
		t.Fatalf("ListFiles error: %v", err)
	}
	want := []string{
		"README.md",
		"external-service/deployment.yaml",
		"external-service/service.yaml",
		"other/ingress.yaml",
	}
	if len(all) != len(want) {
		t.Fatalf("ListFiles = %v, want %v", all, want)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("ListFiles[%d] = %s, want %s", i, all[i], want[i])
		}
	}

	subtree, err := repo.ListFiles("external-service")
	if err != nil {
		t.Fatalf("ListFiles(external-service) error: %v", err)
	}
	if len(subtree) != 2 || subtree[0] != "external-service/deployment.yaml" || subtree[1] != "external-service/service.yaml" {
		t.Errorf("ListFiles(external-service) = %v, want the two manifests", subtree)
	}
}

func TestGitRepoRemoveDir(t *testing.T) {
	upstream := newUpstream(t, map[string]string{
		"deployments/team/workload/prod/deployment.yaml":   "kind: Deployment\n",
		"deployments/team/workload/prod/config.yaml":       "PORT: \"8080\"\n",
		"deployments/team/workload/canary/deployment.yaml": "kind: Deployment\n",
	})
	repo := mustClone(t, Config{URL: upstream})

	if err := repo.RemoveDir("deployments/team/workload/prod"); err != nil {
		t.Fatalf("RemoveDir error: %v", err)
	}

	remaining, err := repo.ListFiles("deployments")
	if err != nil {
		t.Fatalf("ListFiles error: %v", err)
	}
	if len(remaining) != 1 || remaining[0] != "deployments/team/workload/canary/deployment.yaml" {
		t.Errorf("remaining files = %v, want only the canary manifest", remaining)
	}

	// Removing an absent directory is a no-op.
	if err := repo.RemoveDir("deployments/team/workload/prod"); err != nil {
		t.Errorf("RemoveDir of missing directory: %v", err)
	}

	committed, err := repo.Commit("Processed deployment event op-2")
	if err != nil {
		t.Fatalf("Commit error: %v", err)
	}
	if !committed {
		t.Error("Commit = false, want the staged deletions committed")
	}
}

func TestGitRepoCloneUnknownBranch(t *testing.T) {
	upstream := newUpstream(t, map[string]string{"README.md": "seed\n"})

	if _, err := Clone(Config{URL: upstream, Branch: "does-not-exist"}); err == nil {
		t.Fatal("Clone of unknown branch succeeded, want error")
	}
}
