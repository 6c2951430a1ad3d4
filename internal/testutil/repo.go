package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo is a throwaway repository for exercising the git layer.
type Repo struct {
	T   *testing.T
	Dir string
}

// NewRepo initializes a repository in a temp directory with one commit so
// HEAD resolves.
func NewRepo(t *testing.T) *Repo {
	t.Helper()
	dir := t.TempDir()
	if _, err := gogit.PlainInit(dir, false); err != nil {
		t.Fatalf("init repository: %v", err)
	}
	r := &Repo{T: t, Dir: dir}
	r.WriteFile("README.md", "seed\n")
	r.Stage("README.md")
	r.Commit("initial commit")
	return r
}

// WriteFile writes content to name under the repository root.
func (r *Repo) WriteFile(name, content string) {
	r.T.Helper()
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.T.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.T.Fatalf("write %s: %v", name, err)
	}
}

// Stage adds name to the index.
func (r *Repo) Stage(name string) {
	r.T.Helper()
	wt := r.worktree()
	if _, err := wt.Add(name); err != nil {
		r.T.Fatalf("stage %s: %v", name, err)
	}
}

// Commit records the index with a fixed author and returns the hash.
func (r *Repo) Commit(message string) string {
	r.T.Helper()
	wt := r.worktree()
	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test Author", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		r.T.Fatalf("commit: %v", err)
	}
	return hash.String()
}

// AddRemote registers a remote pointing at url.
func (r *Repo) AddRemote(name, url string) {
	r.T.Helper()
	repo := r.open()
	_, err := repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
	if err != nil {
		r.T.Fatalf("add remote %s: %v", name, err)
	}
}

// NewBareRemote initializes a bare repository and returns its path, usable
// as a file:// remote URL target.
func NewBareRemote(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if _, err := gogit.PlainInit(dir, true); err != nil {
		t.Fatalf("init bare repository: %v", err)
	}
	return dir
}

func (r *Repo) open() *gogit.Repository {
	r.T.Helper()
	repo, err := gogit.PlainOpen(r.Dir)
	if err != nil {
		r.T.Fatalf("open repository: %v", err)
	}
	return repo
}

func (r *Repo) worktree() *gogit.Worktree {
	r.T.Helper()
	wt, err := r.open().Worktree()
	if err != nil {
		r.T.Fatalf("open worktree: %v", err)
	}
	return wt
}
