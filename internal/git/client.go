package git

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/atomicstack/forge/internal/logging/events"
)

// Client wraps a repository opened from disk. All methods operate on the
// repository the client was discovered from.
type Client struct {
	repo *gogit.Repository
	root string
}

// Discover opens the repository containing path, walking upward the way the
// git CLI does. An empty path means the working directory.
func Discover(path string) (*Client, error) {
	if path == "" {
		path = "."
	}
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", path, err)
	}
	root := path
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}
	return &Client{repo: repo, root: root}, nil
}

// Root returns the worktree root directory.
func (c *Client) Root() string {
	return c.root
}

// MetadataDir returns the directory used for application data files.
func (c *Client) MetadataDir() string {
	return filepath.Join(c.root, ".git", "forge")
}

// HeadBranch returns the short name of the checked-out branch.
func (c *Client) HeadBranch() (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return head.Hash().String()[:7], nil
	}
	return head.Name().Short(), nil
}

// Status lists working-tree changes, staged entries first, sorted by path
// within each group.
func (c *Client) Status() ([]Change, error) {
	events.Git.Call("status")
	wt, err := c.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("read status: %w", err)
	}
	changes := make([]Change, 0, len(status))
	for path, st := range status {
		change, ok := classifyStatus(path, st)
		if !ok {
			continue
		}
		changes = append(changes, change)
	}
	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Staged != changes[j].Staged {
			return changes[i].Staged
		}
		return changes[i].Path < changes[j].Path
	})
	return changes, nil
}

func classifyStatus(path string, st *gogit.FileStatus) (Change, bool) {
	if st.Staging == gogit.Unmodified && st.Worktree == gogit.Unmodified {
		return Change{}, false
	}
	change := Change{Path: path}
	if st.Staging == gogit.UpdatedButUnmerged || st.Worktree == gogit.UpdatedButUnmerged {
		change.Kind = KindConflicted
		return change, true
	}
	if st.Staging == gogit.Untracked && st.Worktree == gogit.Untracked {
		change.Kind = KindUntracked
		return change, true
	}
	change.Staged = st.Staging != gogit.Unmodified && st.Staging != gogit.Untracked
	code := st.Worktree
	if change.Staged {
		code = st.Staging
	}
	switch code {
	case gogit.Added, gogit.Copied:
		change.Kind = KindAdded
	case gogit.Deleted:
		change.Kind = KindDeleted
	case gogit.Renamed:
		change.Kind = KindRenamed
	default:
		change.Kind = KindModified
	}
	return change, true
}

// Conflicts lists the paths currently in an unmerged state.
func (c *Client) Conflicts() ([]string, error) {
	changes, err := c.Status()
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, change := range changes {
		if change.Kind == KindConflicted {
			paths = append(paths, change.Path)
		}
	}
	return paths, nil
}

// Stage adds path to the index.
func (c *Client) Stage(path string) error {
	events.Git.Call("stage")
	wt, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	if _, err := wt.Add(path); err != nil {
		return fmt.Errorf("stage %s: %w", path, err)
	}
	return nil
}

// Unstage restores path in the index from HEAD.
func (c *Client) Unstage(path string) error {
	events.Git.Call("unstage")
	wt, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	if err := wt.Restore(&gogit.RestoreOptions{Staged: true, Files: []string{path}}); err != nil {
		return fmt.Errorf("unstage %s: %w", path, err)
	}
	return nil
}

// Commit records the staged changes and returns the new commit hash.
func (c *Client) Commit(message string) (string, error) {
	events.Git.Call("commit")
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("commit message must not be empty")
	}
	wt, err := c.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}
	hash, err := wt.Commit(message, &gogit.CommitOptions{Author: c.signature()})
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return hash.String(), nil
}

func (c *Client) signature() *object.Signature {
	sig := &object.Signature{Name: "forge", Email: "forge@localhost", When: time.Now()}
	cfg, err := c.repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}

// Branches lists local branches sorted by name, marking the checked-out one.
func (c *Client) Branches() ([]Branch, error) {
	events.Git.Call("branches")
	current := ""
	if head, err := c.repo.Head(); err == nil && head.Name().IsBranch() {
		current = head.Name().Short()
	}
	iter, err := c.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	var branches []Branch
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		branches = append(branches, Branch{Name: name, Current: name == current})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

// CreateBranch creates a branch at HEAD without switching to it.
func (c *Client) CreateBranch(name string) error {
	events.Git.Call("create-branch")
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("branch name must not be empty")
	}
	head, err := c.repo.Head()
	if err != nil {
		return fmt.Errorf("resolve HEAD: %w", err)
	}
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), head.Hash())
	if _, err := c.repo.Reference(ref.Name(), false); err == nil {
		return fmt.Errorf("branch %s already exists", name)
	}
	if err := c.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("create branch %s: %w", name, err)
	}
	return nil
}

// SwitchBranch checks out the named branch.
func (c *Client) SwitchBranch(name string) error {
	events.Git.Call("switch-branch")
	wt, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	err = wt.Checkout(&gogit.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(name)})
	if err != nil {
		return fmt.Errorf("switch to %s: %w", name, err)
	}
	return nil
}

// DeleteBranch removes the named branch. The checked-out branch is refused.
func (c *Client) DeleteBranch(name string) error {
	events.Git.Call("delete-branch")
	if head, err := c.repo.Head(); err == nil && head.Name().Short() == name {
		return fmt.Errorf("cannot delete the checked-out branch %s", name)
	}
	refName := plumbing.NewBranchReferenceName(name)
	if _, err := c.repo.Reference(refName, false); err != nil {
		return fmt.Errorf("branch %s not found", name)
	}
	if err := c.repo.Storer.RemoveReference(refName); err != nil {
		return fmt.Errorf("delete branch %s: %w", name, err)
	}
	return nil
}

// Log returns up to limit commits from HEAD, newest first, with the files
// each commit touched.
func (c *Client) Log(limit int) ([]Commit, error) {
	events.Git.Call("log")
	head, err := c.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	iter, err := c.repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()
	var commits []Commit
	for limit <= 0 || len(commits) < limit {
		commit, err := iter.Next()
		if err != nil {
			break
		}
		entry := Commit{
			Hash:    commit.Hash.String(),
			Author:  commit.Author.Name,
			Email:   commit.Author.Email,
			Date:    commit.Author.When,
			Message: strings.TrimRight(commit.Message, "\n"),
		}
		if stats, err := commit.Stats(); err == nil {
			for _, stat := range stats {
				entry.Files = append(entry.Files, stat.Name)
			}
		}
		commits = append(commits, entry)
	}
	return commits, nil
}

// Committers returns the distinct author names from the most recent commits,
// most recent first.
func (c *Client) Committers(limit int) ([]string, error) {
	commits, err := c.Log(limit)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(commits))
	var names []string
	for _, commit := range commits {
		if _, ok := seen[commit.Author]; ok {
			continue
		}
		seen[commit.Author] = struct{}{}
		names = append(names, commit.Author)
	}
	return names, nil
}

// Remotes lists the configured remote names.
func (c *Client) Remotes() ([]string, error) {
	remotes, err := c.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}
	names := make([]string, 0, len(remotes))
	for _, remote := range remotes {
		names = append(names, remote.Config().Name)
	}
	sort.Strings(names)
	return names, nil
}
