package git

import (
	"context"
	"errors"
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/atomicstack/forge/internal/logging/events"
)

// Fetch downloads objects and refs from the named remote, reporting progress
// to sink. Already-up-to-date counts as success.
func (c *Client) Fetch(ctx context.Context, remote string, sink ProgressSink) error {
	events.Git.Call("fetch")
	return c.withCredentials(remote, func(auth transport.AuthMethod) error {
		return c.repo.FetchContext(ctx, &gogit.FetchOptions{
			RemoteName: remote,
			Progress:   newSidebandWriter(sink),
			Auth:       auth,
		})
	})
}

// Push uploads the current refs to the named remote.
func (c *Client) Push(ctx context.Context, remote string, sink ProgressSink) error {
	events.Git.Call("push")
	return c.withCredentials(remote, func(auth transport.AuthMethod) error {
		return c.repo.PushContext(ctx, &gogit.PushOptions{
			RemoteName: remote,
			Progress:   newSidebandWriter(sink),
			Auth:       auth,
		})
	})
}

// Pull fast-forwards the checked-out branch from the named remote. A
// non-fast-forward head is reported as a ConflictError naming the paths that
// differ between the local and remote heads.
func (c *Client) Pull(ctx context.Context, remote string, sink ProgressSink) error {
	events.Git.Call("pull")
	wt, err := c.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	err = c.withCredentials(remote, func(auth transport.AuthMethod) error {
		return wt.PullContext(ctx, &gogit.PullOptions{
			RemoteName: remote,
			Progress:   newSidebandWriter(sink),
			Auth:       auth,
		})
	})
	if errors.Is(err, gogit.ErrNonFastForwardUpdate) {
		paths, pathsErr := c.divergingPaths(remote)
		if pathsErr != nil {
			events.Git.Error("pull", pathsErr)
		}
		return &ConflictError{Paths: paths}
	}
	return err
}

// withCredentials walks the credential chain, advancing past candidates the
// remote rejects for authentication and stopping on any other outcome.
func (c *Client) withCredentials(remote string, run func(transport.AuthMethod) error) error {
	url, err := c.remoteURL(remote)
	if err != nil {
		return err
	}
	candidates := credentialCandidates(url)
	var lastErr error
	for _, auth := range candidates {
		err := run(auth)
		if err == nil || errors.Is(err, gogit.NoErrAlreadyUpToDate) {
			return nil
		}
		if Classify(err) != ClassAuthentication {
			return err
		}
		lastErr = err
	}
	if lastErr != nil {
		return fmt.Errorf("all credentials rejected: %w", lastErr)
	}
	return transport.ErrAuthenticationRequired
}

func (c *Client) remoteURL(remote string) (string, error) {
	r, err := c.repo.Remote(remote)
	if err != nil {
		return "", fmt.Errorf("remote %s: %w", remote, err)
	}
	urls := r.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", remote)
	}
	return urls[0], nil
}

// divergingPaths diffs the local head tree against the remote-tracking tree
// for the checked-out branch.
func (c *Client) divergingPaths(remote string) ([]string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return nil, err
	}
	branch := head.Name().Short()
	remoteRef, err := c.repo.Reference(plumbing.NewRemoteReferenceName(remote, branch), true)
	if err != nil {
		return nil, err
	}
	localTree, err := c.treeAt(head.Hash())
	if err != nil {
		return nil, err
	}
	remoteTree, err := c.treeAt(remoteRef.Hash())
	if err != nil {
		return nil, err
	}
	diffs, err := object.DiffTree(localTree, remoteTree)
	if err != nil {
		return nil, err
	}
	pathSet := make(map[string]struct{}, len(diffs))
	for _, change := range diffs {
		if change.From.Name != "" {
			pathSet[change.From.Name] = struct{}{}
		}
		if change.To.Name != "" {
			pathSet[change.To.Name] = struct{}{}
		}
	}
	paths := make([]string, 0, len(pathSet))
	for path := range pathSet {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

func (c *Client) treeAt(hash plumbing.Hash) (*object.Tree, error) {
	commit, err := c.repo.CommitObject(hash)
	if err != nil {
		return nil, err
	}
	return commit.Tree()
}
