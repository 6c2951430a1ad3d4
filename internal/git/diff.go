package git

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff of path between HEAD and the working tree.
func (c *Client) Diff(path string) (string, error) {
	old, err := c.headContent(path)
	if err != nil {
		return "", err
	}
	current, err := c.worktreeContent(path)
	if err != nil {
		return "", err
	}
	return lineDiff(old, current), nil
}

// DiffPreviews returns the two merge-view panes for path: the local side
// (index against working tree) and the incoming side (HEAD against index).
func (c *Client) DiffPreviews(path string) (DiffPreview, error) {
	head, err := c.headContent(path)
	if err != nil {
		return DiffPreview{}, err
	}
	index, err := c.indexContent(path)
	if err != nil {
		return DiffPreview{}, err
	}
	worktree, err := c.worktreeContent(path)
	if err != nil {
		return DiffPreview{}, err
	}
	return DiffPreview{
		Local:    lineDiff(index, worktree),
		Incoming: lineDiff(head, index),
	}, nil
}

func (c *Client) headContent(path string) (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", nil
	}
	commit, err := c.repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("resolve HEAD commit: %w", err)
	}
	file, err := commit.File(path)
	if err == object.ErrFileNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s at HEAD: %w", path, err)
	}
	return file.Contents()
}

func (c *Client) indexContent(path string) (string, error) {
	idx, err := c.repo.Storer.Index()
	if err != nil {
		return "", fmt.Errorf("read index: %w", err)
	}
	entry, err := idx.Entry(path)
	if err != nil {
		return "", nil
	}
	blob, err := c.repo.BlobObject(entry.Hash)
	if err != nil {
		if err == plumbing.ErrObjectNotFound {
			return "", nil
		}
		return "", fmt.Errorf("read %s from index: %w", path, err)
	}
	reader, err := blob.Reader()
	if err != nil {
		return "", fmt.Errorf("read %s from index: %w", path, err)
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read %s from index: %w", path, err)
	}
	return string(data), nil
}

func (c *Client) worktreeContent(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(c.root, path))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// lineDiff renders a minimal line-oriented diff with +/- prefixes.
func lineDiff(old, current string) string {
	if old == current {
		return ""
	}
	dmp := diffmatchpatch.New()
	oldRunes, newRunes, lines := dmp.DiffLinesToRunes(old, current)
	diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var b strings.Builder
	for _, diff := range diffs {
		prefix := " "
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range splitKeepingLines(diff.Text) {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func splitKeepingLines(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
