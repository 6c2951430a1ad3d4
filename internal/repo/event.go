package repo

import "github.com/atomicstack/forge/internal/git"

// Kind represents the type of data carried by a loader event.
type Kind int

const (
	KindStatus Kind = iota
	KindBranches
	KindHistory
	KindConflicts
)

// Event conveys a loaded snapshot or the error that replaced it.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// StatusSnapshot is the working-tree state at load time.
type StatusSnapshot struct {
	Head    string
	Changes []git.Change
}

// BranchSnapshot is the branch list at load time.
type BranchSnapshot struct {
	Branches []git.Branch
}

// HistorySnapshot is the recent log at load time.
type HistorySnapshot struct {
	Commits []git.Commit
}

// ConflictSnapshot is the unmerged path set at load time, with previews for
// the paths that have them.
type ConflictSnapshot struct {
	Paths    []string
	Previews map[string]git.DiffPreview
}
