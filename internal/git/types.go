package git

import "time"

// ChangeKind categorizes a working-tree entry.
type ChangeKind int

const (
	KindModified ChangeKind = iota
	KindAdded
	KindDeleted
	KindRenamed
	KindUntracked
	KindConflicted
)

func (k ChangeKind) String() string {
	switch k {
	case KindModified:
		return "modified"
	case KindAdded:
		return "added"
	case KindDeleted:
		return "deleted"
	case KindRenamed:
		return "renamed"
	case KindUntracked:
		return "untracked"
	case KindConflicted:
		return "conflicted"
	}
	return "unknown"
}

// Change is one working-tree entry from status.
type Change struct {
	Path   string
	Kind   ChangeKind
	Staged bool
}

// Commit is one history entry.
type Commit struct {
	Hash    string
	Author  string
	Email   string
	Date    time.Time
	Message string
	Files   []string
}

// Branch is one local branch.
type Branch struct {
	Name    string
	Current bool
}

// DiffPreview pairs the two sides shown by the merge view for one file.
type DiffPreview struct {
	Local    string
	Incoming string
}
