package repo

import "github.com/atomicstack/forge/internal/git"

// BranchStore caches the local branch list between loads.
type BranchStore interface {
	Entries() []git.Branch
	SetEntries([]git.Branch)
	Current() string
}

type branchStore struct {
	entries []git.Branch
}

func NewBranchStore() BranchStore {
	return &branchStore{}
}

func (s *branchStore) Entries() []git.Branch {
	return cloneBranches(s.entries)
}

func (s *branchStore) SetEntries(entries []git.Branch) {
	s.entries = cloneBranches(entries)
}

func (s *branchStore) Current() string {
	for _, branch := range s.entries {
		if branch.Current {
			return branch.Name
		}
	}
	return ""
}

func cloneBranches(entries []git.Branch) []git.Branch {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]git.Branch, len(entries))
	copy(dup, entries)
	return dup
}
