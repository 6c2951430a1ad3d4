package repo

import "github.com/atomicstack/forge/internal/git"

// CommitStore caches the recent history between loads.
type CommitStore interface {
	Entries() []git.Commit
	SetEntries([]git.Commit)
}

type commitStore struct {
	entries []git.Commit
}

func NewCommitStore() CommitStore {
	return &commitStore{}
}

func (s *commitStore) Entries() []git.Commit {
	return cloneCommits(s.entries)
}

func (s *commitStore) SetEntries(entries []git.Commit) {
	s.entries = cloneCommits(entries)
}

func cloneCommits(entries []git.Commit) []git.Commit {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]git.Commit, len(entries))
	copy(dup, entries)
	return dup
}
