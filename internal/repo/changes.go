package repo

import "github.com/atomicstack/forge/internal/git"

// ChangeStore caches the working-tree status between loads.
type ChangeStore interface {
	Entries() []git.Change
	SetEntries([]git.Change)
	Head() string
	SetHead(string)
}

type changeStore struct {
	entries []git.Change
	head    string
}

func NewChangeStore() ChangeStore {
	return &changeStore{}
}

func (s *changeStore) Entries() []git.Change {
	return cloneChanges(s.entries)
}

func (s *changeStore) SetEntries(entries []git.Change) {
	s.entries = cloneChanges(entries)
}

func (s *changeStore) Head() string {
	return s.head
}

func (s *changeStore) SetHead(head string) {
	s.head = head
}

func cloneChanges(entries []git.Change) []git.Change {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]git.Change, len(entries))
	copy(dup, entries)
	return dup
}
