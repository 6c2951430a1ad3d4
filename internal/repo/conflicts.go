package repo

import "github.com/atomicstack/forge/internal/git"

// ConflictStore caches the unmerged paths and their merge-view previews.
type ConflictStore interface {
	Paths() []string
	SetPaths([]string)
	Preview(path string) (git.DiffPreview, bool)
	SetPreview(path string, preview git.DiffPreview)
}

type conflictStore struct {
	paths    []string
	previews map[string]git.DiffPreview
}

func NewConflictStore() ConflictStore {
	return &conflictStore{previews: make(map[string]git.DiffPreview)}
}

func (s *conflictStore) Paths() []string {
	if len(s.paths) == 0 {
		return nil
	}
	dup := make([]string, len(s.paths))
	copy(dup, s.paths)
	return dup
}

func (s *conflictStore) SetPaths(paths []string) {
	if len(paths) == 0 {
		s.paths = nil
	} else {
		s.paths = make([]string, len(paths))
		copy(s.paths, paths)
	}
	// Previews for paths no longer conflicted are stale.
	keep := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		keep[path] = struct{}{}
	}
	for path := range s.previews {
		if _, ok := keep[path]; !ok {
			delete(s.previews, path)
		}
	}
}

func (s *conflictStore) Preview(path string) (git.DiffPreview, bool) {
	preview, ok := s.previews[path]
	return preview, ok
}

func (s *conflictStore) SetPreview(path string, preview git.DiffPreview) {
	s.previews[path] = preview
}
