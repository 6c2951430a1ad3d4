package dispatcher

import (
	"github.com/atomicstack/forge/internal/repo"
)

type Result struct {
	ChangesUpdated   bool
	BranchesUpdated  bool
	HistoryUpdated   bool
	ConflictsUpdated bool
}

type Dispatcher struct {
	changes   repo.ChangeStore
	branches  repo.BranchStore
	commits   repo.CommitStore
	conflicts repo.ConflictStore
}

func New(c repo.ChangeStore, b repo.BranchStore, h repo.CommitStore, x repo.ConflictStore) *Dispatcher {
	return &Dispatcher{changes: c, branches: b, commits: h, conflicts: x}
}

func (d *Dispatcher) Handle(evt repo.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case repo.KindStatus:
		if snapshot, ok := evt.Data.(repo.StatusSnapshot); ok {
			d.changes.SetEntries(snapshot.Changes)
			d.changes.SetHead(snapshot.Head)
			res.ChangesUpdated = true
		}
	case repo.KindBranches:
		if snapshot, ok := evt.Data.(repo.BranchSnapshot); ok {
			d.branches.SetEntries(snapshot.Branches)
			res.BranchesUpdated = true
		}
	case repo.KindHistory:
		if snapshot, ok := evt.Data.(repo.HistorySnapshot); ok {
			d.commits.SetEntries(snapshot.Commits)
			res.HistoryUpdated = true
		}
	case repo.KindConflicts:
		if snapshot, ok := evt.Data.(repo.ConflictSnapshot); ok {
			d.conflicts.SetPaths(snapshot.Paths)
			for path, preview := range snapshot.Previews {
				d.conflicts.SetPreview(path, preview)
			}
			res.ConflictsUpdated = true
		}
	}
	return res
}
