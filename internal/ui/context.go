package ui

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/forge/internal/action"
	"github.com/atomicstack/forge/internal/git"
	"github.com/atomicstack/forge/internal/input"
	"github.com/atomicstack/forge/internal/store"
)

func (m *Model) mapperContext() input.Context {
	return input.Context{
		Focus:        m.nav.Focus,
		View:         m.nav.View,
		TextActive:   m.textActive(),
		SearchActive: m.views.Dashboard.SearchActive,
		VimKeys:      m.data.Settings.VimKeys,
	}
}

// actionContext snapshots everything the processor may consult.
func (m *Model) actionContext() action.Context {
	ctx := action.Context{
		Focus:         m.nav.Focus,
		View:          m.nav.View,
		MenuIndex:     m.nav.MenuIndex,
		TextActive:    m.textActive(),
		SearchActive:  m.views.Dashboard.SearchActive,
		ModulesColumn: m.views.Modules.Column,
		MergePane:     m.views.Merge.Pane,
		SettingIndex:  m.views.Settings.List.Cursor,
	}
	if op := m.op; op != nil {
		ctx.OperationRunning = true
		ctx.OperationKind = op.Kind().String()
	}
	ctx.ConfirmPush = m.data.Settings.ConfirmPush
	ctx.PushArmed = m.pushArmed
	ctx.StagedCount = m.stagedCount()
	message := m.views.Changes.CommitMessage.String()
	ctx.CommitMessage = message
	ctx.CommitMessageEmpty = strings.TrimSpace(message) == ""
	if change, ok := m.selectedChange(); ok {
		ctx.SelectedPath = change.Path
		ctx.SelectedPathStaged = change.Staged
	}
	if branch, ok := m.selectedBranch(); ok {
		ctx.SelectedBranch = branch.Name
		ctx.SelectedBranchCurrent = branch.Current
	}
	if module, ok := m.selectedModule(); ok {
		ctx.SelectedModuleID = module.ID
	}
	if dev, ok := m.selectedDeveloper(); ok {
		ctx.SelectedDeveloperID = dev.ID
	}
	ctx.BoardModuleID = m.boardSelectedID()
	ctx.MergePath = m.mergeSelectedPath()
	ctx.InputText = m.inputText()
	return ctx
}

func (m *Model) textActive() bool {
	return m.views.Changes.Editing || m.views.Branches.Creating || m.views.Modules.Adding
}

func (m *Model) inputText() string {
	switch {
	case m.views.Dashboard.SearchActive:
		return m.views.Dashboard.Search.String()
	case m.views.Changes.Editing:
		return m.views.Changes.CommitMessage.String()
	case m.views.Branches.Creating:
		return m.views.Branches.NewName.String()
	case m.views.Modules.Adding:
		return m.views.Modules.NewEntry.String()
	}
	return ""
}

func (m *Model) stagedCount() int {
	count := 0
	for _, change := range m.changes.Entries() {
		if change.Staged {
			count++
		}
	}
	return count
}

func (m *Model) selectedChange() (git.Change, bool) {
	entries := m.changes.Entries()
	cursor := m.views.Changes.List.Cursor
	if cursor < 0 || cursor >= len(entries) {
		return git.Change{}, false
	}
	return entries[cursor], true
}

func (m *Model) selectedBranch() (git.Branch, bool) {
	entries := m.branches.Entries()
	cursor := m.views.Branches.List.Cursor
	if cursor < 0 || cursor >= len(entries) {
		return git.Branch{}, false
	}
	return entries[cursor], true
}

// filteredModules applies the dashboard fuzzy filter to the module list.
func (m *Model) filteredModules() []store.Module {
	query := strings.TrimSpace(m.views.Dashboard.Search.String())
	if query == "" {
		return m.data.Modules
	}
	var out []store.Module
	for _, module := range m.data.Modules {
		if fuzzy.MatchFold(query, module.Name) || fuzzy.MatchFold(query, module.Owner) {
			out = append(out, module)
		}
	}
	return out
}

func (m *Model) selectedModule() (store.Module, bool) {
	cursor := m.views.Modules.Modules.Cursor
	if cursor < 0 || cursor >= len(m.data.Modules) {
		return store.Module{}, false
	}
	return m.data.Modules[cursor], true
}

func (m *Model) selectedDeveloper() (store.Developer, bool) {
	cursor := m.views.Modules.Developers.Cursor
	if cursor < 0 || cursor >= len(m.data.Developers) {
		return store.Developer{}, false
	}
	return m.data.Developers[cursor], true
}

func (m *Model) boardColumns() [3][]store.Module {
	pending, current, completed := m.data.ByStatus()
	return [3][]store.Module{pending, current, completed}
}

func (m *Model) boardSelectedID() string {
	columns := m.boardColumns()
	col := m.views.Board.Column
	row := m.views.Board.Row
	if col < 0 || col > 2 {
		return ""
	}
	if row < 0 || row >= len(columns[col]) {
		return ""
	}
	return columns[col][row].ID
}

func (m *Model) mergeSelectedPath() string {
	paths := m.conflicts.Paths()
	cursor := m.views.Merge.Files.Cursor
	if cursor < 0 || cursor >= len(paths) {
		return ""
	}
	return paths[cursor]
}

// syncCounts reconciles every list cursor with its backing collection.
func (m *Model) syncCounts() {
	m.views.Dashboard.List.SetCount(len(m.filteredModules()))
	m.views.Changes.List.SetCount(len(m.changes.Entries()))
	m.views.History.List.SetCount(len(m.commits.Entries()))
	m.views.Branches.List.SetCount(len(m.branches.Entries()))
	m.views.Merge.Files.SetCount(len(m.conflicts.Paths()))
	m.views.Modules.Modules.SetCount(len(m.data.Modules))
	m.views.Modules.Developers.SetCount(len(m.data.Developers))
	m.views.Settings.List.SetCount(len(store.SettingNames()))
	columns := m.boardColumns()
	m.views.Board.SetCounts([3]int{len(columns[0]), len(columns[1]), len(columns[2])})
}
