package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/forge/internal/git"
	"github.com/atomicstack/forge/internal/logging/events"
	repodata "github.com/atomicstack/forge/internal/repo"
	"github.com/atomicstack/forge/internal/state"
)

type repoEventMsg struct {
	event repodata.Event
}

// loadStatusCmd reads the working tree and head branch off the UI goroutine.
func (m *Model) loadStatusCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		events.Git.Call("status")
		changes, err := client.Status()
		if err != nil {
			events.Git.Error("status", err)
			return repoEventMsg{event: repodata.Event{Kind: repodata.KindStatus, Err: err}}
		}
		head, err := client.HeadBranch()
		if err != nil {
			events.Git.Error("head", err)
			return repoEventMsg{event: repodata.Event{Kind: repodata.KindStatus, Err: err}}
		}
		return repoEventMsg{event: repodata.Event{
			Kind: repodata.KindStatus,
			Data: repodata.StatusSnapshot{Head: head, Changes: changes},
		}}
	}
}

func (m *Model) loadBranchesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		events.Git.Call("branches")
		branches, err := client.Branches()
		if err != nil {
			events.Git.Error("branches", err)
			return repoEventMsg{event: repodata.Event{Kind: repodata.KindBranches, Err: err}}
		}
		return repoEventMsg{event: repodata.Event{
			Kind: repodata.KindBranches,
			Data: repodata.BranchSnapshot{Branches: branches},
		}}
	}
}

func (m *Model) loadHistoryCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		events.Git.Call("log")
		commits, err := client.Log(historyLimit)
		if err != nil {
			events.Git.Error("log", err)
			return repoEventMsg{event: repodata.Event{Kind: repodata.KindHistory, Err: err}}
		}
		return repoEventMsg{event: repodata.Event{
			Kind: repodata.KindHistory,
			Data: repodata.HistorySnapshot{Commits: commits},
		}}
	}
}

func (m *Model) loadConflictsCmd() tea.Cmd {
	client := m.client
	withPreviews := m.data.Settings.DiffPreview
	return func() tea.Msg {
		events.Git.Call("conflicts")
		paths, err := client.Conflicts()
		if err != nil {
			events.Git.Error("conflicts", err)
			return repoEventMsg{event: repodata.Event{Kind: repodata.KindConflicts, Err: err}}
		}
		snapshot := repodata.ConflictSnapshot{Paths: paths}
		if withPreviews && len(paths) > 0 {
			snapshot.Previews = make(map[string]git.DiffPreview, len(paths))
			for _, path := range paths {
				preview, err := client.DiffPreviews(path)
				if err != nil {
					events.Git.Error("preview", err)
					continue
				}
				snapshot.Previews[path] = preview
			}
		}
		return repoEventMsg{event: repodata.Event{Kind: repodata.KindConflicts, Data: snapshot}}
	}
}

// refreshCmds reloads every repository-backed collection.
func (m *Model) refreshCmds() []tea.Cmd {
	return []tea.Cmd{
		m.loadStatusCmd(),
		m.loadBranchesCmd(),
		m.loadHistoryCmd(),
		m.loadConflictsCmd(),
	}
}

// loadersForView refreshes only what the given view reads. With auto refresh
// off, entering a view shows the cached snapshot; r reloads on demand.
func (m *Model) loadersForView(v state.ViewMode) tea.Cmd {
	if !m.data.Settings.AutoRefresh {
		return nil
	}
	switch v {
	case state.ViewChanges:
		return m.loadStatusCmd()
	case state.ViewHistory:
		return m.loadHistoryCmd()
	case state.ViewBranches:
		return m.loadBranchesCmd()
	case state.ViewMerge:
		return m.loadConflictsCmd()
	}
	return nil
}

func (m *Model) handleRepoEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(repoEventMsg)
	if !ok {
		return nil
	}
	if err := eventMsg.event.Err; err != nil {
		m.errMsg = git.Explain(err)
		return nil
	}
	m.errMsg = ""
	m.dispatcher.Handle(eventMsg.event)
	m.syncCounts()
	return nil
}
