package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/forge/internal/action"
	"github.com/atomicstack/forge/internal/logging/events"
	"github.com/atomicstack/forge/internal/state"
)

// applyUpdate folds a processor state update into the controller state.
// Entering a data-backed view returns the loaders that refresh it.
func (m *Model) applyUpdate(update action.StateUpdate) tea.Cmd {
	var cmd tea.Cmd

	if update.EnterView != nil {
		from := m.nav.View.String()
		m.nav.EnterView(*update.EnterView)
		events.UI.ViewChange(from, m.nav.View.String())
		events.UI.FocusChange(m.nav.Focus.String())
		cmd = m.loadersForView(m.nav.View)
	}
	if update.CycleView {
		from := m.nav.View.String()
		m.nav.CycleView()
		events.UI.ViewChange(from, m.nav.View.String())
		cmd = m.loadersForView(m.nav.View)
	}
	if update.Back {
		m.nav.Back()
		events.UI.FocusChange(m.nav.Focus.String())
	}
	if update.MenuMove != nil {
		switch *update.MenuMove {
		case action.DirUp:
			m.nav.MenuUp()
		case action.DirDown:
			m.nav.MenuDown()
		}
		events.UI.MenuCursor(m.nav.MenuIndex)
	}
	if update.MenuWrapNext {
		m.nav.MenuNext()
		events.UI.MenuCursor(m.nav.MenuIndex)
	}

	if update.Move != nil {
		m.moveCursor(*update.Move)
	}

	if update.BeginInput {
		m.beginInput()
	}
	if update.EndInput {
		m.endInput()
	}
	if update.BeginSearch {
		m.views.Dashboard.SearchActive = true
	}
	if update.EndSearch {
		m.views.Dashboard.SearchActive = false
	}
	if update.ClearInput {
		m.clearActiveInput(update.EndSearch)
	}
	if update.TextInsert != nil {
		if buffer := m.activeBuffer(); buffer != nil {
			buffer.Insert(*update.TextInsert)
			if m.views.Dashboard.SearchActive {
				m.syncCounts()
			}
		}
	}
	if update.TextBackspace {
		if buffer := m.activeBuffer(); buffer != nil {
			buffer.Backspace()
			if m.views.Dashboard.SearchActive {
				m.syncCounts()
			}
		}
	}
	if update.TextDelete {
		if buffer := m.activeBuffer(); buffer != nil {
			buffer.Delete()
		}
	}
	if update.TextMove != nil {
		if buffer := m.activeBuffer(); buffer != nil {
			switch *update.TextMove {
			case action.DirLeft:
				buffer.Left()
			case action.DirRight:
				buffer.Right()
			case action.DirHome:
				buffer.Home()
			case action.DirEnd:
				buffer.End()
			}
		}
	}

	if update.ToggleModulesColumn {
		m.views.Modules.ToggleColumn()
	}
	if update.NextMergePane {
		m.views.Merge.NextPane()
	}
	if update.ResolveMerge != nil {
		if path := m.mergeSelectedPath(); path != "" {
			m.views.Merge.Resolve(path, *update.ResolveMerge)
		}
	}
	if update.ArmPush {
		m.pushArmed = true
	}
	return cmd
}

func (m *Model) moveCursor(d action.Direction) {
	const page = 10
	switch m.nav.View {
	case state.ViewBoard:
		switch d {
		case action.DirUp:
			m.views.Board.Up()
		case action.DirDown:
			m.views.Board.Down()
		case action.DirLeft:
			m.views.Board.Left()
		case action.DirRight:
			m.views.Board.Right()
		}
		return
	case state.ViewModules:
		m.moveList(m.views.Modules.Active(), d, page)
		return
	}
	if list := m.activeList(); list != nil {
		m.moveList(list, d, page)
	}
}

func (m *Model) moveList(list *state.List, d action.Direction, page int) {
	switch d {
	case action.DirUp:
		list.Up()
	case action.DirDown:
		list.Down()
	case action.DirHome:
		list.Home()
	case action.DirEnd:
		list.End()
	case action.DirPageUp:
		list.PageUp(page)
	case action.DirPageDown:
		list.PageDown(page)
	}
	list.EnsureVisible(m.pageHeight())
}

func (m *Model) activeList() *state.List {
	switch m.nav.View {
	case state.ViewDashboard:
		return &m.views.Dashboard.List
	case state.ViewChanges:
		return &m.views.Changes.List
	case state.ViewHistory:
		return &m.views.History.List
	case state.ViewBranches:
		return &m.views.Branches.List
	case state.ViewMerge:
		return &m.views.Merge.Files
	case state.ViewSettings:
		return &m.views.Settings.List
	}
	return nil
}

func (m *Model) activeBuffer() *state.TextBuffer {
	switch {
	case m.views.Dashboard.SearchActive:
		return &m.views.Dashboard.Search
	case m.views.Changes.Editing:
		return &m.views.Changes.CommitMessage
	case m.views.Branches.Creating:
		return &m.views.Branches.NewName
	case m.views.Modules.Adding:
		return &m.views.Modules.NewEntry
	}
	return nil
}

func (m *Model) beginInput() {
	switch m.nav.View {
	case state.ViewChanges:
		m.views.Changes.Editing = true
	case state.ViewBranches:
		m.views.Branches.Creating = true
	case state.ViewModules:
		m.views.Modules.Adding = true
	}
}

func (m *Model) endInput() {
	m.views.Changes.Editing = false
	m.views.Branches.Creating = false
	m.views.Modules.Adding = false
}

func (m *Model) clearActiveInput(searchEnded bool) {
	if searchEnded {
		m.views.Dashboard.Search.Clear()
		m.syncCounts()
		return
	}
	m.views.Changes.CommitMessage.Clear()
	m.views.Branches.NewName.Clear()
	m.views.Modules.NewEntry.Clear()
}
