package ui

import (
	"fmt"

	"github.com/atomicstack/forge/internal/action"
	"github.com/atomicstack/forge/internal/logging/events"
)

// executeIntent runs one synchronous effect against the git client or the
// data store. Failures become the error line; they never crash the UI.
func (m *Model) executeIntent(intent action.Intent) {
	switch intent.Kind {
	case action.IntentCommit:
		events.Action.Intent("commit")
		hash, err := m.client.Commit(intent.Message)
		if err != nil {
			m.fail("commit", err)
			return
		}
		m.data.BumpProgressOnCommit()
		m.setStatus(fmt.Sprintf("✓ Committed %s: %s", shortHash(hash), intent.Message))

	case action.IntentToggleStage:
		events.Action.Intent("toggle-stage")
		var err error
		if intent.Staged {
			err = m.client.Unstage(intent.Path)
		} else {
			err = m.client.Stage(intent.Path)
		}
		if err != nil {
			m.fail("stage", err)
		}

	case action.IntentCreateBranch:
		events.Action.Intent("create-branch")
		if err := m.client.CreateBranch(intent.Name); err != nil {
			m.fail("create branch", err)
			return
		}
		m.setStatus("created branch " + intent.Name)

	case action.IntentSwitchBranch:
		events.Action.Intent("switch-branch")
		if err := m.client.SwitchBranch(intent.Branch); err != nil {
			m.fail("switch branch", err)
			return
		}
		m.setStatus("switched to " + intent.Branch)

	case action.IntentDeleteBranch:
		events.Action.Intent("delete-branch")
		if err := m.client.DeleteBranch(intent.Branch); err != nil {
			m.fail("delete branch", err)
			return
		}
		m.setStatus("deleted branch " + intent.Branch)

	case action.IntentBoardAdvance:
		events.Action.Intent("board-advance")
		if m.data.AdvanceModule(intent.ModuleID) {
			m.syncCounts()
		}

	case action.IntentAddModule:
		events.Action.Intent("add-module")
		module := m.data.AddModule(intent.Name)
		m.syncCounts()
		m.setStatus("added module " + module.Name)

	case action.IntentDeleteModule:
		events.Action.Intent("delete-module")
		if m.data.DeleteModule(intent.ModuleID) {
			m.syncCounts()
			m.setStatus("module removed")
		}

	case action.IntentAddDeveloper:
		events.Action.Intent("add-developer")
		dev := m.data.AddDeveloper(intent.Name)
		m.syncCounts()
		m.setStatus("added developer " + dev.Name)

	case action.IntentDeleteDeveloper:
		events.Action.Intent("delete-developer")
		if m.data.DeleteDeveloper(intent.DeveloperID) {
			m.syncCounts()
			m.setStatus("developer removed")
		}

	case action.IntentAssignOwner:
		events.Action.Intent("assign-owner")
		if !m.data.CycleOwner(intent.ModuleID) {
			m.setStatus("no developers to assign")
		}

	case action.IntentToggleSetting:
		events.Action.Intent("toggle-setting")
		m.data.ToggleSetting(intent.SettingIndex)
	}
}

func (m *Model) fail(op string, err error) {
	events.Git.Error(op, err)
	m.errMsg = fmt.Sprintf("%s failed: %v", op, err)
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
