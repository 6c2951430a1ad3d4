package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/forge/internal/action"
	"github.com/atomicstack/forge/internal/async"
	"github.com/atomicstack/forge/internal/logging"
	"github.com/atomicstack/forge/internal/logging/events"
)

// applyResult executes the side effects a processed action asked for.
func (m *Model) applyResult(res action.Result) tea.Cmd {
	if res.Quit {
		// A running operation is abandoned, not awaited: its goroutine dies
		// with the process.
		m.quitting = true
		events.App.Exit("user")
		return tea.Quit
	}

	var cmds []tea.Cmd

	if res.Status != "" {
		m.setStatus(res.Status)
	}
	if res.StartOp != action.OpNone {
		if cmd := m.startOperation(res.StartOp); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if res.CancelOp {
		if m.engine.Cancel() {
			m.setStatus("cancelling " + m.opKindLabel() + "...")
		}
	}
	if res.Intent != nil {
		m.executeIntent(*res.Intent)
	}
	if res.Persist {
		if err := m.data.Save(); err != nil {
			logging.Error(err)
			m.errMsg = "failed to save project data"
		}
	}
	if res.Refresh {
		cmds = append(cmds, m.refreshCmds()...)
	}

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) startOperation(op action.OpKind) tea.Cmd {
	var kind async.Kind
	switch op {
	case action.OpFetch:
		kind = async.KindFetch
	case action.OpPush:
		kind = async.KindPush
	case action.OpPull:
		kind = async.KindPull
	default:
		return nil
	}
	operation, err := m.engine.Start(kind)
	if err != nil {
		m.setStatus(err.Error())
		return nil
	}
	m.op = operation
	m.opSnapshot = nil
	m.setStatus(kind.String() + " started")
	return waitForOperation(operation)
}

func (m *Model) opKindLabel() string {
	if m.op == nil {
		return "operation"
	}
	return m.op.Kind().String()
}
