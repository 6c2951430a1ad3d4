package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/forge/internal/async"
)

type operationEventMsg struct {
	op    *async.Operation
	event async.Event
}

type operationDoneMsg struct {
	op *async.Operation
}

// waitForOperation blocks on the operation's event stream and reports the
// newest event. Stale snapshots are drained so the UI never falls behind the
// transport.
func waitForOperation(op *async.Operation) tea.Cmd {
	return func() tea.Msg {
		first, ok := <-op.Events()
		if !ok {
			return operationDoneMsg{op: op}
		}
		return operationEventMsg{op: op, event: async.Latest(op.Events(), first)}
	}
}

func (m *Model) handleOperationEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(operationEventMsg)
	if !ok || eventMsg.op != m.op {
		return nil
	}
	if outcome := eventMsg.event.Outcome; outcome != nil {
		return m.finishOperation(outcome)
	}
	m.opSnapshot = eventMsg.event.Snapshot
	return waitForOperation(eventMsg.op)
}

func (m *Model) handleOperationDoneMsg(msg tea.Msg) tea.Cmd {
	doneMsg, ok := msg.(operationDoneMsg)
	if !ok || doneMsg.op != m.op {
		return nil
	}
	m.op = nil
	m.opSnapshot = nil
	return nil
}

func (m *Model) finishOperation(outcome *async.Outcome) tea.Cmd {
	m.op = nil
	m.opSnapshot = nil
	switch outcome.Status {
	case async.StatusSucceeded:
		m.setStatus("✓ " + outcome.Message)
	case async.StatusCancelled:
		m.setStatus(outcome.Message)
	default:
		m.setStatus("✗ " + outcome.Message)
	}
	// Remote state may have moved regardless of how the operation ended; a
	// pull that stopped on conflicts must repopulate the merge view.
	return tea.Batch(m.refreshCmds()...)
}
