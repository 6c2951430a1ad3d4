// Package ui contains the Bubble Tea program that powers the project board.
// The Model type focuses on message orchestration, while dedicated helpers own
// input mapping, state application, rendering, and async operation tracking.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Messages route through a typed handler registry so each tea.Msg is
//     handled by a focused function: key presses run through the input mapper
//     and the action processor, repository loader results go to the data
//     dispatcher, and operation events update the progress readout.
//   - The action processor (internal/action) is a pure function. The model
//     assembles its context from live state, applies the returned state update
//     verbatim, then executes whatever effects the result asked for.
//
// State ownership:
//   - Focus and the active page live in state.Navigation; per-page cursors and
//     text buffers live in state.Views. Neither holds repository data.
//   - Working-tree, branch, history, and conflict snapshots are cached by the
//     internal/repo stores and kept in sync by the dispatcher, so rendering
//     always reads consistent data.
//   - Modules, developers, and settings persist through internal/store.
//
// Repository interactions:
//   - Loader commands read the repository off the UI goroutine and return
//     typed snapshot events.
//   - Remote operations run on the single-slot async engine; the model waits
//     on the event stream with a self-re-arming command, draining stale
//     progress snapshots so the readout never lags the transport.
package ui
