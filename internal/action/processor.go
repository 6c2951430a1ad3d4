package action

import (
	"fmt"
	"strings"

	"github.com/atomicstack/forge/internal/state"
)

// MenuHint is shown whenever focus returns to the menu.
const MenuHint = "Menu: Tab to navigate, ↵ to select, q to quit"

// Process turns one action into a result and a state update. It is a pure
// function of its arguments: no I/O, no clocks, no access to live state.
func Process(a Action, ctx Context) (Result, StateUpdate) {
	switch a.Kind {
	case Quit:
		return Result{Quit: true}, StateUpdate{}

	case MenuUp:
		return Result{}, StateUpdate{MenuMove: dir(DirUp)}
	case MenuDown:
		return Result{}, StateUpdate{MenuMove: dir(DirDown)}
	case MenuCycle:
		return Result{}, StateUpdate{MenuWrapNext: true}
	case MenuSelect:
		return menuSelect(ctx)

	case Back:
		return back(ctx)
	case CycleView:
		return Result{}, StateUpdate{CycleView: true}
	case OpenHelp:
		return Result{}, StateUpdate{EnterView: view(state.ViewHelp)}

	case NavUp, NavDown, NavLeft, NavRight, NavHome, NavEnd, NavPageUp, NavPageDown:
		return navigate(a.Kind, ctx)

	case Select:
		return selectCurrent(ctx)
	case Commit:
		return commit(ctx)
	case ToggleStage:
		return toggleStage(ctx)
	case Refresh:
		return Result{Refresh: true}, StateUpdate{}

	case StartFetch:
		return startOperation(OpFetch, ctx)
	case StartPush:
		return startOperation(OpPush, ctx)
	case StartPull:
		return startOperation(OpPull, ctx)
	case CancelOperation:
		if !ctx.OperationRunning {
			return Result{}, StateUpdate{}
		}
		return Result{CancelOp: true}, StateUpdate{}

	case BeginInput:
		return beginInput(ctx)
	case BeginSearch:
		if ctx.View == state.ViewDashboard {
			return Result{}, StateUpdate{BeginSearch: true}
		}
		return Result{}, StateUpdate{}
	case SubmitInput:
		return submitInput(ctx)
	case InputRune:
		if ctx.TextActive || ctx.SearchActive {
			r := a.Rune
			return Result{}, StateUpdate{TextInsert: &r}
		}
		return Result{}, StateUpdate{}
	case InputBackspace:
		return textUpdate(ctx, StateUpdate{TextBackspace: true})
	case InputDelete:
		return textUpdate(ctx, StateUpdate{TextDelete: true})
	case InputLeft:
		return textUpdate(ctx, StateUpdate{TextMove: dir(DirLeft)})
	case InputRight:
		return textUpdate(ctx, StateUpdate{TextMove: dir(DirRight)})
	case InputHome:
		return textUpdate(ctx, StateUpdate{TextMove: dir(DirHome)})
	case InputEnd:
		return textUpdate(ctx, StateUpdate{TextMove: dir(DirEnd)})

	case DeleteItem:
		return deleteItem(ctx)
	case ToggleColumn:
		if ctx.View == state.ViewModules {
			return Result{}, StateUpdate{ToggleModulesColumn: true}
		}
		return Result{}, StateUpdate{}
	case NextPane:
		if ctx.View == state.ViewMerge {
			return Result{}, StateUpdate{NextMergePane: true}
		}
		return Result{}, StateUpdate{}
	case AcceptLocal:
		return acceptSide(ctx, state.SideLocal)
	case AcceptIncoming:
		return acceptSide(ctx, state.SideIncoming)
	case AssignOwner:
		return assignOwner(ctx)
	case ToggleSetting:
		return toggleSetting(ctx)
	}
	return Result{}, StateUpdate{}
}

func menuSelect(ctx Context) (Result, StateUpdate) {
	entries := state.MenuEntries()
	if ctx.MenuIndex < 0 || ctx.MenuIndex >= len(entries) {
		return Result{}, StateUpdate{}
	}
	entry := entries[ctx.MenuIndex]
	if entry.Exit {
		return Result{Quit: true}, StateUpdate{}
	}
	return Result{}, StateUpdate{EnterView: view(entry.View)}
}

func back(ctx Context) (Result, StateUpdate) {
	if ctx.SearchActive {
		return Result{}, StateUpdate{EndSearch: true, ClearInput: true}
	}
	if ctx.TextActive {
		return Result{}, StateUpdate{EndInput: true, ClearInput: true}
	}
	res := Result{}
	if ctx.Focus == state.FocusView && ctx.View != state.ViewSettings && ctx.View != state.ViewHelp {
		res.Status = MenuHint
	}
	return res, StateUpdate{Back: true}
}

func navigate(kind Kind, ctx Context) (Result, StateUpdate) {
	if ctx.TextActive || ctx.SearchActive {
		switch kind {
		case NavLeft:
			return Result{}, StateUpdate{TextMove: dir(DirLeft)}
		case NavRight:
			return Result{}, StateUpdate{TextMove: dir(DirRight)}
		case NavHome:
			return Result{}, StateUpdate{TextMove: dir(DirHome)}
		case NavEnd:
			return Result{}, StateUpdate{TextMove: dir(DirEnd)}
		}
		return Result{}, StateUpdate{}
	}
	var d Direction
	switch kind {
	case NavUp:
		d = DirUp
	case NavDown:
		d = DirDown
	case NavLeft:
		d = DirLeft
	case NavRight:
		d = DirRight
	case NavHome:
		d = DirHome
	case NavEnd:
		d = DirEnd
	case NavPageUp:
		d = DirPageUp
	case NavPageDown:
		d = DirPageDown
	}
	return Result{}, StateUpdate{Move: dir(d)}
}

func selectCurrent(ctx Context) (Result, StateUpdate) {
	switch ctx.View {
	case state.ViewChanges:
		return commit(ctx)
	case state.ViewBranches:
		if ctx.TextActive {
			return submitInput(ctx)
		}
		if ctx.SelectedBranch == "" {
			return Result{}, StateUpdate{}
		}
		if ctx.SelectedBranchCurrent {
			return Result{Status: fmt.Sprintf("already on %s", ctx.SelectedBranch)}, StateUpdate{}
		}
		if res, busy := requireIdle(ctx); busy {
			return res, StateUpdate{}
		}
		return Result{
			Intent:  &Intent{Kind: IntentSwitchBranch, Branch: ctx.SelectedBranch},
			Refresh: true,
		}, StateUpdate{}
	case state.ViewBoard:
		if ctx.BoardModuleID == "" {
			return Result{}, StateUpdate{}
		}
		return Result{
			Intent:  &Intent{Kind: IntentBoardAdvance, ModuleID: ctx.BoardModuleID},
			Persist: true,
		}, StateUpdate{}
	case state.ViewModules:
		if ctx.TextActive {
			return submitInput(ctx)
		}
		return Result{}, StateUpdate{}
	case state.ViewSettings:
		return toggleSetting(ctx)
	case state.ViewDashboard:
		if ctx.SearchActive {
			return Result{}, StateUpdate{EndSearch: true}
		}
		return Result{}, StateUpdate{}
	}
	return Result{}, StateUpdate{}
}

func commit(ctx Context) (Result, StateUpdate) {
	if res, busy := requireIdle(ctx); busy {
		return res, StateUpdate{}
	}
	if ctx.StagedCount == 0 {
		return Result{Status: "nothing to commit"}, StateUpdate{}
	}
	if ctx.CommitMessageEmpty {
		return Result{Status: "commit message is empty"}, StateUpdate{}
	}
	return Result{
		Intent:  &Intent{Kind: IntentCommit, Message: ctx.CommitMessage},
		Persist: true,
		Refresh: true,
	}, StateUpdate{EndInput: true, ClearInput: true}
}

func toggleStage(ctx Context) (Result, StateUpdate) {
	if ctx.View != state.ViewChanges || ctx.SelectedPath == "" {
		return Result{}, StateUpdate{}
	}
	if res, busy := requireIdle(ctx); busy {
		return res, StateUpdate{}
	}
	return Result{
		Intent:  &Intent{Kind: IntentToggleStage, Path: ctx.SelectedPath, Staged: ctx.SelectedPathStaged},
		Refresh: true,
	}, StateUpdate{}
}

func startOperation(op OpKind, ctx Context) (Result, StateUpdate) {
	if ctx.OperationRunning {
		return Result{Status: "operation already in progress"}, StateUpdate{}
	}
	if op == OpPush && ctx.ConfirmPush && !ctx.PushArmed {
		return Result{Status: "press P again to confirm push"}, StateUpdate{ArmPush: true}
	}
	return Result{StartOp: op}, StateUpdate{}
}

func beginInput(ctx Context) (Result, StateUpdate) {
	switch ctx.View {
	case state.ViewChanges, state.ViewBranches, state.ViewModules:
		return Result{}, StateUpdate{BeginInput: true}
	}
	return Result{}, StateUpdate{}
}

func submitInput(ctx Context) (Result, StateUpdate) {
	switch ctx.View {
	case state.ViewDashboard:
		return Result{}, StateUpdate{EndSearch: true}
	case state.ViewChanges:
		return commit(ctx)
	case state.ViewBranches:
		name := strings.TrimSpace(ctx.InputText)
		if name == "" {
			return Result{Status: "branch name is empty"}, StateUpdate{}
		}
		if res, busy := requireIdle(ctx); busy {
			return res, StateUpdate{}
		}
		return Result{
			Intent:  &Intent{Kind: IntentCreateBranch, Name: name},
			Refresh: true,
		}, StateUpdate{EndInput: true, ClearInput: true}
	case state.ViewModules:
		name := strings.TrimSpace(ctx.InputText)
		if name == "" {
			return Result{Status: "name is empty"}, StateUpdate{}
		}
		intent := &Intent{Kind: IntentAddModule, Name: name}
		if ctx.ModulesColumn == state.ColumnDevelopers {
			intent.Kind = IntentAddDeveloper
		}
		return Result{Intent: intent, Persist: true}, StateUpdate{EndInput: true, ClearInput: true}
	}
	return Result{}, StateUpdate{}
}

func textUpdate(ctx Context, update StateUpdate) (Result, StateUpdate) {
	if !ctx.TextActive && !ctx.SearchActive {
		return Result{}, StateUpdate{}
	}
	return Result{}, update
}

func deleteItem(ctx Context) (Result, StateUpdate) {
	switch ctx.View {
	case state.ViewBranches:
		if ctx.SelectedBranch == "" {
			return Result{}, StateUpdate{}
		}
		if ctx.SelectedBranchCurrent {
			return Result{Status: "cannot delete the checked-out branch"}, StateUpdate{}
		}
		if res, busy := requireIdle(ctx); busy {
			return res, StateUpdate{}
		}
		return Result{
			Intent:  &Intent{Kind: IntentDeleteBranch, Branch: ctx.SelectedBranch},
			Refresh: true,
		}, StateUpdate{}
	case state.ViewModules:
		if ctx.ModulesColumn == state.ColumnDevelopers {
			if ctx.SelectedDeveloperID == "" {
				return Result{}, StateUpdate{}
			}
			return Result{
				Intent:  &Intent{Kind: IntentDeleteDeveloper, DeveloperID: ctx.SelectedDeveloperID},
				Persist: true,
			}, StateUpdate{}
		}
		if ctx.SelectedModuleID == "" {
			return Result{}, StateUpdate{}
		}
		return Result{
			Intent:  &Intent{Kind: IntentDeleteModule, ModuleID: ctx.SelectedModuleID},
			Persist: true,
		}, StateUpdate{}
	}
	return Result{}, StateUpdate{}
}

func acceptSide(ctx Context, s state.MergeSide) (Result, StateUpdate) {
	if ctx.View != state.ViewMerge || ctx.MergePath == "" {
		return Result{}, StateUpdate{}
	}
	return Result{
		Status: fmt.Sprintf("accepted %s changes for %s", s, ctx.MergePath),
	}, StateUpdate{ResolveMerge: side(s)}
}

func assignOwner(ctx Context) (Result, StateUpdate) {
	if ctx.View != state.ViewModules || ctx.ModulesColumn != state.ColumnModules || ctx.SelectedModuleID == "" {
		return Result{}, StateUpdate{}
	}
	return Result{
		Intent:  &Intent{Kind: IntentAssignOwner, ModuleID: ctx.SelectedModuleID},
		Persist: true,
	}, StateUpdate{}
}

func toggleSetting(ctx Context) (Result, StateUpdate) {
	if ctx.View != state.ViewSettings {
		return Result{}, StateUpdate{}
	}
	return Result{
		Intent:  &Intent{Kind: IntentToggleSetting, SettingIndex: ctx.SettingIndex},
		Persist: true,
	}, StateUpdate{}
}

func requireIdle(ctx Context) (Result, bool) {
	if !ctx.OperationRunning {
		return Result{}, false
	}
	return Result{Status: fmt.Sprintf("repository busy: %s in progress", ctx.OperationKind)}, true
}
