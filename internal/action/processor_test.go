package action

import (
	"testing"

	"github.com/atomicstack/forge/internal/state"
)

func TestQuit(t *testing.T) {
	res, _ := Process(Action{Kind: Quit}, Context{})
	if !res.Quit {
		t.Fatalf("expected quit")
	}
}

func TestMenuSelectEntersView(t *testing.T) {
	res, update := Process(Action{Kind: MenuSelect}, Context{MenuIndex: 1})
	if res.Quit {
		t.Fatalf("unexpected quit")
	}
	if update.EnterView == nil || *update.EnterView != state.ViewChanges {
		t.Fatalf("expected enter Changes, got %+v", update.EnterView)
	}
}

func TestMenuSelectExitEntryQuits(t *testing.T) {
	entries := state.MenuEntries()
	res, _ := Process(Action{Kind: MenuSelect}, Context{MenuIndex: len(entries) - 1})
	if !res.Quit {
		t.Fatalf("expected exit entry to quit")
	}
}

func TestMenuSelectOutOfRangeIsNoOp(t *testing.T) {
	res, update := Process(Action{Kind: MenuSelect}, Context{MenuIndex: 99})
	if res.Quit || update.EnterView != nil {
		t.Fatalf("expected no-op, got %+v %+v", res, update)
	}
}

func TestCommitRejectedWhileOperationRunning(t *testing.T) {
	res, update := Process(Action{Kind: Commit}, Context{
		View:             state.ViewChanges,
		OperationRunning: true,
		OperationKind:    "fetch",
		StagedCount:      1,
		CommitMessage:    "msg",
	})
	if res.Intent != nil {
		t.Fatalf("busy repository must not produce an intent")
	}
	if res.Status != "repository busy: fetch in progress" {
		t.Fatalf("unexpected status: %q", res.Status)
	}
	if update.EndInput {
		t.Fatalf("rejected commit must not clear the input")
	}
}

func TestCommitNothingStaged(t *testing.T) {
	res, _ := Process(Action{Kind: Commit}, Context{View: state.ViewChanges, CommitMessage: "msg"})
	if res.Intent != nil || res.Status != "nothing to commit" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCommitEmptyMessage(t *testing.T) {
	res, _ := Process(Action{Kind: Commit}, Context{
		View:               state.ViewChanges,
		StagedCount:        2,
		CommitMessageEmpty: true,
	})
	if res.Intent != nil || res.Status != "commit message is empty" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCommitProducesIntentAndClearsInput(t *testing.T) {
	res, update := Process(Action{Kind: Commit}, Context{
		View:          state.ViewChanges,
		StagedCount:   1,
		CommitMessage: "add parser",
	})
	if res.Intent == nil || res.Intent.Kind != IntentCommit || res.Intent.Message != "add parser" {
		t.Fatalf("unexpected intent: %+v", res.Intent)
	}
	if !res.Persist || !res.Refresh {
		t.Fatalf("commit should persist and refresh: %+v", res)
	}
	if !update.EndInput || !update.ClearInput {
		t.Fatalf("commit should clear the message input: %+v", update)
	}
}

func TestStartOperationRejectedWhileRunning(t *testing.T) {
	for _, kind := range []Kind{StartFetch, StartPush, StartPull} {
		res, _ := Process(Action{Kind: kind}, Context{OperationRunning: true, OperationKind: "push"})
		if res.StartOp != OpNone {
			t.Fatalf("%v: second operation must be rejected", kind)
		}
		if res.Status != "operation already in progress" {
			t.Fatalf("%v: unexpected status %q", kind, res.Status)
		}
	}
}

func TestStartOperationKinds(t *testing.T) {
	cases := map[Kind]OpKind{StartFetch: OpFetch, StartPush: OpPush, StartPull: OpPull}
	for kind, want := range cases {
		res, _ := Process(Action{Kind: kind}, Context{})
		if res.StartOp != want {
			t.Fatalf("%v: expected %v, got %v", kind, want, res.StartOp)
		}
	}
}

func TestCancelOnlyWhenRunning(t *testing.T) {
	res, _ := Process(Action{Kind: CancelOperation}, Context{})
	if res.CancelOp {
		t.Fatalf("cancel without a running operation should be silent")
	}
	res, _ = Process(Action{Kind: CancelOperation}, Context{OperationRunning: true})
	if !res.CancelOp {
		t.Fatalf("expected cancel request")
	}
}

func TestToggleStage(t *testing.T) {
	res, _ := Process(Action{Kind: ToggleStage}, Context{
		View:               state.ViewChanges,
		SelectedPath:       "a.go",
		SelectedPathStaged: true,
	})
	if res.Intent == nil || res.Intent.Kind != IntentToggleStage {
		t.Fatalf("expected toggle-stage intent, got %+v", res.Intent)
	}
	if res.Intent.Path != "a.go" || !res.Intent.Staged {
		t.Fatalf("unexpected intent payload: %+v", res.Intent)
	}

	res, _ = Process(Action{Kind: ToggleStage}, Context{View: state.ViewChanges})
	if res.Intent != nil || res.Status != "" {
		t.Fatalf("no selection should be a silent no-op: %+v", res)
	}
}

func TestBranchSwitchGuards(t *testing.T) {
	res, _ := Process(Action{Kind: Select}, Context{
		View:                  state.ViewBranches,
		SelectedBranch:        "main",
		SelectedBranchCurrent: true,
	})
	if res.Intent != nil || res.Status != "already on main" {
		t.Fatalf("unexpected result: %+v", res)
	}

	res, _ = Process(Action{Kind: Select}, Context{
		View:           state.ViewBranches,
		SelectedBranch: "dev",
	})
	if res.Intent == nil || res.Intent.Kind != IntentSwitchBranch || res.Intent.Branch != "dev" {
		t.Fatalf("unexpected intent: %+v", res.Intent)
	}
}

func TestBranchDeleteGuards(t *testing.T) {
	res, _ := Process(Action{Kind: DeleteItem}, Context{
		View:                  state.ViewBranches,
		SelectedBranch:        "main",
		SelectedBranchCurrent: true,
	})
	if res.Status != "cannot delete the checked-out branch" {
		t.Fatalf("unexpected status: %q", res.Status)
	}

	res, _ = Process(Action{Kind: DeleteItem}, Context{
		View:           state.ViewBranches,
		SelectedBranch: "dev",
	})
	if res.Intent == nil || res.Intent.Kind != IntentDeleteBranch {
		t.Fatalf("unexpected intent: %+v", res.Intent)
	}
}

func TestBranchCreateFromInput(t *testing.T) {
	res, update := Process(Action{Kind: SubmitInput}, Context{
		View:       state.ViewBranches,
		TextActive: true,
		InputText:  "  feature/x  ",
	})
	if res.Intent == nil || res.Intent.Kind != IntentCreateBranch || res.Intent.Name != "feature/x" {
		t.Fatalf("unexpected intent: %+v", res.Intent)
	}
	if !update.EndInput || !update.ClearInput {
		t.Fatalf("input should be closed after submit: %+v", update)
	}

	res, _ = Process(Action{Kind: SubmitInput}, Context{
		View:       state.ViewBranches,
		TextActive: true,
		InputText:  "   ",
	})
	if res.Intent != nil || res.Status != "branch name is empty" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestBoardAdvance(t *testing.T) {
	res, _ := Process(Action{Kind: Select}, Context{View: state.ViewBoard, BoardModuleID: "m1"})
	if res.Intent == nil || res.Intent.Kind != IntentBoardAdvance || res.Intent.ModuleID != "m1" {
		t.Fatalf("unexpected intent: %+v", res.Intent)
	}
	if !res.Persist {
		t.Fatalf("board advance must persist")
	}
}

func TestModulesSubmitRespectsColumn(t *testing.T) {
	res, _ := Process(Action{Kind: SubmitInput}, Context{
		View:       state.ViewModules,
		TextActive: true,
		InputText:  "auth",
	})
	if res.Intent == nil || res.Intent.Kind != IntentAddModule {
		t.Fatalf("unexpected intent: %+v", res.Intent)
	}
	res, _ = Process(Action{Kind: SubmitInput}, Context{
		View:          state.ViewModules,
		TextActive:    true,
		InputText:     "dana",
		ModulesColumn: state.ColumnDevelopers,
	})
	if res.Intent == nil || res.Intent.Kind != IntentAddDeveloper {
		t.Fatalf("unexpected intent: %+v", res.Intent)
	}
}

func TestAcceptMergeSide(t *testing.T) {
	res, update := Process(Action{Kind: AcceptIncoming}, Context{
		View:      state.ViewMerge,
		MergePath: "conflicted.go",
	})
	if update.ResolveMerge == nil || *update.ResolveMerge != state.SideIncoming {
		t.Fatalf("unexpected update: %+v", update)
	}
	if res.Status != "accepted incoming changes for conflicted.go" {
		t.Fatalf("unexpected status: %q", res.Status)
	}

	res, update = Process(Action{Kind: AcceptLocal}, Context{View: state.ViewMerge})
	if update.ResolveMerge != nil || res.Status != "" {
		t.Fatalf("no selected file should be a silent no-op")
	}
}

func TestBackLeavesTextEntryFirst(t *testing.T) {
	_, update := Process(Action{Kind: Back}, Context{
		Focus:      state.FocusView,
		View:       state.ViewChanges,
		TextActive: true,
	})
	if !update.EndInput || update.Back {
		t.Fatalf("back should close the input before leaving the view: %+v", update)
	}

	res, update := Process(Action{Kind: Back}, Context{Focus: state.FocusView, View: state.ViewChanges})
	if !update.Back {
		t.Fatalf("expected back")
	}
	if res.Status != MenuHint {
		t.Fatalf("expected menu hint, got %q", res.Status)
	}
}

func TestNavigationRoutedToTextWhileEditing(t *testing.T) {
	_, update := Process(Action{Kind: NavLeft}, Context{TextActive: true})
	if update.TextMove == nil || *update.TextMove != DirLeft {
		t.Fatalf("expected text cursor move, got %+v", update)
	}
	if update.Move != nil {
		t.Fatalf("list cursor must not move while editing")
	}
	_, update = Process(Action{Kind: NavUp}, Context{TextActive: true})
	if update.Move != nil || update.TextMove != nil {
		t.Fatalf("vertical navigation is a no-op while editing: %+v", update)
	}
}

func TestInputRuneRequiresActiveText(t *testing.T) {
	_, update := Process(Action{Kind: InputRune, Rune: 'f'}, Context{})
	if update.TextInsert != nil {
		t.Fatalf("rune outside text entry must be dropped")
	}
	_, update = Process(Action{Kind: InputRune, Rune: 'f'}, Context{TextActive: true})
	if update.TextInsert == nil || *update.TextInsert != 'f' {
		t.Fatalf("expected rune insert, got %+v", update)
	}
}

func TestToggleSettingProducesIntent(t *testing.T) {
	res, _ := Process(Action{Kind: Select}, Context{View: state.ViewSettings, SettingIndex: 2})
	if res.Intent == nil || res.Intent.Kind != IntentToggleSetting || res.Intent.SettingIndex != 2 {
		t.Fatalf("unexpected intent: %+v", res.Intent)
	}
	if !res.Persist {
		t.Fatalf("setting toggle must persist")
	}
}

func TestAssignOwnerRequiresModuleSelection(t *testing.T) {
	res, _ := Process(Action{Kind: AssignOwner}, Context{View: state.ViewModules})
	if res.Intent != nil {
		t.Fatalf("no module selected: expected no intent")
	}
	res, _ = Process(Action{Kind: AssignOwner}, Context{
		View:             state.ViewModules,
		SelectedModuleID: "m1",
	})
	if res.Intent == nil || res.Intent.Kind != IntentAssignOwner {
		t.Fatalf("unexpected intent: %+v", res.Intent)
	}
}

func TestProcessIsPure(t *testing.T) {
	ctx := Context{View: state.ViewChanges, StagedCount: 1, CommitMessage: "msg"}
	before := ctx
	Process(Action{Kind: Commit}, ctx)
	Process(Action{Kind: Commit}, ctx)
	if ctx != before {
		t.Fatalf("context mutated: %+v", ctx)
	}
	res1, upd1 := Process(Action{Kind: Commit}, ctx)
	res2, upd2 := Process(Action{Kind: Commit}, ctx)
	if res1.Status != res2.Status || (res1.Intent == nil) != (res2.Intent == nil) {
		t.Fatalf("process not deterministic")
	}
	if upd1.EndInput != upd2.EndInput {
		t.Fatalf("process not deterministic")
	}
}

func TestPushConfirmationTwoStep(t *testing.T) {
	ctx := Context{Focus: state.FocusView, View: state.ViewChanges, ConfirmPush: true}
	res, upd := Process(Action{Kind: StartPush}, ctx)
	if res.StartOp != OpNone {
		t.Fatalf("first press must not start a push")
	}
	if !upd.ArmPush || res.Status == "" {
		t.Fatalf("first press should arm and explain: %+v %+v", res, upd)
	}

	ctx.PushArmed = true
	res, upd = Process(Action{Kind: StartPush}, ctx)
	if res.StartOp != OpPush || upd.ArmPush {
		t.Fatalf("armed press should start the push: %+v %+v", res, upd)
	}

	// Fetch and pull never ask.
	res, upd = Process(Action{Kind: StartFetch}, Context{Focus: state.FocusView, ConfirmPush: true})
	if res.StartOp != OpFetch || upd.ArmPush {
		t.Fatalf("fetch must not require confirmation: %+v", res)
	}
}
