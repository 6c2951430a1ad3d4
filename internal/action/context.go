package action

import "github.com/atomicstack/forge/internal/state"

// Context is a read-only snapshot of everything Process may consult. The
// controller assembles it from its state and stores before each dispatch;
// Process never reaches back into live state.
type Context struct {
	Focus     state.Focus
	View      state.ViewMode
	MenuIndex int

	TextActive   bool
	SearchActive bool

	OperationRunning bool
	OperationKind    string

	ConfirmPush bool
	PushArmed   bool

	StagedCount        int
	CommitMessage      string
	CommitMessageEmpty bool

	SelectedPath          string
	SelectedPathStaged    bool
	SelectedBranch        string
	SelectedBranchCurrent bool

	SelectedModuleID    string
	SelectedDeveloperID string
	ModulesColumn       state.ModulesColumn

	BoardModuleID string

	MergePath string
	MergePane state.MergePane

	SettingIndex int

	InputText string
}
