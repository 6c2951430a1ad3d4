package action

import "github.com/atomicstack/forge/internal/state"

// OpKind names the async operation a result asks the controller to start.
type OpKind int

const (
	OpNone OpKind = iota
	OpFetch
	OpPush
	OpPull
)

// IntentKind names a synchronous effect for the controller to execute.
type IntentKind int

const (
	IntentCommit IntentKind = iota
	IntentToggleStage
	IntentCreateBranch
	IntentSwitchBranch
	IntentDeleteBranch
	IntentBoardAdvance
	IntentAddModule
	IntentDeleteModule
	IntentAddDeveloper
	IntentDeleteDeveloper
	IntentAssignOwner
	IntentToggleSetting
)

// Intent carries one effect request with its parameters.
type Intent struct {
	Kind         IntentKind
	Path         string
	Staged       bool
	Branch       string
	Name         string
	Message      string
	ModuleID     string
	DeveloperID  string
	SettingIndex int
}

// Result is what Process asks the controller to do.
type Result struct {
	Quit     bool
	Status   string
	StartOp  OpKind
	CancelOp bool
	Intent   *Intent
	Persist  bool
	Refresh  bool
}

// Direction is a cursor movement request.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirHome
	DirEnd
	DirPageUp
	DirPageDown
)

// StateUpdate is an optional-field bag of pure state changes. Nil/zero
// fields mean "leave alone"; the controller applies the rest verbatim.
type StateUpdate struct {
	EnterView    *state.ViewMode
	CycleView    bool
	Back         bool
	MenuMove     *Direction
	MenuWrapNext bool

	Move *Direction

	BeginInput    bool
	EndInput      bool
	ClearInput    bool
	BeginSearch   bool
	EndSearch     bool
	TextInsert    *rune
	TextBackspace bool
	TextDelete    bool
	TextMove      *Direction

	ToggleModulesColumn bool
	NextMergePane       bool
	ResolveMerge        *state.MergeSide

	ArmPush bool
}

func dir(d Direction) *Direction {
	return &d
}

func view(v state.ViewMode) *state.ViewMode {
	return &v
}

func side(s state.MergeSide) *state.MergeSide {
	return &s
}
