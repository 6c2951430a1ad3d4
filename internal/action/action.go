package action

// Kind enumerates every action the input mapper can produce. The set is
// closed: views react to actions, never to raw key events.
type Kind int

const (
	NoOp Kind = iota
	Quit

	MenuUp
	MenuDown
	MenuSelect
	MenuCycle

	Back
	CycleView
	OpenHelp

	NavUp
	NavDown
	NavLeft
	NavRight
	NavHome
	NavEnd
	NavPageUp
	NavPageDown

	Select
	Commit
	ToggleStage
	Refresh

	StartFetch
	StartPush
	StartPull
	CancelOperation

	BeginInput
	SubmitInput
	BeginSearch
	InputRune
	InputBackspace
	InputDelete
	InputLeft
	InputRight
	InputHome
	InputEnd

	DeleteItem
	ToggleColumn
	NextPane
	AcceptLocal
	AcceptIncoming
	AssignOwner
	ToggleSetting
)

var kindNames = map[Kind]string{
	NoOp:            "noop",
	Quit:            "quit",
	MenuUp:          "menu-up",
	MenuDown:        "menu-down",
	MenuSelect:      "menu-select",
	MenuCycle:       "menu-cycle",
	Back:            "back",
	CycleView:       "cycle-view",
	OpenHelp:        "open-help",
	NavUp:           "nav-up",
	NavDown:         "nav-down",
	NavLeft:         "nav-left",
	NavRight:        "nav-right",
	NavHome:         "nav-home",
	NavEnd:          "nav-end",
	NavPageUp:       "nav-page-up",
	NavPageDown:     "nav-page-down",
	Select:          "select",
	Commit:          "commit",
	ToggleStage:     "toggle-stage",
	Refresh:         "refresh",
	StartFetch:      "start-fetch",
	StartPush:       "start-push",
	StartPull:       "start-pull",
	CancelOperation: "cancel-operation",
	BeginInput:      "begin-input",
	SubmitInput:     "submit-input",
	BeginSearch:     "begin-search",
	InputRune:       "input-rune",
	InputBackspace:  "input-backspace",
	InputDelete:     "input-delete",
	InputLeft:       "input-left",
	InputRight:      "input-right",
	InputHome:       "input-home",
	InputEnd:        "input-end",
	DeleteItem:      "delete-item",
	ToggleColumn:    "toggle-column",
	NextPane:        "next-pane",
	AcceptLocal:     "accept-local",
	AcceptIncoming:  "accept-incoming",
	AssignOwner:     "assign-owner",
	ToggleSetting:   "toggle-setting",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is one mapped input. Rune carries the character for InputRune.
type Action struct {
	Kind Kind
	Rune rune
}
