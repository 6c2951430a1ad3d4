package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/forge/internal/action"
	"github.com/atomicstack/forge/internal/state"
)

// Context tells the mapper where a key landed. The same key can mean
// different actions in different places; a key with no meaning in the
// current context maps to nothing.
type Context struct {
	Focus        state.Focus
	View         state.ViewMode
	TextActive   bool
	SearchActive bool
	VimKeys      bool
}

// KeyMap declares the recognized bindings.
type KeyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	VimUp      key.Binding
	VimDown    key.Binding
	VimLeft    key.Binding
	VimRight   key.Binding
	Home       key.Binding
	End        key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Select     key.Binding
	Back       key.Binding
	Tab        key.Binding
	Help       key.Binding
	Fetch      key.Binding
	Pull       key.Binding
	Push       key.Binding
	Cancel     key.Binding
	Space      key.Binding
	Search     key.Binding
	New        key.Binding
	Delete     key.Binding
	Owner      key.Binding
	Refresh    key.Binding
	TakeLocal  key.Binding
	TakeRemote key.Binding
	Backspace  key.Binding
	DelForward key.Binding
	LineHome   key.Binding
	LineEnd    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("q")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
		Up:         key.NewBinding(key.WithKeys("up")),
		Down:       key.NewBinding(key.WithKeys("down")),
		Left:       key.NewBinding(key.WithKeys("left")),
		Right:      key.NewBinding(key.WithKeys("right")),
		VimUp:      key.NewBinding(key.WithKeys("k")),
		VimDown:    key.NewBinding(key.WithKeys("j")),
		VimLeft:    key.NewBinding(key.WithKeys("h")),
		VimRight:   key.NewBinding(key.WithKeys("l")),
		Home:       key.NewBinding(key.WithKeys("home")),
		End:        key.NewBinding(key.WithKeys("end")),
		PageUp:     key.NewBinding(key.WithKeys("pgup")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown")),
		Select:     key.NewBinding(key.WithKeys("enter")),
		Back:       key.NewBinding(key.WithKeys("esc")),
		Tab:        key.NewBinding(key.WithKeys("tab")),
		Help:       key.NewBinding(key.WithKeys("?")),
		Fetch:      key.NewBinding(key.WithKeys("f")),
		Pull:       key.NewBinding(key.WithKeys("p")),
		Push:       key.NewBinding(key.WithKeys("P")),
		Cancel:     key.NewBinding(key.WithKeys("ctrl+x")),
		Space:      key.NewBinding(key.WithKeys(" ")),
		Search:     key.NewBinding(key.WithKeys("/", "ctrl+f")),
		New:        key.NewBinding(key.WithKeys("n")),
		Delete:     key.NewBinding(key.WithKeys("d")),
		Owner:      key.NewBinding(key.WithKeys("o")),
		Refresh:    key.NewBinding(key.WithKeys("r")),
		TakeLocal:  key.NewBinding(key.WithKeys("1")),
		TakeRemote: key.NewBinding(key.WithKeys("2")),
		Backspace:  key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		DelForward: key.NewBinding(key.WithKeys("delete")),
		LineHome:   key.NewBinding(key.WithKeys("ctrl+a")),
		LineEnd:    key.NewBinding(key.WithKeys("ctrl+e")),
	}
}

// Mapper translates key messages into actions.
type Mapper struct {
	keys KeyMap
}

// NewMapper builds a mapper with the default bindings.
func NewMapper() *Mapper {
	return &Mapper{keys: DefaultKeyMap()}
}

// Map resolves msg in ctx. The second return is false when the key has no
// meaning there.
func (m *Mapper) Map(msg tea.KeyMsg, ctx Context) (action.Action, bool) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return action.Action{Kind: action.Quit}, true
	}
	if ctx.TextActive || ctx.SearchActive {
		return m.mapTextEntry(msg)
	}
	if ctx.Focus == state.FocusMenu {
		return m.mapMenu(msg, ctx)
	}
	return m.mapView(msg, ctx)
}

func (m *Mapper) mapTextEntry(msg tea.KeyMsg) (action.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Back):
		return action.Action{Kind: action.Back}, true
	case key.Matches(msg, k.Select):
		return action.Action{Kind: action.SubmitInput}, true
	case key.Matches(msg, k.Backspace):
		return action.Action{Kind: action.InputBackspace}, true
	case key.Matches(msg, k.DelForward):
		return action.Action{Kind: action.InputDelete}, true
	case key.Matches(msg, k.Left):
		return action.Action{Kind: action.InputLeft}, true
	case key.Matches(msg, k.Right):
		return action.Action{Kind: action.InputRight}, true
	case key.Matches(msg, k.Home), key.Matches(msg, k.LineHome):
		return action.Action{Kind: action.InputHome}, true
	case key.Matches(msg, k.End), key.Matches(msg, k.LineEnd):
		return action.Action{Kind: action.InputEnd}, true
	case key.Matches(msg, k.Space):
		return action.Action{Kind: action.InputRune, Rune: ' '}, true
	}
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0 {
		return action.Action{Kind: action.InputRune, Rune: msg.Runes[0]}, true
	}
	return action.Action{}, false
}

func (m *Mapper) mapMenu(msg tea.KeyMsg, ctx Context) (action.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit), key.Matches(msg, k.Back):
		return action.Action{Kind: action.Quit}, true
	case key.Matches(msg, k.Up), ctx.VimKeys && key.Matches(msg, k.VimUp):
		return action.Action{Kind: action.MenuUp}, true
	case key.Matches(msg, k.Down), ctx.VimKeys && key.Matches(msg, k.VimDown):
		return action.Action{Kind: action.MenuDown}, true
	case key.Matches(msg, k.Tab):
		return action.Action{Kind: action.MenuCycle}, true
	case key.Matches(msg, k.Select):
		return action.Action{Kind: action.MenuSelect}, true
	case key.Matches(msg, k.Help):
		return action.Action{Kind: action.OpenHelp}, true
	}
	return action.Action{}, false
}

func (m *Mapper) mapView(msg tea.KeyMsg, ctx Context) (action.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return action.Action{Kind: action.Quit}, true
	case key.Matches(msg, k.Back):
		return action.Action{Kind: action.Back}, true
	case key.Matches(msg, k.Tab):
		return action.Action{Kind: action.CycleView}, true
	case key.Matches(msg, k.Select):
		return action.Action{Kind: action.Select}, true
	case key.Matches(msg, k.Help):
		return action.Action{Kind: action.OpenHelp}, true

	case key.Matches(msg, k.Up), ctx.VimKeys && key.Matches(msg, k.VimUp):
		return action.Action{Kind: action.NavUp}, true
	case key.Matches(msg, k.Down), ctx.VimKeys && key.Matches(msg, k.VimDown):
		return action.Action{Kind: action.NavDown}, true
	case key.Matches(msg, k.Left), ctx.VimKeys && key.Matches(msg, k.VimLeft):
		if ctx.View == state.ViewModules {
			return action.Action{Kind: action.ToggleColumn}, true
		}
		return action.Action{Kind: action.NavLeft}, true
	case key.Matches(msg, k.Right), ctx.VimKeys && key.Matches(msg, k.VimRight):
		if ctx.View == state.ViewModules {
			return action.Action{Kind: action.ToggleColumn}, true
		}
		return action.Action{Kind: action.NavRight}, true
	case key.Matches(msg, k.Home):
		return action.Action{Kind: action.NavHome}, true
	case key.Matches(msg, k.End):
		return action.Action{Kind: action.NavEnd}, true
	case key.Matches(msg, k.PageUp):
		return action.Action{Kind: action.NavPageUp}, true
	case key.Matches(msg, k.PageDown):
		return action.Action{Kind: action.NavPageDown}, true

	case key.Matches(msg, k.Fetch):
		return action.Action{Kind: action.StartFetch}, true
	case key.Matches(msg, k.Pull):
		return action.Action{Kind: action.StartPull}, true
	case key.Matches(msg, k.Push):
		return action.Action{Kind: action.StartPush}, true
	case key.Matches(msg, k.Cancel):
		return action.Action{Kind: action.CancelOperation}, true

	case key.Matches(msg, k.Space):
		switch ctx.View {
		case state.ViewChanges:
			return action.Action{Kind: action.ToggleStage}, true
		case state.ViewMerge:
			return action.Action{Kind: action.NextPane}, true
		}
		return action.Action{}, false
	case key.Matches(msg, k.Search):
		if ctx.View == state.ViewDashboard {
			return action.Action{Kind: action.BeginSearch}, true
		}
		return action.Action{}, false
	case key.Matches(msg, k.New):
		return action.Action{Kind: action.BeginInput}, true
	case key.Matches(msg, k.Delete):
		return action.Action{Kind: action.DeleteItem}, true
	case key.Matches(msg, k.Owner):
		return action.Action{Kind: action.AssignOwner}, true
	case key.Matches(msg, k.Refresh):
		return action.Action{Kind: action.Refresh}, true
	case key.Matches(msg, k.TakeLocal):
		return action.Action{Kind: action.AcceptLocal}, true
	case key.Matches(msg, k.TakeRemote):
		return action.Action{Kind: action.AcceptIncoming}, true
	}
	return action.Action{}, false
}
