package state

// Focus identifies which half of the screen consumes key input.
type Focus int

const (
	FocusMenu Focus = iota
	FocusView
)

func (f Focus) String() string {
	if f == FocusMenu {
		return "menu"
	}
	return "view"
}

// ViewMode identifies the active page.
type ViewMode int

const (
	ViewDashboard ViewMode = iota
	ViewChanges
	ViewHistory
	ViewBranches
	ViewMerge
	ViewBoard
	ViewModules
	ViewSettings
	ViewHelp
)

var viewNames = map[ViewMode]string{
	ViewDashboard: "Dashboard",
	ViewChanges:   "Changes",
	ViewHistory:   "History",
	ViewBranches:  "Branches",
	ViewMerge:     "Merge",
	ViewBoard:     "Board",
	ViewModules:   "Modules",
	ViewSettings:  "Settings",
	ViewHelp:      "Help",
}

func (v ViewMode) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return "Unknown"
}

// contentRing is the Tab cycle order. Settings is reachable from the menu
// only and Help via its own key, so neither participates in the ring.
var contentRing = []ViewMode{
	ViewDashboard,
	ViewChanges,
	ViewHistory,
	ViewBranches,
	ViewMerge,
	ViewBoard,
	ViewModules,
}

// Next returns the view that follows v in the Tab cycle. Views outside the
// cycle resume at the dashboard.
func (v ViewMode) Next() ViewMode {
	for i, mode := range contentRing {
		if mode == v {
			return contentRing[(i+1)%len(contentRing)]
		}
	}
	return ViewDashboard
}

// MenuEntry pairs a menu label with the view it opens. Target is nil for the
// exit entry.
type MenuEntry struct {
	Label string
	View  ViewMode
	Exit  bool
}

// MenuEntries lists the left-hand menu in display order.
func MenuEntries() []MenuEntry {
	return []MenuEntry{
		{Label: "Dashboard", View: ViewDashboard},
		{Label: "Changes", View: ViewChanges},
		{Label: "History", View: ViewHistory},
		{Label: "Branches", View: ViewBranches},
		{Label: "Merge", View: ViewMerge},
		{Label: "Board", View: ViewBoard},
		{Label: "Modules", View: ViewModules},
		{Label: "Settings", View: ViewSettings},
		{Label: "Help", View: ViewHelp},
		{Label: "Exit", Exit: true},
	}
}

// Navigation records where input focus sits and which page is showing.
type Navigation struct {
	Focus     Focus
	View      ViewMode
	LastView  ViewMode
	MenuIndex int
}

// NewNavigation starts on the menu with the dashboard showing.
func NewNavigation() Navigation {
	return Navigation{Focus: FocusMenu, View: ViewDashboard, LastView: ViewDashboard}
}

// MenuUp moves the menu cursor up, saturating at the top.
func (n *Navigation) MenuUp() bool {
	if n.MenuIndex == 0 {
		return false
	}
	n.MenuIndex--
	return true
}

// MenuDown moves the menu cursor down, saturating at the bottom.
func (n *Navigation) MenuDown() bool {
	if n.MenuIndex >= len(MenuEntries())-1 {
		return false
	}
	n.MenuIndex++
	return true
}

// MenuNext advances the menu cursor, wrapping past the last entry.
func (n *Navigation) MenuNext() {
	n.MenuIndex = (n.MenuIndex + 1) % len(MenuEntries())
}

// EnterView focuses the page for the given view, remembering the one it
// replaced so Esc can return to it.
func (n *Navigation) EnterView(v ViewMode) {
	if n.View != v {
		n.LastView = n.View
	}
	n.View = v
	n.Focus = FocusView
}

// CycleView advances the page along the Tab ring while view focus is held.
func (n *Navigation) CycleView() {
	n.LastView = n.View
	n.View = n.View.Next()
}

// Back returns focus to the menu. Overlay views (settings, help) first fall
// back to the page they covered.
func (n *Navigation) Back() {
	if n.View == ViewSettings || n.View == ViewHelp {
		n.View = n.LastView
		return
	}
	n.Focus = FocusMenu
}
