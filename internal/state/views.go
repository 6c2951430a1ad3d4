package state

// Dashboard holds the module overview list and its fuzzy search input.
type Dashboard struct {
	List         List
	Search       TextBuffer
	SearchActive bool
}

// Changes holds the working-tree file list and the commit message input.
type Changes struct {
	List          List
	CommitMessage TextBuffer
	Editing       bool
}

// History holds the commit log list.
type History struct {
	List List
}

// Branches holds the branch list and the create-branch input.
type Branches struct {
	List     List
	NewName  TextBuffer
	Creating bool
}

// MergePane identifies which merge-view pane has focus.
type MergePane int

const (
	PaneFiles MergePane = iota
	PaneLocal
	PaneIncoming
)

// MergeSide names which side of a conflict was accepted.
type MergeSide int

const (
	SideLocal MergeSide = iota
	SideIncoming
)

func (s MergeSide) String() string {
	if s == SideLocal {
		return "local"
	}
	return "incoming"
}

// Merge holds the conflicted-file list, the focused pane and the recorded
// per-file resolutions.
type Merge struct {
	Files       List
	Pane        MergePane
	Resolutions map[string]MergeSide
}

// NextPane cycles focus Files -> Local -> Incoming -> Files.
func (m *Merge) NextPane() {
	m.Pane = (m.Pane + 1) % 3
}

// Resolve records the accepted side for path.
func (m *Merge) Resolve(path string, side MergeSide) {
	if m.Resolutions == nil {
		m.Resolutions = make(map[string]MergeSide)
	}
	m.Resolutions[path] = side
}

// Board tracks the selection on the three status columns. Column moves wrap;
// row moves wrap within the selected column.
type Board struct {
	Column int
	Row    int
	Counts [3]int
}

// SetCounts records the per-column item counts and clamps the selection.
func (b *Board) SetCounts(counts [3]int) {
	b.Counts = counts
	b.clampRow()
}

// Left selects the previous column, wrapping.
func (b *Board) Left() {
	b.Column = (b.Column + 2) % 3
	b.clampRow()
}

// Right selects the next column, wrapping.
func (b *Board) Right() {
	b.Column = (b.Column + 1) % 3
	b.clampRow()
}

// Up selects the previous row in the column, wrapping.
func (b *Board) Up() {
	n := b.Counts[b.Column]
	if n == 0 {
		b.Row = 0
		return
	}
	b.Row = (b.Row + n - 1) % n
}

// Down selects the next row in the column, wrapping.
func (b *Board) Down() {
	n := b.Counts[b.Column]
	if n == 0 {
		b.Row = 0
		return
	}
	b.Row = (b.Row + 1) % n
}

func (b *Board) clampRow() {
	n := b.Counts[b.Column]
	if n == 0 {
		b.Row = 0
		return
	}
	if b.Row >= n {
		b.Row = n - 1
	}
	if b.Row < 0 {
		b.Row = 0
	}
}

// ModulesColumn identifies which list the modules view is editing.
type ModulesColumn int

const (
	ColumnModules ModulesColumn = iota
	ColumnDevelopers
)

// Modules holds the module and developer lists plus the add-entry input.
type Modules struct {
	Column     ModulesColumn
	Modules    List
	Developers List
	NewEntry   TextBuffer
	Adding     bool
}

// Active returns the list for the focused column.
func (m *Modules) Active() *List {
	if m.Column == ColumnDevelopers {
		return &m.Developers
	}
	return &m.Modules
}

// ToggleColumn switches between the module and developer columns.
func (m *Modules) ToggleColumn() {
	if m.Column == ColumnModules {
		m.Column = ColumnDevelopers
	} else {
		m.Column = ColumnModules
	}
}

// Settings holds the cursor over the toggleable options.
type Settings struct {
	List List
}

// Views aggregates the per-page state containers.
type Views struct {
	Dashboard Dashboard
	Changes   Changes
	History   History
	Branches  Branches
	Merge     Merge
	Board     Board
	Modules   Modules
	Settings  Settings
}
