package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/forge/internal/format/table"
	"github.com/atomicstack/forge/internal/git"
	"github.com/atomicstack/forge/internal/state"
	"github.com/atomicstack/forge/internal/store"
)

const (
	menuWidth      = 20
	progressCells  = 20
	previewLines   = 12
	footerHint     = "tab views  enter select  esc back  f fetch  p pull  P push  ? help  q quit"
	emptyListLabel = "(nothing here)"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	title := m.titleLine()
	body := styles.Frame.Render(lipgloss.JoinHorizontal(lipgloss.Top, m.menuColumn(), m.pageBody()))
	lines := []string{title, body, m.statusLine()}
	if m.showFooter {
		lines = append(lines, styles.Footer.Render(m.fit(footerHint)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) titleLine() string {
	head := m.changes.Head()
	if head == "" {
		head = "(detached)"
	}
	return styles.Title.Render(m.fit("Forge · "+head))
}

// pageHeight is the number of list rows the page body can show.
func (m *Model) pageHeight() int {
	if m.height <= 0 {
		return previewLines
	}
	chrome := 4
	if m.showFooter {
		chrome++
	}
	remain := m.height - chrome
	if remain < 1 {
		return 1
	}
	return remain
}

// pageWidth is the column budget left of the page body.
func (m *Model) pageWidth() int {
	if m.width <= 0 {
		return 0
	}
	remain := m.width - menuWidth - 3
	if remain < 10 {
		return 10
	}
	return remain
}

func (m *Model) fit(text string) string {
	if m.width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= m.width {
		return text
	}
	return truncate.StringWithTail(text, uint(m.width-1), "…")
}

func fitWidth(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}

func (m *Model) menuColumn() string {
	entries := state.MenuEntries()
	rows := make([]string, 0, len(entries)+1)
	for i, entry := range entries {
		label := entry.Label
		if !entry.Exit && entry.View == m.nav.View {
			label = "· " + label
		} else {
			label = "  " + label
		}
		if pad := menuWidth - len([]rune(label)); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		if m.nav.Focus == state.FocusMenu && i == m.nav.MenuIndex {
			rows = append(rows, styles.MenuSelected.Render(label))
		} else {
			rows = append(rows, styles.MenuItem.Render(label))
		}
	}
	height := m.pageHeight()
	for len(rows) < height {
		rows = append(rows, strings.Repeat(" ", menuWidth))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) pageBody() string {
	var rows []string
	switch m.nav.View {
	case state.ViewDashboard:
		rows = m.dashboardRows()
	case state.ViewChanges:
		rows = m.changesRows()
	case state.ViewHistory:
		rows = m.historyRows()
	case state.ViewBranches:
		rows = m.branchesRows()
	case state.ViewMerge:
		rows = m.mergeRows()
	case state.ViewBoard:
		rows = m.boardRows()
	case state.ViewModules:
		rows = m.modulesRows()
	case state.ViewSettings:
		rows = m.settingsRows()
	case state.ViewHelp:
		rows = m.helpRows()
	}
	height := m.pageHeight()
	if len(rows) > height {
		rows = rows[:height]
	}
	width := m.pageWidth()
	for i, row := range rows {
		rows[i] = fitWidth(row, width)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) dashboardRows() []string {
	rows := []string{styles.Header.Render("Modules")}
	if m.views.Dashboard.SearchActive || !m.views.Dashboard.Search.Empty() {
		prompt := styles.SearchPrompt.Render("/") + styles.Search.Render(renderInput(&m.views.Dashboard.Search, m.views.Dashboard.SearchActive))
		rows = append(rows, prompt)
	}
	modules := m.filteredModules()
	if len(modules) == 0 {
		return append(rows, styles.Info.Render(emptyListLabel))
	}
	list := m.views.Dashboard.List
	for i, module := range windowModules(modules, list.ViewportOffset, m.pageHeight()) {
		idx := list.ViewportOffset + i
		owner := module.Owner
		if owner == "" {
			owner = "unassigned"
		}
		line := fmt.Sprintf("%-24s %-12s %s %3d%%", fitWidth(module.Name, 24), owner, progressBar(module.Progress), module.Progress)
		rows = append(rows, m.listRow(line, idx == list.Cursor))
	}
	return rows
}

func (m *Model) changesRows() []string {
	rows := []string{styles.Header.Render("Working tree")}
	entries := m.changes.Entries()
	if len(entries) == 0 {
		rows = append(rows, styles.Info.Render("working tree clean"))
	}
	list := m.views.Changes.List
	for i, change := range windowChanges(entries, list.ViewportOffset, m.pageHeight()) {
		idx := list.ViewportOffset + i
		mark := "[ ]"
		style := styles.Unstaged
		if change.Staged {
			mark = "[✓]"
			style = styles.Staged
		}
		line := fmt.Sprintf("%s %-10s %s", mark, change.Kind, change.Path)
		if idx == list.Cursor && m.nav.Focus == state.FocusView {
			rows = append(rows, styles.SelectedItem.Render(line))
		} else {
			rows = append(rows, style.Render(line))
		}
	}
	if m.views.Changes.Editing {
		rows = append(rows, "")
		rows = append(rows, styles.Header.Render("Commit message:"))
		rows = append(rows, renderInput(&m.views.Changes.CommitMessage, true))
	}
	return rows
}

func (m *Model) historyRows() []string {
	commits := m.commits.Entries()
	if len(commits) == 0 {
		return []string{styles.Info.Render(emptyListLabel)}
	}
	list := m.views.History.List
	visible := windowCommits(commits, list.ViewportOffset, m.pageHeight())
	cells := make([][]string, len(visible))
	for i, commit := range visible {
		cells[i] = []string{
			shortHash(commit.Hash),
			humanize.Time(commit.Date),
			commit.Author,
			firstLine(commit.Message),
		}
	}
	aligns := []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft, table.AlignLeft}
	formatted := table.FormatWidth(cells, aligns, m.pageWidth())
	rows := make([]string, 0, len(formatted))
	for i, row := range formatted {
		idx := list.ViewportOffset + i
		rows = append(rows, m.listRow(row, idx == list.Cursor))
	}
	return rows
}

func (m *Model) branchesRows() []string {
	rows := []string{styles.Header.Render("Branches")}
	entries := m.branches.Entries()
	list := m.views.Branches.List
	for i, branch := range windowBranches(entries, list.ViewportOffset, m.pageHeight()) {
		idx := list.ViewportOffset + i
		marker := "  "
		if branch.Current {
			marker = "* "
		}
		rows = append(rows, m.listRow(marker+branch.Name, idx == list.Cursor))
	}
	if m.views.Branches.Creating {
		rows = append(rows, "")
		rows = append(rows, styles.Header.Render("New branch:"))
		rows = append(rows, renderInput(&m.views.Branches.NewName, true))
	}
	return rows
}

func (m *Model) mergeRows() []string {
	paths := m.conflicts.Paths()
	if len(paths) == 0 {
		return []string{styles.Info.Render("no conflicts")}
	}
	pane := m.views.Merge.Pane
	filesTitle := m.paneTitle("Conflicts", pane == state.PaneFiles)
	rows := []string{filesTitle}
	list := m.views.Merge.Files
	for i, path := range paths {
		label := path
		if side, ok := m.views.Merge.Resolutions[path]; ok {
			label = fmt.Sprintf("%s (%s)", path, side)
		}
		rows = append(rows, m.listRow(label, i == list.Cursor))
	}
	selected := m.mergeSelectedPath()
	preview, ok := m.conflicts.Preview(selected)
	if !ok {
		rows = append(rows, "")
		rows = append(rows, styles.Info.Render("no preview available"))
		return rows
	}
	rows = append(rows, "")
	rows = append(rows, m.paneTitle("Local  (accept: 1)", pane == state.PaneLocal))
	rows = append(rows, previewBlock(preview.Local, styles.DiffDel)...)
	rows = append(rows, m.paneTitle("Incoming  (accept: 2)", pane == state.PaneIncoming))
	rows = append(rows, previewBlock(preview.Incoming, styles.DiffAdd)...)
	return rows
}

func (m *Model) paneTitle(label string, focused bool) string {
	if focused {
		return styles.ColumnFocused.Render("▸ " + label)
	}
	return styles.ColumnTitle.Render("  " + label)
}

func previewBlock(text string, accent *lipgloss.Style) []string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) > previewLines {
		lines = lines[:previewLines]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			out[i] = styles.DiffAdd.Render(line)
		case strings.HasPrefix(line, "-"):
			out[i] = styles.DiffDel.Render(line)
		default:
			out[i] = accent.Render(line)
		}
	}
	return out
}

func (m *Model) boardRows() []string {
	columns := m.boardColumns()
	titles := []string{"Pending", "Current", "Completed"}
	accents := []*lipgloss.Style{styles.BoardPending, styles.BoardCurrent, styles.BoardDone}
	colWidth := m.pageWidth() / 3
	if colWidth < 12 {
		colWidth = 12
	}
	rendered := make([]string, 3)
	for c := 0; c < 3; c++ {
		lines := []string{m.paneTitle(titles[c], m.views.Board.Column == c)}
		if len(columns[c]) == 0 {
			lines = append(lines, styles.Info.Render("  -"))
		}
		for r, module := range columns[c] {
			label := fitWidth(module.Name, colWidth-4)
			if m.views.Board.Column == c && m.views.Board.Row == r {
				lines = append(lines, styles.SelectedItem.Render("  "+label))
			} else {
				lines = append(lines, accents[c].Render("  "+label))
			}
		}
		rendered[c] = lipgloss.NewStyle().Width(colWidth).Render(strings.Join(lines, "\n"))
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Top, rendered[0], rendered[1], rendered[2])
	rows := strings.Split(joined, "\n")
	rows = append(rows, "")
	rows = append(rows, styles.MenuHint.Render("enter advances a module to the next column"))
	return rows
}

func (m *Model) modulesRows() []string {
	colWidth := m.pageWidth() / 2
	if colWidth < 16 {
		colWidth = 16
	}
	left := []string{m.paneTitle("Modules", m.views.Modules.Column == state.ColumnModules)}
	for i, module := range m.data.Modules {
		label := fitWidth(module.Name, colWidth-4)
		selected := m.views.Modules.Column == state.ColumnModules && i == m.views.Modules.Modules.Cursor
		left = append(left, m.columnRow(label, selected))
	}
	right := []string{m.paneTitle("Developers", m.views.Modules.Column == state.ColumnDevelopers)}
	for i, dev := range m.data.Developers {
		label := fitWidth(dev.Name, colWidth-4)
		selected := m.views.Modules.Column == state.ColumnDevelopers && i == m.views.Modules.Developers.Cursor
		right = append(right, m.columnRow(label, selected))
	}
	leftCol := lipgloss.NewStyle().Width(colWidth).Render(strings.Join(left, "\n"))
	rightCol := lipgloss.NewStyle().Width(colWidth).Render(strings.Join(right, "\n"))
	rows := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, leftCol, rightCol), "\n")
	if m.views.Modules.Adding {
		rows = append(rows, "")
		rows = append(rows, styles.Header.Render("New name:"))
		rows = append(rows, renderInput(&m.views.Modules.NewEntry, true))
	} else {
		rows = append(rows, "")
		rows = append(rows, styles.MenuHint.Render("n new  d delete  o cycle owner  ←/→ switch column"))
	}
	return rows
}

func (m *Model) columnRow(label string, selected bool) string {
	if selected {
		return styles.SelectedItem.Render("  " + label)
	}
	return styles.Item.Render("  " + label)
}

func (m *Model) settingsRows() []string {
	rows := []string{styles.Header.Render("Settings")}
	values := m.data.SettingValues()
	for i, name := range store.SettingNames() {
		mark := "[ ]"
		if i < len(values) && values[i] {
			mark = "[✓]"
		}
		rows = append(rows, m.listRow(fmt.Sprintf("%s %s", mark, name), i == m.views.Settings.List.Cursor))
	}
	rows = append(rows, "")
	rows = append(rows, styles.MenuHint.Render("enter toggles the highlighted option"))
	return rows
}

func (m *Model) helpRows() []string {
	lines := []string{
		styles.Header.Render("Keys"),
		"tab        next view",
		"enter      select / commit / advance",
		"esc        back",
		"space      stage file / cycle merge pane",
		"/          search modules (dashboard)",
		"f p P      fetch, pull, push",
		"ctrl+x     cancel the running operation",
		"n d o      new, delete, cycle owner",
		"1 2        accept local / incoming side",
		"r          reload from the repository",
		"q ctrl+c   quit",
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if i == 0 {
			out[i] = line
			continue
		}
		out[i] = styles.Info.Render(line)
	}
	return out
}

func (m *Model) listRow(label string, selected bool) string {
	if selected && m.nav.Focus == state.FocusView {
		return styles.SelectedItem.Render(label)
	}
	return styles.Item.Render(label)
}

// statusLine shows, in priority order: the last error, live operation
// progress, then the transient status message.
func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return styles.Error.Render(m.fit("Error: " + m.errMsg))
	}
	if m.op != nil {
		return styles.Progress.Render(m.fit(m.progressLabel()))
	}
	if status := m.currentStatus(); status != "" {
		return styles.Status.Render(m.fit(status))
	}
	return ""
}

func (m *Model) progressLabel() string {
	label := m.op.Kind().String() + "…"
	snapshot := m.opSnapshot
	if snapshot == nil {
		return label
	}
	parts := []string{label}
	if snapshot.Phase != "" {
		parts = append(parts, snapshot.Phase)
	}
	if snapshot.Total > 0 {
		parts = append(parts, fmt.Sprintf("(%d/%d)", snapshot.Objects, snapshot.Total))
	}
	parts = append(parts, fmt.Sprintf("%d%%", snapshot.Percent))
	if snapshot.Bytes > 0 {
		parts = append(parts, humanize.Bytes(uint64(snapshot.Bytes)))
	}
	return strings.Join(parts, " ")
}

// renderInput shows a text buffer with a block cursor at the insertion point.
func renderInput(buffer *state.TextBuffer, active bool) string {
	text := buffer.String()
	if !active {
		return text
	}
	runes := []rune(text)
	cursor := buffer.Cursor()
	if cursor >= len(runes) {
		return text + styles.Cursor.Render(" ")
	}
	return string(runes[:cursor]) + styles.Cursor.Render(string(runes[cursor])) + string(runes[cursor+1:])
}

func progressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * progressCells / 100
	return styles.Progress.Render(strings.Repeat("█", filled)) + styles.MenuHint.Render(strings.Repeat("░", progressCells-filled))
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}

func windowModules(items []store.Module, offset, height int) []store.Module {
	start, end := windowBounds(len(items), offset, height)
	return items[start:end]
}

func windowChanges(items []git.Change, offset, height int) []git.Change {
	start, end := windowBounds(len(items), offset, height)
	return items[start:end]
}

func windowCommits(items []git.Commit, offset, height int) []git.Commit {
	start, end := windowBounds(len(items), offset, height)
	return items[start:end]
}

func windowBranches(items []git.Branch, offset, height int) []git.Branch {
	start, end := windowBounds(len(items), offset, height)
	return items[start:end]
}

func windowBounds(count, offset, height int) (int, int) {
	if height <= 0 || count <= height {
		return 0, count
	}
	if offset < 0 {
		offset = 0
	}
	if offset > count-height {
		offset = count - height
	}
	return offset, offset + height
}
