package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/forge/internal/action"
	"github.com/atomicstack/forge/internal/async"
	"github.com/atomicstack/forge/internal/data/dispatcher"
	"github.com/atomicstack/forge/internal/git"
	"github.com/atomicstack/forge/internal/input"
	"github.com/atomicstack/forge/internal/logging/events"
	repodata "github.com/atomicstack/forge/internal/repo"
	"github.com/atomicstack/forge/internal/state"
	"github.com/atomicstack/forge/internal/store"
	"github.com/atomicstack/forge/internal/theme"
)

var styles = theme.Default()

const historyLimit = 100

type msgHandler func(tea.Msg) tea.Cmd

// Repository is the slice of the git client the controller uses. Tests
// substitute a fake.
type Repository interface {
	HeadBranch() (string, error)
	Status() ([]git.Change, error)
	Branches() ([]git.Branch, error)
	Log(limit int) ([]git.Commit, error)
	Conflicts() ([]string, error)
	DiffPreviews(path string) (git.DiffPreview, error)
	Stage(path string) error
	Unstage(path string) error
	Commit(message string) (string, error)
	CreateBranch(name string) error
	SwitchBranch(name string) error
	DeleteBranch(name string) error
}

// Model is the application controller: the only writer of durable state.
// Input becomes actions, actions become results and state updates, and
// everything else is rendering.
type Model struct {
	nav    state.Navigation
	views  state.Views
	mapper *input.Mapper

	client Repository
	engine *async.Engine
	data   *store.Store
	remote string

	changes    repodata.ChangeStore
	branches   repodata.BranchStore
	commits    repodata.CommitStore
	conflicts  repodata.ConflictStore
	dispatcher *dispatcher.Dispatcher

	op         *async.Operation
	opSnapshot *async.Snapshot
	pushArmed  bool

	statusMsg    string
	statusExpire time.Time
	errMsg       string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the controller state.
func NewModel(client Repository, engine *async.Engine, data *store.Store, remote string, width, height int, showFooter, verbose bool) *Model {
	changes := repodata.NewChangeStore()
	branches := repodata.NewBranchStore()
	commits := repodata.NewCommitStore()
	conflicts := repodata.NewConflictStore()
	m := &Model{
		nav:        state.NewNavigation(),
		mapper:     input.NewMapper(),
		client:     client,
		engine:     engine,
		data:       data,
		remote:     remote,
		changes:    changes,
		branches:   branches,
		commits:    commits,
		conflicts:  conflicts,
		dispatcher: dispatcher.New(changes, branches, commits, conflicts),
		showFooter: showFooter,
		verbose:    verbose,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.setStatus(action.MenuHint)
	m.syncCounts()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmds()...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(repoEventMsg{}):      m.handleRepoEventMsg,
		reflect.TypeOf(operationEventMsg{}): m.handleOperationEventMsg,
		reflect.TypeOf(operationDoneMsg{}):  m.handleOperationDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	act, ok := m.mapper.Map(keyMsg, m.mapperContext())
	if !ok {
		return nil
	}
	events.Action.Mapped(keyMsg.String(), act.Kind.String())
	res, update := action.Process(act, m.actionContext())
	// A push confirmation survives exactly one action: the next one either
	// consumes it or drops it.
	if !update.ArmPush {
		m.pushArmed = false
	}
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.applyUpdate(update); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.applyResult(res); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	return nil
}

func (m *Model) setStatus(text string) {
	m.statusMsg = text
	m.statusExpire = time.Now().Add(5 * time.Second)
	events.UI.Status(text)
}

func (m *Model) currentStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	if !m.statusExpire.IsZero() && time.Now().After(m.statusExpire) {
		return ""
	}
	return m.statusMsg
}
