package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ModuleStatus tracks where a module sits on the board.
type ModuleStatus string

const (
	StatusPending   ModuleStatus = "pending"
	StatusCurrent   ModuleStatus = "current"
	StatusCompleted ModuleStatus = "completed"
)

// Advance returns the next board column for the status. Completed stays put.
func (s ModuleStatus) Advance() ModuleStatus {
	switch s {
	case StatusPending:
		return StatusCurrent
	case StatusCurrent:
		return StatusCompleted
	}
	return s
}

// Module is one tracked project module.
type Module struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Owner    string       `json:"owner,omitempty"`
	Status   ModuleStatus `json:"status"`
	Progress int          `json:"progress_score"`
}

// Developer is one known contributor.
type Developer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Settings holds the toggleable options.
type Settings struct {
	AutoRefresh bool `json:"auto_refresh"`
	DiffPreview bool `json:"diff_preview"`
	VimKeys     bool `json:"vim_keys"`
	ConfirmPush bool `json:"confirm_push"`
}

func defaultSettings() Settings {
	return Settings{AutoRefresh: true, DiffPreview: true}
}

// SettingNames lists the options in display order.
func SettingNames() []string {
	return []string{"Auto refresh", "Diff preview", "Vim keys", "Confirm before push"}
}

const (
	modulesFile    = "modules.json"
	developersFile = "developers.json"
	settingsFile   = "settings.json"
)

// Store persists modules, developers and settings as JSON files under the
// repository metadata directory.
type Store struct {
	dir        string
	Modules    []Module
	Developers []Developer
	Settings   Settings
}

// Open loads the store from dir, creating empty state when the files do not
// exist yet.
func Open(dir string) (*Store, error) {
	s := &Store{dir: dir, Settings: defaultSettings()}
	if err := loadJSON(filepath.Join(dir, modulesFile), &s.Modules); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, developersFile), &s.Developers); err != nil {
		return nil, err
	}
	if err := loadJSON(filepath.Join(dir, settingsFile), &s.Settings); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes all three data files.
func (s *Store) Save() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := saveJSON(filepath.Join(s.dir, modulesFile), s.Modules); err != nil {
		return err
	}
	if err := saveJSON(filepath.Join(s.dir, developersFile), s.Developers); err != nil {
		return err
	}
	return saveJSON(filepath.Join(s.dir, settingsFile), s.Settings)
}

// AddModule appends a pending module and returns it.
func (s *Store) AddModule(name string) Module {
	module := Module{ID: uuid.NewString(), Name: name, Status: StatusPending}
	s.Modules = append(s.Modules, module)
	return module
}

// DeleteModule removes the module with the given id.
func (s *Store) DeleteModule(id string) bool {
	for i, module := range s.Modules {
		if module.ID == id {
			s.Modules = append(s.Modules[:i], s.Modules[i+1:]...)
			return true
		}
	}
	return false
}

// AddDeveloper appends a developer and returns it.
func (s *Store) AddDeveloper(name string) Developer {
	dev := Developer{ID: uuid.NewString(), Name: name}
	s.Developers = append(s.Developers, dev)
	return dev
}

// DeleteDeveloper removes the developer with the given id.
func (s *Store) DeleteDeveloper(id string) bool {
	for i, dev := range s.Developers {
		if dev.ID == id {
			s.Developers = append(s.Developers[:i], s.Developers[i+1:]...)
			return true
		}
	}
	return false
}

// AdvanceModule moves the module to the next board column.
func (s *Store) AdvanceModule(id string) bool {
	for i := range s.Modules {
		if s.Modules[i].ID != id {
			continue
		}
		next := s.Modules[i].Status.Advance()
		if next == s.Modules[i].Status {
			return false
		}
		s.Modules[i].Status = next
		if next == StatusCompleted {
			s.Modules[i].Progress = 100
		}
		return true
	}
	return false
}

// CycleOwner assigns the next developer to the module, wrapping and passing
// through unassigned.
func (s *Store) CycleOwner(id string) bool {
	if len(s.Developers) == 0 {
		return false
	}
	for i := range s.Modules {
		if s.Modules[i].ID != id {
			continue
		}
		current := -1
		for j, dev := range s.Developers {
			if dev.Name == s.Modules[i].Owner {
				current = j
				break
			}
		}
		if current == len(s.Developers)-1 {
			s.Modules[i].Owner = ""
		} else {
			s.Modules[i].Owner = s.Developers[current+1].Name
		}
		return true
	}
	return false
}

// BumpProgressOnCommit credits the first current module with 8 points,
// capped at 100.
func (s *Store) BumpProgressOnCommit() bool {
	for i := range s.Modules {
		if s.Modules[i].Status != StatusCurrent {
			continue
		}
		if s.Modules[i].Progress >= 100 {
			return false
		}
		s.Modules[i].Progress += 8
		if s.Modules[i].Progress > 100 {
			s.Modules[i].Progress = 100
		}
		return true
	}
	return false
}

// AutoPopulateDevelopers adds any committer names not yet known.
func (s *Store) AutoPopulateDevelopers(names []string) int {
	known := make(map[string]struct{}, len(s.Developers))
	for _, dev := range s.Developers {
		known[dev.Name] = struct{}{}
	}
	added := 0
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := known[name]; ok {
			continue
		}
		s.AddDeveloper(name)
		known[name] = struct{}{}
		added++
	}
	return added
}

// ByStatus buckets modules into the three board columns, preserving order.
func (s *Store) ByStatus() (pending, current, completed []Module) {
	for _, module := range s.Modules {
		switch module.Status {
		case StatusCurrent:
			current = append(current, module)
		case StatusCompleted:
			completed = append(completed, module)
		default:
			pending = append(pending, module)
		}
	}
	return pending, current, completed
}

// ToggleSetting flips the option at index, in SettingNames order.
func (s *Store) ToggleSetting(index int) bool {
	switch index {
	case 0:
		s.Settings.AutoRefresh = !s.Settings.AutoRefresh
	case 1:
		s.Settings.DiffPreview = !s.Settings.DiffPreview
	case 2:
		s.Settings.VimKeys = !s.Settings.VimKeys
	case 3:
		s.Settings.ConfirmPush = !s.Settings.ConfirmPush
	default:
		return false
	}
	return true
}

// SettingValues returns the option values in SettingNames order.
func (s *Store) SettingValues() []bool {
	return []bool{
		s.Settings.AutoRefresh,
		s.Settings.DiffPreview,
		s.Settings.VimKeys,
		s.Settings.ConfirmPush,
	}
}

func loadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func saveJSON(path string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
