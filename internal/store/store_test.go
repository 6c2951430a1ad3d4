package store

import (
	"path/filepath"
	"testing"
)

func TestOpenEmptyDirectory(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "forge"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if len(s.Modules) != 0 || len(s.Developers) != 0 {
		t.Fatalf("expected empty store, got %d modules %d developers", len(s.Modules), len(s.Developers))
	}
	if !s.Settings.AutoRefresh || !s.Settings.DiffPreview {
		t.Fatalf("unexpected default settings: %+v", s.Settings)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "forge")
	s, _ := Open(dir)
	module := s.AddModule("parser")
	s.AddDeveloper("alice")
	s.Settings.VimKeys = true
	if err := s.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if len(loaded.Modules) != 1 || loaded.Modules[0].ID != module.ID {
		t.Fatalf("modules did not round-trip: %+v", loaded.Modules)
	}
	if len(loaded.Developers) != 1 || loaded.Developers[0].Name != "alice" {
		t.Fatalf("developers did not round-trip: %+v", loaded.Developers)
	}
	if !loaded.Settings.VimKeys {
		t.Fatalf("settings did not round-trip: %+v", loaded.Settings)
	}
}

func TestAdvanceModule(t *testing.T) {
	s := &Store{}
	module := s.AddModule("core")
	if !s.AdvanceModule(module.ID) || s.Modules[0].Status != StatusCurrent {
		t.Fatalf("expected current, got %v", s.Modules[0].Status)
	}
	if !s.AdvanceModule(module.ID) || s.Modules[0].Status != StatusCompleted {
		t.Fatalf("expected completed, got %v", s.Modules[0].Status)
	}
	if s.Modules[0].Progress != 100 {
		t.Fatalf("completion should set progress to 100, got %d", s.Modules[0].Progress)
	}
	if s.AdvanceModule(module.ID) {
		t.Fatalf("completed module should not advance")
	}
}

func TestBumpProgressOnCommit(t *testing.T) {
	s := &Store{}
	first := s.AddModule("first")
	second := s.AddModule("second")
	s.AdvanceModule(first.ID)
	s.AdvanceModule(second.ID)

	if !s.BumpProgressOnCommit() {
		t.Fatalf("expected bump to apply")
	}
	if s.Modules[0].Progress != 8 {
		t.Fatalf("expected first current module at 8, got %d", s.Modules[0].Progress)
	}
	if s.Modules[1].Progress != 0 {
		t.Fatalf("second current module should be untouched, got %d", s.Modules[1].Progress)
	}

	s.Modules[0].Progress = 97
	s.BumpProgressOnCommit()
	if s.Modules[0].Progress != 100 {
		t.Fatalf("expected cap at 100, got %d", s.Modules[0].Progress)
	}
	if s.BumpProgressOnCommit() {
		t.Fatalf("capped module should not bump again")
	}
}

func TestBumpProgressNoCurrentModule(t *testing.T) {
	s := &Store{}
	s.AddModule("pending only")
	if s.BumpProgressOnCommit() {
		t.Fatalf("no current module: bump should report false")
	}
}

func TestCycleOwner(t *testing.T) {
	s := &Store{}
	module := s.AddModule("ui")
	if s.CycleOwner(module.ID) {
		t.Fatalf("no developers: cycle should report false")
	}
	s.AddDeveloper("alice")
	s.AddDeveloper("bob")

	s.CycleOwner(module.ID)
	if s.Modules[0].Owner != "alice" {
		t.Fatalf("expected alice, got %q", s.Modules[0].Owner)
	}
	s.CycleOwner(module.ID)
	if s.Modules[0].Owner != "bob" {
		t.Fatalf("expected bob, got %q", s.Modules[0].Owner)
	}
	s.CycleOwner(module.ID)
	if s.Modules[0].Owner != "" {
		t.Fatalf("expected unassigned after the last developer, got %q", s.Modules[0].Owner)
	}
}

func TestAutoPopulateDevelopers(t *testing.T) {
	s := &Store{}
	s.AddDeveloper("alice")
	added := s.AutoPopulateDevelopers([]string{"alice", "bob", "", "bob", "carol"})
	if added != 2 {
		t.Fatalf("expected 2 added, got %d", added)
	}
	if len(s.Developers) != 3 {
		t.Fatalf("expected 3 developers, got %d", len(s.Developers))
	}
}

func TestDeleteModuleAndDeveloper(t *testing.T) {
	s := &Store{}
	module := s.AddModule("a")
	dev := s.AddDeveloper("alice")
	if !s.DeleteModule(module.ID) || len(s.Modules) != 0 {
		t.Fatalf("module not deleted")
	}
	if s.DeleteModule(module.ID) {
		t.Fatalf("double delete should report false")
	}
	if !s.DeleteDeveloper(dev.ID) || len(s.Developers) != 0 {
		t.Fatalf("developer not deleted")
	}
}

func TestByStatusBuckets(t *testing.T) {
	s := &Store{}
	a := s.AddModule("a")
	s.AddModule("b")
	c := s.AddModule("c")
	s.AdvanceModule(a.ID)
	s.AdvanceModule(c.ID)
	s.AdvanceModule(c.ID)

	pending, current, completed := s.ByStatus()
	if len(pending) != 1 || pending[0].Name != "b" {
		t.Fatalf("unexpected pending: %+v", pending)
	}
	if len(current) != 1 || current[0].Name != "a" {
		t.Fatalf("unexpected current: %+v", current)
	}
	if len(completed) != 1 || completed[0].Name != "c" {
		t.Fatalf("unexpected completed: %+v", completed)
	}
}

func TestToggleSetting(t *testing.T) {
	s := &Store{Settings: defaultSettings()}
	if !s.ToggleSetting(0) || s.Settings.AutoRefresh {
		t.Fatalf("toggle did not flip auto refresh")
	}
	if s.ToggleSetting(99) {
		t.Fatalf("out-of-range toggle should report false")
	}
	values := s.SettingValues()
	if len(values) != len(SettingNames()) {
		t.Fatalf("values and names disagree: %d vs %d", len(values), len(SettingNames()))
	}
}
