package state

import "testing"

func TestCycleReturnsToDashboardAfterSeven(t *testing.T) {
	nav := NewNavigation()
	nav.EnterView(ViewDashboard)
	for i := 0; i < 7; i++ {
		nav.CycleView()
	}
	if nav.View != ViewDashboard {
		t.Fatalf("expected dashboard after seven cycles, got %v", nav.View)
	}
}

func TestCycleOrder(t *testing.T) {
	want := []ViewMode{
		ViewChanges, ViewHistory, ViewBranches, ViewMerge,
		ViewBoard, ViewModules, ViewDashboard,
	}
	v := ViewDashboard
	for i, expected := range want {
		v = v.Next()
		if v != expected {
			t.Fatalf("step %d: expected %v, got %v", i, expected, v)
		}
	}
}

func TestNextFromNonRingViewResumesAtDashboard(t *testing.T) {
	if got := ViewSettings.Next(); got != ViewDashboard {
		t.Fatalf("expected dashboard, got %v", got)
	}
	if got := ViewHelp.Next(); got != ViewDashboard {
		t.Fatalf("expected dashboard, got %v", got)
	}
}

func TestMenuSaturates(t *testing.T) {
	nav := NewNavigation()
	if nav.MenuUp() {
		t.Fatalf("cursor at top should not move up")
	}
	last := len(MenuEntries()) - 1
	nav.MenuIndex = last
	if nav.MenuDown() {
		t.Fatalf("cursor at bottom should not move down")
	}
	if nav.MenuIndex != last {
		t.Fatalf("cursor moved to %d", nav.MenuIndex)
	}
}

func TestMenuNextWraps(t *testing.T) {
	nav := NewNavigation()
	nav.MenuIndex = len(MenuEntries()) - 1
	nav.MenuNext()
	if nav.MenuIndex != 0 {
		t.Fatalf("expected wrap to 0, got %d", nav.MenuIndex)
	}
}

func TestEnterViewRecordsLastView(t *testing.T) {
	nav := NewNavigation()
	nav.EnterView(ViewChanges)
	if nav.Focus != FocusView {
		t.Fatalf("expected view focus")
	}
	nav.EnterView(ViewHelp)
	if nav.LastView != ViewChanges {
		t.Fatalf("expected last view Changes, got %v", nav.LastView)
	}
	nav.Back()
	if nav.View != ViewChanges {
		t.Fatalf("expected help to fall back to Changes, got %v", nav.View)
	}
	if nav.Focus != FocusView {
		t.Fatalf("overlay fallback should keep view focus")
	}
	nav.Back()
	if nav.Focus != FocusMenu {
		t.Fatalf("expected menu focus after second back")
	}
}
