package git

import (
	"testing"

	"github.com/atomicstack/forge/internal/testutil"
)

func TestDiscoverFromSubdirectory(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteFile("pkg/deep/file.go", "package deep\n")

	client, err := Discover(repo.Dir + "/pkg/deep")
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if client.Root() != repo.Dir {
		t.Fatalf("expected root %q, got %q", repo.Dir, client.Root())
	}
}

func TestDiscoverRejectsNonRepository(t *testing.T) {
	if _, err := Discover(t.TempDir()); err == nil {
		t.Fatalf("expected error for non-repository path")
	}
}

func TestStatusReportsStagedAndUntracked(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteFile("staged.txt", "one\n")
	repo.Stage("staged.txt")
	repo.WriteFile("untracked.txt", "two\n")

	client, err := Discover(repo.Dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	changes, err := client.Status()
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	byPath := make(map[string]Change, len(changes))
	for _, change := range changes {
		byPath[change.Path] = change
	}
	staged, ok := byPath["staged.txt"]
	if !ok || !staged.Staged || staged.Kind != KindAdded {
		t.Fatalf("unexpected staged entry: %+v (present=%v)", staged, ok)
	}
	untracked, ok := byPath["untracked.txt"]
	if !ok || untracked.Staged || untracked.Kind != KindUntracked {
		t.Fatalf("unexpected untracked entry: %+v (present=%v)", untracked, ok)
	}
}

func TestStatusOrdersStagedFirst(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteFile("a-untracked.txt", "x\n")
	repo.WriteFile("z-staged.txt", "y\n")
	repo.Stage("z-staged.txt")

	client, _ := Discover(repo.Dir)
	changes, err := client.Status()
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(changes))
	}
	if changes[0].Path != "z-staged.txt" {
		t.Fatalf("expected staged entry first, got %q", changes[0].Path)
	}
}

func TestStageUnstageRoundTrip(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteFile("file.txt", "content\n")

	client, _ := Discover(repo.Dir)
	if err := client.Stage("file.txt"); err != nil {
		t.Fatalf("Stage returned error: %v", err)
	}
	changes, _ := client.Status()
	if len(changes) != 1 || !changes[0].Staged {
		t.Fatalf("expected one staged change, got %+v", changes)
	}
	if err := client.Unstage("file.txt"); err != nil {
		t.Fatalf("Unstage returned error: %v", err)
	}
	changes, _ = client.Status()
	if len(changes) != 1 || changes[0].Staged {
		t.Fatalf("expected one unstaged change, got %+v", changes)
	}
}

func TestCommitRecordsMessage(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteFile("feature.go", "package feature\n")

	client, _ := Discover(repo.Dir)
	if err := client.Stage("feature.go"); err != nil {
		t.Fatalf("Stage returned error: %v", err)
	}
	hash, err := client.Commit("add feature")
	if err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}
	if len(hash) != 40 {
		t.Fatalf("expected full hash, got %q", hash)
	}
	commits, err := client.Log(1)
	if err != nil {
		t.Fatalf("Log returned error: %v", err)
	}
	if len(commits) != 1 || commits[0].Message != "add feature" {
		t.Fatalf("unexpected log head: %+v", commits)
	}
	if len(commits[0].Files) != 1 || commits[0].Files[0] != "feature.go" {
		t.Fatalf("expected touched file feature.go, got %v", commits[0].Files)
	}
}

func TestCommitRejectsEmptyMessage(t *testing.T) {
	repo := testutil.NewRepo(t)
	client, _ := Discover(repo.Dir)
	if _, err := client.Commit("   "); err == nil {
		t.Fatalf("expected error for blank message")
	}
}

func TestBranchLifecycle(t *testing.T) {
	repo := testutil.NewRepo(t)
	client, _ := Discover(repo.Dir)

	if err := client.CreateBranch("feature/x"); err != nil {
		t.Fatalf("CreateBranch returned error: %v", err)
	}
	if err := client.CreateBranch("feature/x"); err == nil {
		t.Fatalf("expected error for duplicate branch")
	}
	branches, err := client.Branches()
	if err != nil {
		t.Fatalf("Branches returned error: %v", err)
	}
	if len(branches) != 2 {
		t.Fatalf("expected 2 branches, got %+v", branches)
	}

	if err := client.SwitchBranch("feature/x"); err != nil {
		t.Fatalf("SwitchBranch returned error: %v", err)
	}
	head, err := client.HeadBranch()
	if err != nil {
		t.Fatalf("HeadBranch returned error: %v", err)
	}
	if head != "feature/x" {
		t.Fatalf("expected head feature/x, got %q", head)
	}
	if err := client.DeleteBranch("feature/x"); err == nil {
		t.Fatalf("expected refusal to delete the checked-out branch")
	}

	if err := client.SwitchBranch("master"); err != nil {
		t.Fatalf("SwitchBranch returned error: %v", err)
	}
	if err := client.DeleteBranch("feature/x"); err != nil {
		t.Fatalf("DeleteBranch returned error: %v", err)
	}
	if err := client.DeleteBranch("feature/x"); err == nil {
		t.Fatalf("expected error for unknown branch")
	}
}

func TestLogLimit(t *testing.T) {
	repo := testutil.NewRepo(t)
	for i := 0; i < 3; i++ {
		repo.WriteFile("file.txt", string(rune('a'+i))+"\n")
		repo.Stage("file.txt")
		repo.Commit("update file")
	}
	client, _ := Discover(repo.Dir)
	commits, err := client.Log(2)
	if err != nil {
		t.Fatalf("Log returned error: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(commits))
	}
}

func TestCommittersDeduplicates(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteFile("file.txt", "x\n")
	repo.Stage("file.txt")
	repo.Commit("second")

	client, _ := Discover(repo.Dir)
	names, err := client.Committers(10)
	if err != nil {
		t.Fatalf("Committers returned error: %v", err)
	}
	if len(names) != 1 || names[0] != "Test Author" {
		t.Fatalf("unexpected committers: %v", names)
	}
}

func TestRemotes(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.AddRemote("origin", testutil.NewBareRemote(t))
	client, _ := Discover(repo.Dir)
	names, err := client.Remotes()
	if err != nil {
		t.Fatalf("Remotes returned error: %v", err)
	}
	if len(names) != 1 || names[0] != "origin" {
		t.Fatalf("unexpected remotes: %v", names)
	}
}

func TestMetadataDir(t *testing.T) {
	repo := testutil.NewRepo(t)
	client, _ := Discover(repo.Dir)
	want := repo.Dir + "/.git/forge"
	if got := client.MetadataDir(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
