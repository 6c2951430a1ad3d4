package git

import (
	"strings"
	"testing"

	"github.com/atomicstack/forge/internal/testutil"
)

func TestDiffAgainstHead(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteFile("main.go", "package main\n\nfunc main() {}\n")
	repo.Stage("main.go")
	repo.Commit("add main")
	repo.WriteFile("main.go", "package main\n\nfunc main() { run() }\n")

	client, _ := Discover(repo.Dir)
	diff, err := client.Diff("main.go")
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}
	if !strings.Contains(diff, "-func main() {}") {
		t.Fatalf("expected removed line in diff:\n%s", diff)
	}
	if !strings.Contains(diff, "+func main() { run() }") {
		t.Fatalf("expected added line in diff:\n%s", diff)
	}
}

func TestDiffUnchangedFileIsEmpty(t *testing.T) {
	repo := testutil.NewRepo(t)
	client, _ := Discover(repo.Dir)
	diff, err := client.Diff("README.md")
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}
	if diff != "" {
		t.Fatalf("expected empty diff, got:\n%s", diff)
	}
}

func TestDiffNewFileIsAllAdditions(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteFile("new.txt", "alpha\nbeta\n")

	client, _ := Discover(repo.Dir)
	diff, err := client.Diff("new.txt")
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}
	for _, line := range strings.Split(diff, "\n") {
		if line != "" && !strings.HasPrefix(line, "+") {
			t.Fatalf("expected only additions, got line %q", line)
		}
	}
}

func TestDiffPreviewsSeparateSides(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.WriteFile("doc.txt", "committed\n")
	repo.Stage("doc.txt")
	repo.Commit("add doc")
	repo.WriteFile("doc.txt", "staged\n")
	repo.Stage("doc.txt")
	repo.WriteFile("doc.txt", "working\n")

	client, _ := Discover(repo.Dir)
	preview, err := client.DiffPreviews("doc.txt")
	if err != nil {
		t.Fatalf("DiffPreviews returned error: %v", err)
	}
	if !strings.Contains(preview.Local, "+working") || !strings.Contains(preview.Local, "-staged") {
		t.Fatalf("unexpected local preview:\n%s", preview.Local)
	}
	if !strings.Contains(preview.Incoming, "+staged") || !strings.Contains(preview.Incoming, "-committed") {
		t.Fatalf("unexpected incoming preview:\n%s", preview.Incoming)
	}
}
