package git

import (
	"context"
	"testing"

	"github.com/atomicstack/forge/internal/testutil"
)

func TestPushThenFetchLocalRemote(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.AddRemote("origin", testutil.NewBareRemote(t))

	client, err := Discover(repo.Dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	ctx := context.Background()
	if err := client.Push(ctx, "origin", nil); err != nil {
		t.Fatalf("Push returned error: %v", err)
	}
	// Nothing new on either side: both must report clean success.
	if err := client.Push(ctx, "origin", nil); err != nil {
		t.Fatalf("second Push returned error: %v", err)
	}
	if err := client.Fetch(ctx, "origin", nil); err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
}

func TestPullAlreadyUpToDate(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.AddRemote("origin", testutil.NewBareRemote(t))

	client, _ := Discover(repo.Dir)
	ctx := context.Background()
	if err := client.Push(ctx, "origin", nil); err != nil {
		t.Fatalf("Push returned error: %v", err)
	}
	if err := client.Pull(ctx, "origin", nil); err != nil {
		t.Fatalf("Pull returned error: %v", err)
	}
}

func TestFetchCancelledContext(t *testing.T) {
	repo := testutil.NewRepo(t)
	repo.AddRemote("origin", testutil.NewBareRemote(t))

	client, _ := Discover(repo.Dir)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := client.Fetch(ctx, "origin", nil)
	if err == nil {
		t.Skip("local transport completed before observing cancellation")
	}
	if Classify(err) != ClassCancelled {
		t.Fatalf("expected cancelled class, got %v (%v)", Classify(err), err)
	}
}

func TestFetchUnknownRemote(t *testing.T) {
	repo := testutil.NewRepo(t)
	client, _ := Discover(repo.Dir)
	if err := client.Fetch(context.Background(), "nowhere", nil); err == nil {
		t.Fatalf("expected error for unknown remote")
	}
}
