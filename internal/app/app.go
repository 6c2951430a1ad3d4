package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/forge/internal/async"
	"github.com/atomicstack/forge/internal/git"
	"github.com/atomicstack/forge/internal/logging"
	"github.com/atomicstack/forge/internal/logging/events"
	"github.com/atomicstack/forge/internal/store"
	"github.com/atomicstack/forge/internal/ui"
)

const committerScanLimit = 200

// Config describes user-provided application options.
type Config struct {
	RepoPath   string
	Remote     string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	path := cfg.RepoPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		path = cwd
	}
	client, err := git.Discover(path)
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}
	if branch, err := client.HeadBranch(); err == nil {
		events.App.RepositoryOpened(client.Root(), branch)
	}

	data, err := store.Open(client.MetadataDir())
	if err != nil {
		return fmt.Errorf("open project data: %w", err)
	}
	if names, err := client.Committers(committerScanLimit); err == nil {
		if data.AutoPopulateDevelopers(names) > 0 {
			if err := data.Save(); err != nil {
				logging.Error(err)
			}
		}
	}

	engine := async.NewEngine(func(ctx context.Context, kind async.Kind, sink git.ProgressSink) error {
		switch kind {
		case async.KindFetch:
			return client.Fetch(ctx, cfg.Remote, sink)
		case async.KindPush:
			return client.Push(ctx, cfg.Remote, sink)
		case async.KindPull:
			return client.Pull(ctx, cfg.Remote, sink)
		}
		return fmt.Errorf("unknown operation %v", kind)
	})

	model := ui.NewModel(client, engine, data, cfg.Remote, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
