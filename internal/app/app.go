package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/hn-tui/internal/hn"
	"github.com/atomicstack/hn-tui/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// requestsPerFetch bounds a whole fetch relative to the per-request HTTP
// timeout, since a comment thread takes many requests.
const requestsPerFetch = 4

// Config describes user-provided application options.
type Config struct {
	Category   string
	Limit      int
	Width      int
	Height     int
	ShowFooter bool
	APIURL     string
	SearchURL  string
	Timeout    time.Duration
	Workers    int
	Interval   time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	category, err := hn.LookupCategory(cfg.Category)
	if err != nil {
		return fmt.Errorf("resolve category: %w", err)
	}
	client := hn.NewClient(clientOptions(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := ui.NewModel(ui.Options{
		Source:     client,
		Category:   category,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Context:    ctx,
		Timeout:    cfg.Timeout * requestsPerFetch,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func clientOptions(cfg Config) hn.Options {
	return hn.Options{
		BaseURL:   cfg.APIURL,
		SearchURL: cfg.SearchURL,
		Limit:     cfg.Limit,
		Workers:   cfg.Workers,
		Timeout:   cfg.Timeout,
		Interval:  cfg.Interval,
	}
}
