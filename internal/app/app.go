package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/wallpicker/internal/ui"
	uistate "github.com/atomicstack/wallpicker/internal/ui/state"
	"github.com/atomicstack/wallpicker/internal/wallpaper"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	RootPath     string
	TitlePrefix  string
	Extension    string
	TickInterval time.Duration
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
}

// Run executes the Bubble Tea program for model until the user quits.
func Run(model *ui.Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	return nil
}

// NewModel scans the root directory and wires the wallpaper setter into a
// ready-to-run UI model.
func NewModel(cfg Config) (*ui.Model, error) {
	browser, err := uistate.New(cfg.RootPath, cfg.Extension)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.RootPath, err)
	}
	setter := wallpaper.NewSetter(wallpaper.DefaultExecutable, wallpaper.DefaultOutput)
	return ui.NewModel(browser, setter, ui.Options{
		TitlePrefix:  cfg.TitlePrefix,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		TickInterval: cfg.TickInterval,
	}), nil
}
