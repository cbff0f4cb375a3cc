package command

import (
	"github.com/atomicstack/wallpicker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Dispatcher hands a file to the external wallpaper command.
type Dispatcher interface {
	Dispatch(path string) error
}

// Request encapsulates a dispatch invocation.
type Request struct {
	ID    string
	Label string
	Path  string
}

// Result is delivered back to the UI once a request has finished.
type Result struct {
	ID    string
	Label string
	Path  string
	Err   error
}

// Bus runs dispatch requests off the UI loop.
type Bus struct {
	dispatcher Dispatcher
}

// New initialises a command bus around the given dispatcher.
func New(d Dispatcher) *Bus {
	return &Bus{dispatcher: d}
}

// Execute wraps a dispatch into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Path)
	return func() tea.Msg {
		if b == nil || b.dispatcher == nil {
			events.Command.Skip(req.ID, req.Path)
			return Result{ID: req.ID, Label: req.Label, Path: req.Path}
		}
		err := b.dispatcher.Dispatch(req.Path)
		events.Command.Result(req.ID, req.Path, err)
		return Result{ID: req.ID, Label: req.Label, Path: req.Path, Err: err}
	}
}
