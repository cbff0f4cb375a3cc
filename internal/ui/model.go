package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/wallpicker/internal/theme"
	"github.com/atomicstack/wallpicker/internal/ui/command"
	uistate "github.com/atomicstack/wallpicker/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTickInterval = 250 * time.Millisecond
	defaultWidth        = 80
	defaultHeight       = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the picker model.
type Options struct {
	TitlePrefix  string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	TickInterval time.Duration
}

// Model implements the Bubble Tea model for the wallpaper picker.
type Model struct {
	browser *uistate.Browser
	keys    keyMap
	help    help.Model
	bus     *command.Bus

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	titlePrefix string
	tick        time.Duration

	dispatching  bool
	pendingLabel string
	infoMsg      string
	infoExpire   time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the browser and dispatcher into a Bubble Tea model.
func NewModel(browser *uistate.Browser, dispatcher command.Dispatcher, opts Options) *Model {
	m := &Model{
		browser:     browser,
		keys:        defaultKeyMap(),
		help:        help.New(),
		bus:         command.New(dispatcher),
		showFooter:  opts.ShowFooter,
		verbose:     opts.Verbose,
		titlePrefix: opts.TitlePrefix,
		tick:        opts.TickInterval,
	}
	if m.tick <= 0 {
		m.tick = defaultTickInterval
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.help.Width = m.width
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update responds to Bubble Tea messages. Bubble Tea redraws after every
// call, so the tick alone keeps the view refreshed.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Browser exposes the navigation state.
func (m *Model) Browser() *uistate.Browser {
	return m.browser
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(command.Result{}):    m.handleDispatchResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}
