package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/hn-tui/internal/hn"
	"github.com/atomicstack/hn-tui/internal/state"
	"github.com/atomicstack/hn-tui/internal/theme"
	"github.com/atomicstack/hn-tui/internal/ui/command"
	"github.com/atomicstack/hn-tui/internal/ui/event"
	"github.com/atomicstack/hn-tui/internal/ui/layer"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Source provides stories and comment threads. hn.Client implements it.
type Source interface {
	FetchList(ctx context.Context, category hn.Category) ([]hn.Item, error)
	FetchDetail(ctx context.Context, id int) (hn.Detail, error)
	Search(ctx context.Context, query string) ([]hn.Item, error)
}

// Opener launches url in an external program, normally the browser.
type Opener func(url string) error

// Clipboard writes text to the system clipboard.
type Clipboard func(text string) error

// Options configures NewModel. Source is required; everything else has a
// usable default.
type Options struct {
	Source     Source
	Category   hn.Category
	Width      int
	Height     int
	ShowFooter bool
	Opener     Opener
	Clipboard  Clipboard
	Context    context.Context
	Timeout    time.Duration
	Now        func() time.Time
}

// Model implements the Bubble Tea model for the story browser.
type Model struct {
	stack    *layer.Stack
	source   Source
	bus      *command.Bus
	stories  state.StoryStore
	global   event.Chain[*Model]
	category hn.Category
	home     hn.Category

	opener    Opener
	clipboard Clipboard
	now       func() time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	help        help.Model

	infoMsg    string
	infoExpire time.Time

	initCmd  tea.Cmd
	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model with a loading layer as root and schedules the
// initial fetch of opts.Category, which Init hands to the program.
func NewModel(opts Options) *Model {
	category := opts.Category
	if category.ID == "" {
		category = hn.DefaultCategory
	}
	m := &Model{
		source:     opts.Source,
		bus:        command.New(opts.Context, opts.Timeout),
		stories:    state.NewStoryStore(),
		category:   category,
		home:       category,
		opener:     opts.Opener,
		clipboard:  opts.Clipboard,
		now:        opts.Now,
		showFooter: opts.ShowFooter,
		help:       help.New(),
	}
	if m.opener == nil {
		m.opener = browser.OpenURL
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if m.now == nil {
		m.now = time.Now
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.global = globalChain()
	m.registerHandlers()

	loading := newLoadingLayer(category.Title)
	m.stack = layer.NewStack(loading)
	m.initCmd = tea.Batch(loading.Init(), m.fetchList(m.stack.Top().ID, category))
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmd := m.initCmd
	m.initCmd = nil
	return cmd
}

// Update responds to Bubble Tea messages. Messages without a registered
// handler are offered to every visible layer, which is how spinners tick.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	cmds := make([]tea.Cmd, 0, 2)
	for _, entry := range m.stack.Visible() {
		if cmd := entry.Layer.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, batch(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,

		reflect.TypeOf(drillDownMsg{}):     m.handleDrillDown,
		reflect.TypeOf(openLinkMsg{}):      m.handleOpenLink,
		reflect.TypeOf(copyLinkMsg{}):      m.handleCopyLink,
		reflect.TypeOf(showCategoryMsg{}):  m.handleShowCategory,
		reflect.TypeOf(showSearchMsg{}):    m.handleShowSearch,
		reflect.TypeOf(showHelpMsg{}):      m.handleShowHelp,
		reflect.TypeOf(closeHelpMsg{}):     m.handleCloseHelp,
		reflect.TypeOf(backMsg{}):          m.handleBack,
		reflect.TypeOf(searchRequestMsg{}): m.handleSearchRequest,
		reflect.TypeOf(quitMsg{}):          m.handleQuit,

		reflect.TypeOf(storiesLoadedMsg{}): m.handleStoriesLoaded,
		reflect.TypeOf(detailLoadedMsg{}):  m.handleDetailLoaded,
		reflect.TypeOf(searchResultsMsg{}): m.handleSearchResults,
		reflect.TypeOf(linkOpenedMsg{}):    m.handleLinkOpened,
		reflect.TypeOf(linkCopiedMsg{}):    m.handleLinkCopied,
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

// applyEffect runs a deferred effect produced by key dispatch.
func (m *Model) applyEffect(effect event.Effect) tea.Cmd {
	handler := m.handlerFor(effect)
	if handler == nil {
		return nil
	}
	return handler(effect)
}

// Stack exposes the layer stack for inspection.
func (m *Model) Stack() *layer.Stack {
	return m.stack
}

// Category returns the feed currently browsed.
func (m *Model) Category() hn.Category {
	return m.category
}

func batch(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}
