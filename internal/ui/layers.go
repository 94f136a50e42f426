package ui

import (
	"strings"
	"time"

	"github.com/atomicstack/hn-tui/internal/hn"
	"github.com/atomicstack/hn-tui/internal/ui/event"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// keyHelper is implemented by layers that contribute to the footer help.
type keyHelper interface {
	ShortHelp() []key.Binding
}

// pendingCommander is implemented by layers with a raw command buffer.
type pendingCommander interface {
	pending() string
	clearPending()
}

// storyLayer lists the stories of one category.
type storyLayer struct {
	*listState
	category hn.Category
	chain    event.Chain[*listState]
}

func newStoryLayer(category hn.Category, items []hn.Item, focus int, now func() time.Time) *storyLayer {
	return &storyLayer{
		listState: newListState("stories:"+category.ID, items, focus, now),
		category:  category,
		chain:     listChain(),
	}
}

func (l *storyLayer) Title() string { return l.category.Title }

func (l *storyLayer) HandleKey(msg tea.KeyMsg) event.Result {
	return l.handleKey(l.chain, msg)
}

func (l *storyLayer) Update(tea.Msg) tea.Cmd { return nil }

func (l *storyLayer) View(_, height int) string {
	return l.view(height)
}

func (l *storyLayer) ShortHelp() []key.Binding {
	return []key.Binding{listKeys.Enter, listKeys.Open, listKeys.Goto}
}

// loadingLayer is the placeholder shown while a fetch is in flight.
type loadingLayer struct {
	label   string
	spinner spinner.Model
}

func newLoadingLayer(label string) *loadingLayer {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(*styles.Spinner))
	return &loadingLayer{label: label, spinner: s}
}

func (l *loadingLayer) Init() tea.Cmd {
	return l.spinner.Tick
}

func (l *loadingLayer) Title() string { return "Loading" }

func (l *loadingLayer) HandleKey(tea.KeyMsg) event.Result { return event.Ignored() }

func (l *loadingLayer) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(tick)
	return cmd
}

func (l *loadingLayer) View(int, int) string {
	return l.spinner.View() + " " + styles.Loading.Render("Loading "+l.label+"…")
}

var errorKeys = struct {
	Retry key.Binding
	Back  key.Binding
}{
	Retry: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
	Back:  key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
}

// errorLayer replaces a placeholder whose fetch failed.
type errorLayer struct {
	title string
	err   error
	retry event.Effect
}

func (l *errorLayer) Title() string { return l.title }

func (l *errorLayer) HandleKey(msg tea.KeyMsg) event.Result {
	switch {
	case key.Matches(msg, errorKeys.Retry) && l.retry != nil:
		return event.HandledWith(l.retry)
	case key.Matches(msg, errorKeys.Back):
		return event.HandledWith(backMsg{})
	}
	return event.Ignored()
}

func (l *errorLayer) Update(tea.Msg) tea.Cmd { return nil }

func (l *errorLayer) View(width, _ int) string {
	text := wrap("Error: "+l.err.Error(), width)
	return styleEach(styles.Error, text) + "\n\n" + styles.Info.Render("r retry · esc back · q quit")
}

func (l *errorLayer) ShortHelp() []key.Binding {
	return []key.Binding{errorKeys.Retry, errorKeys.Back}
}

// styleEach styles every line on its own so lipgloss does not pad the block
// to a common width.
func styleEach(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
