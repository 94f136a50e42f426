package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/hn-tui/internal/hn"
	"github.com/atomicstack/hn-tui/internal/logging/events"
	"github.com/atomicstack/hn-tui/internal/summary"
	"github.com/atomicstack/hn-tui/internal/ui/event"
	uistate "github.com/atomicstack/hn-tui/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	itemIndicator = "▌"
	// linesPerItem is a summary block (at most three lines) plus a separator.
	linesPerItem = 4
	itemLinkBase = "https://news.ycombinator.com/item?id="
)

type listKeyMap struct {
	Enter    key.Binding
	Open     key.Binding
	Copy     key.Binding
	Digit    key.Binding
	Goto     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

var listKeys = listKeyMap{
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open comments")),
	Open:     key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "open link")),
	Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
	Digit:    key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "story number")),
	Goto:     key.NewBinding(key.WithKeys("g"), key.WithHelp("<n>g", "go to story n")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
	Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first story")),
	End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last story")),
}

// listChain is the base binding set shared by every story list. Views extend
// it with With/Pre/Post; the base chain itself is never modified.
func listChain() event.Chain[*listState] {
	return event.New[*listState]().
		Pre(listKeys.Enter, drillDownFocused).
		Pre(listKeys.Open, openFocusedLink).
		Pre(listKeys.Copy, copyFocusedLink).
		Pre(listKeys.Digit, pushDigit).
		Pre(listKeys.Goto, gotoStory)
}

// listState is a focusable story list with its pending numeric prefix.
type listState struct {
	name string
	list *uistate.ListView
	raw  uistate.RawCommand
	now  func() time.Time
	// rows is the number of stories that fit, as of the last render.
	rows int
}

func newListState(name string, items []hn.Item, focus int, now func() time.Time) *listState {
	if now == nil {
		now = time.Now
	}
	s := &listState{name: name, list: uistate.NewListView(items), now: now}
	if focus > 0 {
		_ = s.list.SetFocus(focus)
	}
	return s
}

// handleKey dispatches msg through chain with the default list movement as
// inner handling. The raw buffer only survives consecutive digits.
func (s *listState) handleKey(chain event.Chain[*listState], msg tea.KeyMsg) event.Result {
	res := chain.Dispatch(s, msg, s.defaultKey)
	if !key.Matches(msg, listKeys.Digit) {
		s.clearPending()
	}
	return res
}

func (s *listState) clearPending() {
	if s.raw.Empty() {
		return
	}
	s.raw.Clear()
	events.Command.RawClear(s.name)
}

func (s *listState) defaultKey(msg tea.KeyMsg) event.Result {
	var moved bool
	switch {
	case key.Matches(msg, listKeys.Up):
		moved = s.list.MoveFocusUp()
	case key.Matches(msg, listKeys.Down):
		moved = s.list.MoveFocusDown()
	case key.Matches(msg, listKeys.PageUp):
		moved = s.list.MoveFocusPageUp(s.rows)
	case key.Matches(msg, listKeys.PageDown):
		moved = s.list.MoveFocusPageDown(s.rows)
	case key.Matches(msg, listKeys.Home):
		moved = s.list.MoveFocusHome()
	case key.Matches(msg, listKeys.End):
		moved = s.list.MoveFocusEnd()
	default:
		return event.Ignored()
	}
	if moved {
		events.UI.Focus(s.name, s.list.FocusIndex())
	}
	return event.Handled()
}

// pending returns the digits typed so far, for the status line.
func (s *listState) pending() string {
	return s.raw.String()
}

func drillDownFocused(s *listState, _ tea.KeyMsg) event.Result {
	item, ok := s.list.Focused()
	if !ok {
		return event.Ignored()
	}
	events.UI.Enter(s.name, item.ID, item.Title)
	return event.HandledWith(drillDownMsg{item: item})
}

func openFocusedLink(s *listState, _ tea.KeyMsg) event.Result {
	item, ok := s.list.Focused()
	if !ok || item.URL == "" {
		return event.Handled()
	}
	return event.HandledWith(openLinkMsg{url: item.URL})
}

func copyFocusedLink(s *listState, _ tea.KeyMsg) event.Result {
	item, ok := s.list.Focused()
	if !ok {
		return event.Handled()
	}
	return event.HandledWith(copyLinkMsg{url: itemLink(item)})
}

func pushDigit(s *listState, msg tea.KeyMsg) event.Result {
	for _, r := range msg.Runes {
		s.raw.Push(r)
	}
	events.Command.RawPush(s.name, s.raw.String())
	return event.Handled()
}

// gotoStory focuses the story numbered by the raw buffer. Zero cancels.
func gotoStory(s *listState, _ tea.KeyMsg) event.Result {
	n, err := s.raw.Number()
	if err != nil {
		return event.Ignored()
	}
	s.raw.Clear()
	if n == 0 {
		events.Command.Goto(s.name, 0, false)
		return event.Ignored()
	}
	if err := s.list.SetFocus(n - 1); err != nil {
		events.Command.Goto(s.name, n-1, false)
		return event.Ignored()
	}
	events.Command.Goto(s.name, n-1, true)
	events.UI.Focus(s.name, n-1)
	return event.Handled()
}

// itemLink is the external URL of item, or its discussion page for text posts.
func itemLink(item hn.Item) string {
	if item.URL != "" {
		return item.URL
	}
	return fmt.Sprintf("%s%d", itemLinkBase, item.ID)
}

// view renders the stories that fit in height rows, keeping focus visible.
func (s *listState) view(height int) string {
	if s.list.Len() == 0 {
		return styles.Info.Render("(no stories)")
	}
	s.rows = height / linesPerItem
	if s.rows < 1 {
		s.rows = 1
	}
	s.list.EnsureFocusVisible(s.rows)
	now := s.now()
	focus := s.list.FocusIndex()
	lines := make([]string, 0, height)
	for i := s.list.Offset(); i < s.list.Len() && i < s.list.Offset()+s.rows; i++ {
		item, _ := s.list.Item(i)
		indicator := styles.ItemIndicator.Render(itemIndicator)
		block := summary.Numbered(i, item, now).Render(styles, nil)
		if i == focus {
			indicator = styles.SelectedIndicator.Render(itemIndicator)
			block = summary.Numbered(i, item, now).Render(styles, styles.SelectedItem)
		}
		for _, line := range strings.Split(block, "\n") {
			lines = append(lines, indicator+" "+line)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
