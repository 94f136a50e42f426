package ui

import (
	"github.com/atomicstack/hn-tui/internal/hn"
	"github.com/atomicstack/hn-tui/internal/logging/events"
	"github.com/atomicstack/hn-tui/internal/ui/event"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var globalKeys = struct {
	Search    key.Binding
	Help      key.Binding
	FrontPage key.Binding
	NextFeed  key.Binding
	PrevFeed  key.Binding
	ForceQuit key.Binding
	Quit      key.Binding
}{
	Search:    key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "search")),
	Help:      key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "help")),
	FrontPage: key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "front page")),
	NextFeed:  key.NewBinding(key.WithKeys("alt+n"), key.WithHelp("alt+n", "next feed")),
	PrevFeed:  key.NewBinding(key.WithKeys("alt+p"), key.WithHelp("alt+p", "previous feed")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// globalChain sits above every layer. Alt bindings and ctrl+c win over the
// layer; q only quits when the layer left it alone.
func globalChain() event.Chain[*Model] {
	return event.New[*Model]().
		Pre(globalKeys.Search, func(*Model, tea.KeyMsg) event.Result {
			return event.HandledWith(showSearchMsg{})
		}).
		Pre(globalKeys.Help, func(*Model, tea.KeyMsg) event.Result {
			return event.HandledWith(showHelpMsg{})
		}).
		Pre(globalKeys.FrontPage, func(m *Model, _ tea.KeyMsg) event.Result {
			return event.HandledWith(showCategoryMsg{category: m.home})
		}).
		Pre(globalKeys.NextFeed, func(m *Model, _ tea.KeyMsg) event.Result {
			return event.HandledWith(showCategoryMsg{category: m.adjacentCategory(1)})
		}).
		Pre(globalKeys.PrevFeed, func(m *Model, _ tea.KeyMsg) event.Result {
			return event.HandledWith(showCategoryMsg{category: m.adjacentCategory(-1)})
		}).
		Pre(globalKeys.ForceQuit, func(*Model, tea.KeyMsg) event.Result {
			return event.HandledWith(quitMsg{reason: "ctrl+c"})
		}).
		Post(globalKeys.Quit, func(*Model, tea.KeyMsg) event.Result {
			return event.HandledWith(quitMsg{reason: "q"})
		})
}

// adjacentCategory steps through the feeds in display order, wrapping at
// either end.
func (m *Model) adjacentCategory(step int) hn.Category {
	all := hn.Categories()
	current := 0
	for i, c := range all {
		if c.ID == m.category.ID {
			current = i
			break
		}
	}
	n := len(all)
	return all[((current+step)%n+n)%n]
}

// clearPending drops typed goto digits on every layer. A key taken by the
// global chain never reaches the list, so it cannot clear them itself.
func (m *Model) clearPending() {
	for _, entry := range m.stack.Entries() {
		if pc, ok := entry.Layer.(pendingCommander); ok {
			pc.clearPending()
		}
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	top := m.stack.Top()
	reached := false
	res := m.global.Dispatch(m, keyMsg, func(k tea.KeyMsg) event.Result {
		reached = true
		return top.Layer.HandleKey(k)
	})
	events.UI.Key(top.Layer.Title(), keyMsg.String(), res.IsConsumed())
	if !reached {
		m.clearPending()
	}
	if res.Effect == nil {
		return nil
	}
	return m.applyEffect(res.Effect)
}
