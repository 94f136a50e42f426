package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/hn-tui/internal/hn"
	"github.com/atomicstack/hn-tui/internal/ui/event"
	uistate "github.com/atomicstack/hn-tui/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var searchKeys = struct {
	Submit key.Binding
	Toggle key.Binding
	Back   key.Binding
}{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search HN")),
	Toggle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "query/results")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear/back")),
}

// searchLayer filters cached stories as the query is typed and runs a remote
// search on enter. With the results focused it behaves like a story list.
type searchLayer struct {
	input        textinput.Model
	results      *listState
	chain        event.Chain[*listState]
	candidates   []hn.Item
	now          func() time.Time
	focusResults bool
	inFlight     string
	status       string
	failed       bool
}

func newSearchLayer(candidates []hn.Item, now func() time.Time) *searchLayer {
	in := textinput.New()
	in.Prompt = "Search: "
	in.PromptStyle = *styles.SearchPrompt
	in.Placeholder = "type to filter, enter to search"
	in.Cursor.SetMode(cursor.CursorStatic)
	in.Focus()
	l := &searchLayer{
		input:      in,
		candidates: candidates,
		now:        now,
	}
	l.results = newListState("search", uistate.FilterItems(candidates, ""), 0, now)
	l.chain = listChain().Pre(searchKeys.Toggle, func(*listState, tea.KeyMsg) event.Result {
		l.focusQuery()
		return event.Handled()
	})
	return l
}

func (l *searchLayer) Title() string { return "Search" }

func (l *searchLayer) HandleKey(msg tea.KeyMsg) event.Result {
	if l.focusResults {
		if key.Matches(msg, searchKeys.Back) {
			l.focusQuery()
			return event.Handled()
		}
		return l.results.handleKey(l.chain, msg)
	}
	switch {
	case key.Matches(msg, searchKeys.Submit):
		query := strings.TrimSpace(l.input.Value())
		if query == "" {
			return event.Handled()
		}
		l.inFlight = query
		l.status = ""
		l.failed = false
		return event.HandledWith(searchRequestMsg{query: query})
	case key.Matches(msg, searchKeys.Toggle):
		if l.results.list.Len() > 0 {
			l.focusList()
		}
		return event.Handled()
	case key.Matches(msg, searchKeys.Back):
		if l.input.Value() == "" {
			return event.HandledWith(backMsg{})
		}
		l.input.SetValue("")
		l.refilter()
		return event.Handled()
	}
	if msg.Alt {
		return event.Ignored()
	}
	before := l.input.Value()
	l.input, _ = l.input.Update(msg)
	if l.input.Value() != before {
		l.refilter()
	}
	return event.Handled()
}

func (l *searchLayer) Update(tea.Msg) tea.Cmd { return nil }

func (l *searchLayer) focusQuery() {
	l.focusResults = false
	l.input.Focus()
}

func (l *searchLayer) focusList() {
	l.focusResults = true
	l.input.Blur()
}

func (l *searchLayer) refilter() {
	l.results = newListState("search", uistate.FilterItems(l.candidates, l.input.Value()), 0, l.now)
}

// setResults replaces the list with the remote results for query. Results
// for anything other than the query in flight are dropped.
func (l *searchLayer) setResults(query string, items []hn.Item, err error) bool {
	if query != l.inFlight {
		return false
	}
	l.inFlight = ""
	if err != nil {
		l.status = "search failed: " + err.Error()
		l.failed = true
		return true
	}
	l.results = newListState("search", items, 0, l.now)
	l.status = fmt.Sprintf("%d results for %q", len(items), query)
	l.failed = false
	return true
}

func (l *searchLayer) pending() string {
	if !l.focusResults {
		return ""
	}
	return l.results.pending()
}

func (l *searchLayer) clearPending() {
	l.results.clearPending()
}

func (l *searchLayer) View(width, height int) string {
	lines := []string{l.input.View()}
	switch {
	case l.inFlight != "":
		lines = append(lines, styles.Loading.Render(fmt.Sprintf("searching for %q…", l.inFlight)))
	case l.failed:
		lines = append(lines, styles.Error.Render(l.status))
	default:
		lines = append(lines, styles.Info.Render(l.status))
	}
	lines = append(lines, "")
	rows := height - len(lines)
	if rows < 1 {
		rows = 1
	}
	lines = append(lines, l.results.view(rows))
	return strings.Join(lines, "\n")
}

func (l *searchLayer) ShortHelp() []key.Binding {
	if l.focusResults {
		return []key.Binding{listKeys.Enter, listKeys.Open, searchKeys.Toggle}
	}
	return []key.Binding{searchKeys.Submit, searchKeys.Toggle, searchKeys.Back}
}
