package ui

import (
	"github.com/atomicstack/hn-tui/internal/logging"
	"github.com/atomicstack/hn-tui/internal/logging/events"
	"github.com/atomicstack/hn-tui/internal/ui/layer"
	tea "github.com/charmbracelet/bubbletea"
)

// replaceTop closes any overlay and swaps the full-screen layer for l. The
// old layer is gone before the new one is visible; the stack never holds both.
func (m *Model) replaceTop(l layer.Layer) layer.ID {
	m.closeOverlays()
	prev, id := m.stack.ReplaceTop(l, false)
	events.Nav.ReplaceTop(int(prev.ID), int(id), l.Title())
	return id
}

// base returns the topmost opaque entry, the screen under any overlay.
func (m *Model) base() layer.Entry {
	entries := m.stack.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if !entries[i].Transparent {
			return entries[i]
		}
	}
	return entries[0]
}

// closeOverlays pops every transparent layer above the base.
func (m *Model) closeOverlays() {
	for m.stack.Top().Transparent {
		entry, ok := m.stack.Pop()
		if !ok {
			return
		}
		events.Nav.Pop(int(entry.ID), entry.Layer.Title())
	}
}

// rememberFocus stores the focus of the story list being left so that back
// navigation can restore it.
func (m *Model) rememberFocus() {
	if sl, ok := m.base().Layer.(*storyLayer); ok {
		m.stories.SetFocus(sl.category.ID, sl.list.FocusIndex())
	}
}

func (m *Model) handleDrillDown(msg tea.Msg) tea.Cmd {
	drill, ok := msg.(drillDownMsg)
	if !ok {
		return nil
	}
	m.rememberFocus()
	loading := newLoadingLayer(drill.item.Title)
	id := m.replaceTop(loading)
	return tea.Batch(loading.Init(), m.fetchDetail(id, drill.item))
}

func (m *Model) handleShowCategory(msg tea.Msg) tea.Cmd {
	show, ok := msg.(showCategoryMsg)
	if !ok {
		return nil
	}
	m.rememberFocus()
	m.category = show.category
	loading := newLoadingLayer(show.category.Title)
	id := m.replaceTop(loading)
	return tea.Batch(loading.Init(), m.fetchList(id, show.category))
}

// handleBack returns to the current category, from cache when possible.
func (m *Model) handleBack(tea.Msg) tea.Cmd {
	items := m.stories.Entries(m.category.ID)
	if len(items) == 0 {
		return m.handleShowCategory(showCategoryMsg{category: m.category})
	}
	m.replaceTop(newStoryLayer(m.category, items, m.stories.Focus(m.category.ID), m.now))
	return nil
}

func (m *Model) handleShowSearch(tea.Msg) tea.Cmd {
	if _, ok := m.base().Layer.(*searchLayer); ok {
		m.closeOverlays()
		return nil
	}
	m.rememberFocus()
	m.replaceTop(newSearchLayer(m.stories.All(), m.now))
	return nil
}

// handleShowHelp pushes the help overlay, or closes it when already open.
func (m *Model) handleShowHelp(tea.Msg) tea.Cmd {
	if _, ok := m.stack.Top().Layer.(*helpLayer); ok {
		return m.handleCloseHelp(closeHelpMsg{})
	}
	help := newHelpLayer()
	id := m.stack.Push(help, true)
	events.Nav.Push(int(id), help.Title(), true)
	return nil
}

// handleCloseHelp pops the overlay. The layer beneath was never touched, so
// it comes back with its identity and any result that landed meanwhile.
func (m *Model) handleCloseHelp(tea.Msg) tea.Cmd {
	if _, ok := m.stack.Top().Layer.(*helpLayer); !ok {
		return nil
	}
	m.closeOverlays()
	return nil
}

func (m *Model) handleQuit(msg tea.Msg) tea.Cmd {
	quit, _ := msg.(quitMsg)
	events.App.Quit(quit.reason)
	return tea.Quit
}

func (m *Model) handleStoriesLoaded(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(storiesLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.err != nil {
		logging.Error(loaded.err)
		events.Fetch.Error("list", int(loaded.layer), loaded.err)
		m.replaceLayer(loaded.layer, "list", &errorLayer{
			title: loaded.category.Title,
			err:   loaded.err,
			retry: showCategoryMsg{category: loaded.category},
		})
		return nil
	}
	if !m.replaceLayer(loaded.layer, "list", newStoryLayer(loaded.category, loaded.items, 0, m.now)) {
		return nil
	}
	events.Fetch.Done("list", int(loaded.layer), len(loaded.items))
	m.stories.SetEntries(loaded.category.ID, loaded.items)
	m.stories.SetFocus(loaded.category.ID, 0)
	return nil
}

func (m *Model) handleDetailLoaded(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(detailLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.err != nil {
		logging.Error(loaded.err)
		events.Fetch.Error("detail", int(loaded.layer), loaded.err)
		m.replaceLayer(loaded.layer, "detail", &errorLayer{
			title: loaded.item.Title,
			err:   loaded.err,
			retry: drillDownMsg{item: loaded.item},
		})
		return nil
	}
	if m.replaceLayer(loaded.layer, "detail", newCommentLayer(loaded.detail, m.now)) {
		events.Fetch.Done("detail", int(loaded.layer), len(loaded.detail.Comments))
	}
	return nil
}

// replaceLayer swaps the placeholder id for l. It reports false, and drops
// l, when the placeholder has already been replaced or popped.
func (m *Model) replaceLayer(id layer.ID, op string, l layer.Layer) bool {
	newID, ok := m.stack.Replace(id, l, false)
	if !ok {
		events.Fetch.Stale(op, int(id))
		return false
	}
	events.Nav.Replace(int(newID), l.Title())
	return true
}

func (m *Model) handleSearchRequest(msg tea.Msg) tea.Cmd {
	req, ok := msg.(searchRequestMsg)
	if !ok {
		return nil
	}
	base := m.base()
	if _, ok := base.Layer.(*searchLayer); !ok {
		return nil
	}
	return m.runSearch(base.ID, req.query)
}

func (m *Model) handleSearchResults(msg tea.Msg) tea.Cmd {
	results, ok := msg.(searchResultsMsg)
	if !ok {
		return nil
	}
	entry, found := m.stack.Find(results.layer)
	sl, isSearch := entry.Layer.(*searchLayer)
	if !found || !isSearch || !sl.setResults(results.query, results.items, results.err) {
		events.Fetch.Stale("search", int(results.layer))
		return nil
	}
	if results.err != nil {
		logging.Error(results.err)
		events.Fetch.Error("search", int(results.layer), results.err)
		return nil
	}
	events.Fetch.Done("search", int(results.layer), len(results.items))
	return nil
}
