package ui

import (
	"context"
	"strconv"

	"github.com/atomicstack/hn-tui/internal/hn"
	"github.com/atomicstack/hn-tui/internal/logging/events"
	"github.com/atomicstack/hn-tui/internal/ui/command"
	"github.com/atomicstack/hn-tui/internal/ui/layer"
	tea "github.com/charmbracelet/bubbletea"
)

// fetchList loads a category feed for the placeholder identified by id.
func (m *Model) fetchList(id layer.ID, category hn.Category) tea.Cmd {
	events.Fetch.Start("list", int(id), category.ID)
	source := m.source
	return m.bus.Execute(command.Request{
		Label: "list " + category.ID,
		Run: func(ctx context.Context) tea.Msg {
			items, err := source.FetchList(ctx, category)
			return storiesLoadedMsg{layer: id, category: category, items: items, err: err}
		},
	})
}

// fetchDetail loads the comment thread of item for the placeholder id.
func (m *Model) fetchDetail(id layer.ID, item hn.Item) tea.Cmd {
	events.Fetch.Start("detail", int(id), strconv.Itoa(item.ID))
	source := m.source
	return m.bus.Execute(command.Request{
		Label: "detail " + strconv.Itoa(item.ID),
		Run: func(ctx context.Context) tea.Msg {
			detail, err := source.FetchDetail(ctx, item.ID)
			return detailLoadedMsg{layer: id, item: item, detail: detail, err: err}
		},
	})
}

// runSearch queries the remote index on behalf of the search layer id.
func (m *Model) runSearch(id layer.ID, query string) tea.Cmd {
	events.Fetch.Start("search", int(id), query)
	source := m.source
	return m.bus.Execute(command.Request{
		Label: "search " + query,
		Run: func(ctx context.Context) tea.Msg {
			items, err := source.Search(ctx, query)
			return searchResultsMsg{layer: id, query: query, items: items, err: err}
		},
	})
}

func openLinkCmd(open Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: open(url)}
	}
}

func copyLinkCmd(write Clipboard, url string) tea.Cmd {
	return func() tea.Msg {
		return linkCopiedMsg{url: url, err: write(url)}
	}
}
