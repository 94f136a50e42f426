package ui

import (
	"github.com/atomicstack/hn-tui/internal/hn"
	"github.com/atomicstack/hn-tui/internal/ui/layer"
)

// Effects returned by key handlers. The model applies them once dispatch has
// returned.

type drillDownMsg struct {
	item hn.Item
}

type openLinkMsg struct {
	url string
}

type copyLinkMsg struct {
	url string
}

type showCategoryMsg struct {
	category hn.Category
}

type showSearchMsg struct{}

type showHelpMsg struct{}

// closeHelpMsg pops the help overlay off the stack.
type closeHelpMsg struct{}

// backMsg returns to the cached list of the current category.
type backMsg struct{}

type searchRequestMsg struct {
	query string
}

type quitMsg struct {
	reason string
}

// Completions of work started off the UI loop. layer is the identity of the
// placeholder the result was issued for.

type storiesLoadedMsg struct {
	layer    layer.ID
	category hn.Category
	items    []hn.Item
	err      error
}

type detailLoadedMsg struct {
	layer  layer.ID
	item   hn.Item
	detail hn.Detail
	err    error
}

type searchResultsMsg struct {
	layer layer.ID
	query string
	items []hn.Item
	err   error
}

type linkOpenedMsg struct {
	url string
	err error
}

type linkCopiedMsg struct {
	url string
	err error
}
