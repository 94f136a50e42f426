package ui

import (
	"github.com/atomicstack/hn-tui/internal/logging"
	"github.com/atomicstack/hn-tui/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// handleOpenLink launches the browser off the UI loop.
func (m *Model) handleOpenLink(msg tea.Msg) tea.Cmd {
	open, ok := msg.(openLinkMsg)
	if !ok || open.url == "" {
		return nil
	}
	events.Link.Open(open.url)
	return openLinkCmd(m.opener, open.url)
}

// handleLinkOpened only logs failures; the UI is left as it is.
func (m *Model) handleLinkOpened(msg tea.Msg) tea.Cmd {
	opened, ok := msg.(linkOpenedMsg)
	if !ok || opened.err == nil {
		return nil
	}
	events.Link.OpenError(opened.url, opened.err)
	logging.Warn("failed to open link %s: %v", opened.url, opened.err)
	return nil
}

func (m *Model) handleCopyLink(msg tea.Msg) tea.Cmd {
	cp, ok := msg.(copyLinkMsg)
	if !ok || cp.url == "" {
		return nil
	}
	events.Link.Copy(cp.url)
	return copyLinkCmd(m.clipboard, cp.url)
}

func (m *Model) handleLinkCopied(msg tea.Msg) tea.Cmd {
	copied, ok := msg.(linkCopiedMsg)
	if !ok {
		return nil
	}
	if copied.err != nil {
		logging.Warn("failed to copy link %s: %v", copied.url, copied.err)
		return nil
	}
	m.setInfo("Copied " + copied.url)
	return nil
}
