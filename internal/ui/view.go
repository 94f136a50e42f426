package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	appTitle        = "Hacker News"
	headerSeparator = " › "
	infoLifetime    = 5 * time.Second
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model. The screen is a header, the visible layers
// composed bottom first, a status line and the optional footer.
func (m *Model) View() string {
	width, height := m.size()
	bottom := []styledLine{m.statusLine()}
	if m.showFooter {
		bottom = append(bottom, styledLine{text: m.footer(width), raw: true})
	}
	bodyHeight := height - 1 - len(bottom)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	lines := make([]styledLine, 0, height)
	lines = append(lines, styledLine{text: m.header(width), style: styles.Header})
	body := make([]styledLine, 0, bodyHeight)
	for _, line := range strings.Split(m.renderLayers(width, bodyHeight), "\n") {
		body = append(body, styledLine{text: line, raw: true})
	}
	body = limitHeight(body, bodyHeight, width)
	for len(body) < bodyHeight {
		body = append(body, styledLine{})
	}
	lines = append(lines, body...)
	lines = append(lines, bottom...)
	return renderLines(applyWidth(lines, width))
}

// renderLayers draws the topmost opaque layer, then centres every
// transparent layer above it over what is already drawn.
func (m *Model) renderLayers(width, height int) string {
	out := ""
	for i, entry := range m.stack.Visible() {
		view := entry.Layer.View(width, height)
		if i == 0 {
			out = view
			continue
		}
		x := (width - lipgloss.Width(view)) / 2
		y := (height - lipgloss.Height(view)) / 2
		out = overlay(out, view, max(x, 0), max(y, 0))
	}
	return out
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) header(width int) string {
	text := " " + appTitle
	if title := m.stack.Top().Layer.Title(); title != "" {
		text += headerSeparator + title
	}
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

func (m *Model) statusLine() styledLine {
	if pc, ok := m.stack.Top().Layer.(pendingCommander); ok {
		if digits := pc.pending(); digits != "" {
			return styledLine{text: ":" + digits, style: styles.RawCommand}
		}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	return styledLine{}
}

func (m *Model) footer(width int) string {
	var bindings []key.Binding
	if kh, ok := m.stack.Top().Layer.(keyHelper); ok {
		bindings = append(bindings, kh.ShortHelp()...)
	}
	bindings = append(bindings, globalKeys.Help, globalKeys.Quit)
	m.help.Width = width
	return m.help.ShortHelpView(bindings)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = m.now().Add(infoLifetime)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && m.now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
