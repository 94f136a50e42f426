package ui

import (
	"strings"

	"github.com/atomicstack/hn-tui/internal/format/table"
	"github.com/atomicstack/hn-tui/internal/ui/event"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const helpColumnGap = "    "

var helpKeys = struct {
	Close key.Binding
}{
	Close: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close help")),
}

type helpSection struct {
	title string
	keys  []key.Binding
}

// helpSections are laid out in two columns, the first half on the left.
func helpSections() []helpSection {
	vp := viewport.DefaultKeyMap()
	return []helpSection{
		{title: "Global", keys: globalChain().Keys()},
		{title: "Comments", keys: []key.Binding{vp.Down, vp.Up, vp.PageDown, vp.PageUp,
			commentKeys.Open, commentKeys.Copy, commentKeys.Back}},
		{title: "Stories", keys: append(listChain().Keys(),
			listKeys.Up, listKeys.Down, listKeys.PageUp, listKeys.PageDown, listKeys.Home, listKeys.End)},
		{title: "Search", keys: []key.Binding{searchKeys.Submit, searchKeys.Toggle, searchKeys.Back}},
	}
}

// helpLayer is a modal key reference pushed as a transparent entry, so the
// layer beneath keeps its identity and keeps receiving async results.
type helpLayer struct {
	body string
}

func newHelpLayer() *helpLayer {
	sections := helpSections()
	half := (len(sections) + 1) / 2
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderHelp(sections[:half]), helpColumnGap, renderHelp(sections[half:]))
	return &helpLayer{body: body}
}

func renderHelp(sections []helpSection) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(styles.Title.Render(section.title))
		rows := make([][]string, 0, len(section.keys))
		for _, k := range section.keys {
			h := k.Help()
			rows = append(rows, []string{styles.HelpKey.Render(h.Key), h.Desc})
		}
		for _, line := range table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft}) {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	return b.String()
}

func (l *helpLayer) Title() string { return "Help" }

func (l *helpLayer) HandleKey(msg tea.KeyMsg) event.Result {
	if key.Matches(msg, helpKeys.Close) {
		return event.HandledWith(closeHelpMsg{})
	}
	return event.Handled()
}

func (l *helpLayer) Update(tea.Msg) tea.Cmd { return nil }

func (l *helpLayer) View(int, int) string {
	return styles.Overlay.Render(l.body)
}

func (l *helpLayer) ShortHelp() []key.Binding {
	return []key.Binding{helpKeys.Close}
}

// overlay draws over on top of base with its top-left corner at column x,
// row y. Cells of base outside the covered area are kept.
func overlay(base, over string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(over, "\n") {
		row := y + i
		for row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		under := baseLines[row]
		left := ansi.Truncate(under, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(under, x+ansi.StringWidth(line), "")
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}
