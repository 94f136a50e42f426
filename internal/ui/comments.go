package ui

import (
	"strings"
	"time"

	"github.com/atomicstack/hn-tui/internal/hn"
	"github.com/atomicstack/hn-tui/internal/summary"
	"github.com/atomicstack/hn-tui/internal/ui/event"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const (
	commentIndent    = 2
	maxCommentIndent = 24
)

var commentKeys = struct {
	Open key.Binding
	Copy key.Binding
	Back key.Binding
}{
	Open: key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "open link")),
	Copy: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
	Back: key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back to stories")),
}

func commentChain() event.Chain[*commentLayer] {
	return event.New[*commentLayer]().
		Pre(commentKeys.Open, func(l *commentLayer, _ tea.KeyMsg) event.Result {
			if l.detail.Item.URL == "" {
				return event.Handled()
			}
			return event.HandledWith(openLinkMsg{url: l.detail.Item.URL})
		}).
		Pre(commentKeys.Copy, func(l *commentLayer, _ tea.KeyMsg) event.Result {
			return event.HandledWith(copyLinkMsg{url: itemLink(l.detail.Item)})
		}).
		Pre(commentKeys.Back, func(*commentLayer, tea.KeyMsg) event.Result {
			return event.HandledWith(backMsg{})
		})
}

// commentLayer shows a story with its flattened comment tree in a scrollable
// viewport.
type commentLayer struct {
	detail   hn.Detail
	now      func() time.Time
	chain    event.Chain[*commentLayer]
	viewport viewport.Model
	// wrapped is the width the content was last wrapped for.
	wrapped int
}

func newCommentLayer(detail hn.Detail, now func() time.Time) *commentLayer {
	return &commentLayer{
		detail:   detail,
		now:      now,
		chain:    commentChain(),
		viewport: viewport.New(0, 0),
		wrapped:  -1,
	}
}

func (l *commentLayer) Title() string { return l.detail.Item.Title }

func (l *commentLayer) HandleKey(msg tea.KeyMsg) event.Result {
	return l.chain.Dispatch(l, msg, l.scroll)
}

func (l *commentLayer) scroll(msg tea.KeyMsg) event.Result {
	km := l.viewport.KeyMap
	if !key.Matches(msg, km.Up, km.Down, km.PageUp, km.PageDown, km.HalfPageUp, km.HalfPageDown) {
		return event.Ignored()
	}
	l.viewport, _ = l.viewport.Update(msg)
	return event.Handled()
}

func (l *commentLayer) Update(tea.Msg) tea.Cmd { return nil }

func (l *commentLayer) View(width, height int) string {
	if width != l.wrapped {
		l.wrapped = width
		l.viewport.SetContent(l.content(width))
	}
	l.viewport.Width = width
	l.viewport.Height = height
	return l.viewport.View()
}

func (l *commentLayer) ShortHelp() []key.Binding {
	km := l.viewport.KeyMap
	return []key.Binding{km.Down, km.PageDown, commentKeys.Open, commentKeys.Back}
}

func (l *commentLayer) content(width int) string {
	now := l.now()
	var b strings.Builder
	b.WriteString(summary.Of(l.detail.Item, now).Render(styles, nil))
	if text := strings.TrimSpace(l.detail.Text); text != "" {
		b.WriteString("\n\n")
		b.WriteString(styleEach(styles.CommentText, wrap(text, width)))
	}
	b.WriteString("\n\n")
	if len(l.detail.Comments) == 0 {
		b.WriteString(styles.Info.Render("(no comments)"))
		return b.String()
	}
	for i, c := range l.detail.Comments {
		if i > 0 {
			b.WriteString("\n\n")
		}
		pad := c.Depth * commentIndent
		if pad > maxCommentIndent {
			pad = maxCommentIndent
		}
		if width > 0 && pad > width/2 {
			pad = width / 2
		}
		author := c.Author
		if author == "" {
			author = "[unknown]"
		}
		header := styles.CommentAuthor.Render(author) +
			styles.Description.Render(" | "+summary.Elapsed(c.CreatedAt, now)+" ago")
		body := styleEach(styles.CommentText, wrap(c.Text, width-pad))
		b.WriteString(indent.String(header+"\n"+body, uint(pad)))
	}
	return b.String()
}

func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
