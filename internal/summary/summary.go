// Package summary turns a story into the three-part text block shown in
// story lists: title, optional link line, and a metadata line.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/hn-tui/internal/hn"
	"github.com/atomicstack/hn-tui/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Role tells the renderer how a segment is styled.
type Role int

const (
	RoleTitle Role = iota
	RoleLink
	RoleMeta
)

// Segment is one logical line of a summary block.
type Segment struct {
	Role Role
	Text string
}

// Block is a rendered-agnostic story summary. Prefix is plain text placed in
// front of the title, used for list numbering.
type Block struct {
	Prefix   string
	Segments []Segment
}

// Of builds the summary for item relative to now. The link segment is
// omitted when the item has no URL.
func Of(item hn.Item, now time.Time) Block {
	segments := make([]Segment, 0, 3)
	segments = append(segments, Segment{Role: RoleTitle, Text: item.Title})
	if item.URL != "" {
		segments = append(segments, Segment{Role: RoleLink, Text: fmt.Sprintf("(%s)", item.URL)})
	}
	segments = append(segments, Segment{
		Role: RoleMeta,
		Text: fmt.Sprintf("%d points | by %s | %s ago | %d comments",
			item.Points, item.Author, Elapsed(item.CreatedAt, now), item.ChildCount),
	})
	return Block{Segments: segments}
}

// Numbered builds the summary with a 1-based "N. " prefix for the item at
// the 0-based index.
func Numbered(index int, item hn.Item, now time.Time) Block {
	b := Of(item, now)
	b.Prefix = fmt.Sprintf("%d. ", index+1)
	return b
}

// Lines returns the unstyled lines of the block.
func (b Block) Lines() []string {
	lines := make([]string, len(b.Segments))
	for i, seg := range b.Segments {
		lines[i] = seg.Text
		if i == 0 {
			lines[i] = b.Prefix + seg.Text
		}
	}
	return lines
}

// Plain returns the block without styling.
func (b Block) Plain() string {
	return strings.Join(b.Lines(), "\n")
}

// Render styles every line separately so multi-line blocks are never padded
// to a common width. A non-nil title style overrides the theme's, which list
// views use to highlight the focused entry.
func (b Block) Render(styles *theme.Styles, title *lipgloss.Style) string {
	out := make([]string, len(b.Segments))
	for i, seg := range b.Segments {
		text := seg.Text
		var style *lipgloss.Style
		switch seg.Role {
		case RoleTitle:
			style = styles.Title
			if title != nil {
				style = title
			}
		case RoleLink:
			style = styles.Link
		case RoleMeta:
			style = styles.Description
		}
		if i == 0 {
			text = b.Prefix + text
		}
		if style != nil {
			text = style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// Elapsed formats the time since created using the largest whole unit.
func Elapsed(created, now time.Time) string {
	d := now.Sub(created)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%d seconds", int(d/time.Second))
	case d < time.Hour:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours", int(d/time.Hour))
	default:
		return fmt.Sprintf("%d days", int(d/(24*time.Hour)))
	}
}
