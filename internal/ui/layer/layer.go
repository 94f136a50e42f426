// Package layer holds the navigation stack of full-screen and overlay views.
package layer

import (
	"github.com/atomicstack/hn-tui/internal/ui/event"
	tea "github.com/charmbracelet/bubbletea"
)

// ID identifies one pushed layer. IDs are never reused within a Stack, so an
// async completion can tell whether the layer it was issued for still exists.
type ID int

// Layer is a view that can sit on the stack.
type Layer interface {
	Title() string
	HandleKey(msg tea.KeyMsg) event.Result
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// Entry is a stacked layer with its identity and compositing mode. A
// transparent entry is drawn over whatever lies beneath it; only the top entry
// receives input.
type Entry struct {
	ID          ID
	Layer       Layer
	Transparent bool
}

// Stack is an ordered set of layers, top = last. Once constructed it always
// holds at least the root layer.
type Stack struct {
	entries []Entry
	next    ID
}

// NewStack creates a stack holding root.
func NewStack(root Layer) *Stack {
	s := &Stack{}
	s.Push(root, false)
	return s
}

// Push adds l on top and returns its identity.
func (s *Stack) Push(l Layer, transparent bool) ID {
	s.next++
	s.entries = append(s.entries, Entry{ID: s.next, Layer: l, Transparent: transparent})
	return s.next
}

// Pop removes the top layer. The root layer is never removed.
func (s *Stack) Pop() (Entry, bool) {
	if len(s.entries) <= 1 {
		return Entry{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// ReplaceTop swaps the top layer for l in one step and returns the previous
// top together with the new identity. It works on a root-only stack too.
func (s *Stack) ReplaceTop(l Layer, transparent bool) (Entry, ID) {
	prev := s.entries[len(s.entries)-1]
	s.next++
	s.entries[len(s.entries)-1] = Entry{ID: s.next, Layer: l, Transparent: transparent}
	return prev, s.next
}

// Replace swaps the layer identified by id, wherever it sits, keeping its
// position. It returns false when that layer is no longer on the stack.
func (s *Stack) Replace(id ID, l Layer, transparent bool) (ID, bool) {
	idx := s.index(id)
	if idx < 0 {
		return 0, false
	}
	s.next++
	s.entries[idx] = Entry{ID: s.next, Layer: l, Transparent: transparent}
	return s.next, true
}

// Top returns the entry receiving input.
func (s *Stack) Top() Entry {
	return s.entries[len(s.entries)-1]
}

// Find returns the entry with the given identity.
func (s *Stack) Find(id ID) (Entry, bool) {
	idx := s.index(id)
	if idx < 0 {
		return Entry{}, false
	}
	return s.entries[idx], true
}

// Len returns the number of stacked layers.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the stack, bottom first.
func (s *Stack) Entries() []Entry {
	dup := make([]Entry, len(s.entries))
	copy(dup, s.entries)
	return dup
}

// Visible returns the entries that contribute to the screen: the topmost
// opaque layer and every transparent layer above it, bottom first.
func (s *Stack) Visible() []Entry {
	start := 0
	for i := len(s.entries) - 1; i >= 0; i-- {
		if !s.entries[i].Transparent {
			start = i
			break
		}
	}
	dup := make([]Entry, len(s.entries)-start)
	copy(dup, s.entries[start:])
	return dup
}

func (s *Stack) index(id ID) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}
