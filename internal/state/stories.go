package state

import "github.com/atomicstack/hn-tui/internal/hn"

// StoryStore remembers the last list fetched per category together with the
// focus the user left it at, so back navigation and search can reuse it.
type StoryStore interface {
	Entries(category string) []hn.Item
	SetEntries(category string, items []hn.Item)
	Focus(category string) int
	SetFocus(category string, focus int)
	All() []hn.Item
}

type storyStore struct {
	entries map[string][]hn.Item
	focus   map[string]int
	order   []string
}

func NewStoryStore() StoryStore {
	return &storyStore{
		entries: make(map[string][]hn.Item),
		focus:   make(map[string]int),
	}
}

func (s *storyStore) Entries(category string) []hn.Item {
	return cloneStories(s.entries[category])
}

func (s *storyStore) SetEntries(category string, items []hn.Item) {
	if _, ok := s.entries[category]; !ok {
		s.order = append(s.order, category)
	}
	s.entries[category] = cloneStories(items)
	if f, ok := s.focus[category]; !ok || f >= len(items) {
		s.focus[category] = 0
	}
}

func (s *storyStore) Focus(category string) int {
	return s.focus[category]
}

func (s *storyStore) SetFocus(category string, focus int) {
	if focus < 0 {
		focus = 0
	}
	s.focus[category] = focus
}

// All returns every cached story once, in the order categories were first
// stored.
func (s *storyStore) All() []hn.Item {
	seen := make(map[int]struct{})
	var out []hn.Item
	for _, category := range s.order {
		for _, item := range s.entries[category] {
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

func cloneStories(items []hn.Item) []hn.Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]hn.Item, len(items))
	copy(dup, items)
	return dup
}
