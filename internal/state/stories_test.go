package state

import (
	"testing"

	"github.com/atomicstack/hn-tui/internal/hn"
)

func TestStoryStoreRoundTripsPerCategory(t *testing.T) {
	s := NewStoryStore()
	s.SetEntries("front_page", []hn.Item{{ID: 1}, {ID: 2}})
	s.SetEntries("new", []hn.Item{{ID: 2}, {ID: 3}})
	s.SetFocus("front_page", 1)

	if got := s.Entries("front_page"); len(got) != 2 || got[1].ID != 2 {
		t.Fatalf("unexpected entries %#v", got)
	}
	if s.Focus("front_page") != 1 {
		t.Fatalf("expected stored focus 1, got %d", s.Focus("front_page"))
	}
	all := s.All()
	if len(all) != 3 || all[0].ID != 1 || all[2].ID != 3 {
		t.Fatalf("expected deduplicated stories in insertion order, got %#v", all)
	}
}

func TestStoryStoreResetsFocusWhenListShrinks(t *testing.T) {
	s := NewStoryStore()
	s.SetEntries("front_page", []hn.Item{{ID: 1}, {ID: 2}, {ID: 3}})
	s.SetFocus("front_page", 2)
	s.SetEntries("front_page", []hn.Item{{ID: 9}})
	if s.Focus("front_page") != 0 {
		t.Fatalf("expected focus reset, got %d", s.Focus("front_page"))
	}
	s.SetFocus("front_page", -4)
	if s.Focus("front_page") != 0 {
		t.Fatalf("expected negative focus clamped, got %d", s.Focus("front_page"))
	}
}

func TestStoryStoreReturnsCopies(t *testing.T) {
	s := NewStoryStore()
	items := []hn.Item{{ID: 1, Title: "a"}}
	s.SetEntries("front_page", items)
	items[0].Title = "mutated"
	got := s.Entries("front_page")
	got[0].Title = "also mutated"
	if s.Entries("front_page")[0].Title != "a" {
		t.Fatalf("expected store to keep its own copy")
	}
}
