package hn

import (
	"fmt"
	"strings"
)

// Category identifies a story feed.
type Category struct {
	ID       string
	Title    string
	Endpoint string
}

var categories = []Category{
	{ID: "front_page", Title: "Top Stories", Endpoint: "topstories"},
	{ID: "new", Title: "New Stories", Endpoint: "newstories"},
	{ID: "best", Title: "Best Stories", Endpoint: "beststories"},
	{ID: "ask", Title: "Ask HN", Endpoint: "askstories"},
	{ID: "show", Title: "Show HN", Endpoint: "showstories"},
	{ID: "jobs", Title: "Jobs", Endpoint: "jobstories"},
}

// DefaultCategory is the feed shown at startup when none is configured.
var DefaultCategory = categories[0]

// Categories lists the supported feeds in display order.
func Categories() []Category {
	dup := make([]Category, len(categories))
	copy(dup, categories)
	return dup
}

// LookupCategory resolves a category by ID, accepting '-' in place of '_'.
func LookupCategory(id string) (Category, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(id)), "-", "_")
	for _, c := range categories {
		if c.ID == normalized {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("unknown category %q", id)
}
