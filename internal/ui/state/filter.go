package state

import (
	"sort"
	"strings"

	"github.com/atomicstack/hn-tui/internal/hn"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterItems returns the items whose titles fuzzily match query, best
// matches first. A blank query returns every item in its original order.
func FilterItems(items []hn.Item, query string) []hn.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) > 0 {
		sort.Stable(ranks)
		filtered := make([]hn.Item, 0, len(ranks))
		for _, rank := range ranks {
			filtered = append(filtered, items[rank.OriginalIndex])
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]hn.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Author), lower) || strings.Contains(strings.ToLower(item.URL), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
