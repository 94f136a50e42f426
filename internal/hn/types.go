package hn

import "time"

// Item is a story summary as shown in list views. It carries no nested data,
// so copying it is cheap.
type Item struct {
	ID         int
	Title      string
	URL        string
	Author     string
	CreatedAt  time.Time
	Points     int
	ChildCount int
}

// Comment is one entry of a flattened comment tree. Depth 0 is a direct reply
// to the story.
type Comment struct {
	ID        int
	Author    string
	Text      string
	CreatedAt time.Time
	Depth     int
}

// Detail is the drill-down payload for a single item.
type Detail struct {
	Item     Item
	Text     string
	Comments []Comment
}

// apiItem models a response from the HN item endpoint.
type apiItem struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	By          string `json:"by"`
	Time        int64  `json:"time"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Text        string `json:"text"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Kids        []int  `json:"kids"`
	Deleted     bool   `json:"deleted"`
	Dead        bool   `json:"dead"`
}

func (a apiItem) item() Item {
	return Item{
		ID:         a.ID,
		Title:      a.Title,
		URL:        a.URL,
		Author:     a.By,
		CreatedAt:  time.Unix(a.Time, 0),
		Points:     a.Score,
		ChildCount: a.Descendants,
	}
}

// searchResponse models the subset of the Algolia HN search response we use.
type searchResponse struct {
	Hits []searchHit `json:"hits"`
}

type searchHit struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	Points      int    `json:"points"`
	NumComments int    `json:"num_comments"`
	CreatedAtI  int64  `json:"created_at_i"`
}
