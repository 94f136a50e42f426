package hn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestServer serves a tiny HN API: ids for topstories and an item map.
func newTestServer(t *testing.T, top []int, items map[int]apiItem) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/topstories.json", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(top)
	})
	mux.HandleFunc("/item/", func(w http.ResponseWriter, r *http.Request) {
		var id int
		if _, err := fmt.Sscanf(strings.TrimPrefix(r.URL.Path, "/item/"), "%d.json", &id); err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		item, ok := items[id]
		if !ok {
			_, _ = w.Write([]byte("null"))
			return
		}
		_ = json.NewEncoder(w).Encode(item)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("tags") != "story" {
			http.Error(w, "missing tags", http.StatusBadRequest)
			return
		}
		resp := searchResponse{Hits: []searchHit{
			{ObjectID: "77", Title: r.URL.Query().Get("query"), Author: "pg", Points: 5, NumComments: 2, CreatedAtI: 1700000000},
			{ObjectID: "not-a-number", Title: "skipped"},
		}}
		_ = json.NewEncoder(w).Encode(resp)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchListPreservesOrderAndLimit(t *testing.T) {
	items := map[int]apiItem{
		1: {ID: 1, Title: "one", By: "a", Score: 10, Descendants: 3, Time: 1700000000},
		2: {ID: 2, Title: "two", By: "b", Dead: true},
		3: {ID: 3, Title: "three", By: "c", URL: "https://example.com/3"},
		4: {ID: 4, Title: "four"},
	}
	srv := newTestServer(t, []int{3, 2, 1, 4}, items)
	client := NewClient(Options{BaseURL: srv.URL, Limit: 3, Workers: 2})

	got, err := client.FetchList(context.Background(), DefaultCategory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 live items within limit, got %d: %#v", len(got), got)
	}
	if got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("expected feed order [3 1], got [%d %d]", got[0].ID, got[1].ID)
	}
	if got[1].Points != 10 || got[1].ChildCount != 3 || got[1].Author != "a" {
		t.Fatalf("unexpected mapping for item 1: %#v", got[1])
	}
	if got[1].CreatedAt.Unix() != 1700000000 {
		t.Fatalf("expected created time to be preserved, got %v", got[1].CreatedAt)
	}
}

func TestFetchDetailFlattensCommentTree(t *testing.T) {
	items := map[int]apiItem{
		10: {ID: 10, Title: "story", Text: "hello<p>world", Kids: []int{11, 14}},
		11: {ID: 11, By: "x", Text: "first", Kids: []int{12, 13}},
		12: {ID: 12, By: "y", Text: "nested"},
		13: {ID: 13, Deleted: true},
		14: {ID: 14, By: "z", Text: "second"},
	}
	srv := newTestServer(t, nil, items)
	client := NewClient(Options{BaseURL: srv.URL})

	detail, err := client.FetchDetail(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Item.ID != 10 || detail.Text != "hello\n\nworld" {
		t.Fatalf("unexpected detail header: %#v", detail)
	}
	wantIDs := []int{11, 12, 14}
	wantDepth := []int{0, 1, 0}
	if len(detail.Comments) != len(wantIDs) {
		t.Fatalf("expected %d comments, got %#v", len(wantIDs), detail.Comments)
	}
	for i, c := range detail.Comments {
		if c.ID != wantIDs[i] || c.Depth != wantDepth[i] {
			t.Fatalf("comment %d: expected id %d depth %d, got %d/%d", i, wantIDs[i], wantDepth[i], c.ID, c.Depth)
		}
	}
}

func TestFetchDetailRespectsCommentBudget(t *testing.T) {
	items := map[int]apiItem{
		1: {ID: 1, Kids: []int{2, 3, 4}},
		2: {ID: 2, Text: "a"},
		3: {ID: 3, Text: "b"},
		4: {ID: 4, Text: "c"},
	}
	srv := newTestServer(t, nil, items)
	client := NewClient(Options{BaseURL: srv.URL, MaxComments: 2})
	detail, err := client.FetchDetail(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Comments) != 2 {
		t.Fatalf("expected comment budget of 2, got %d", len(detail.Comments))
	}
}

func TestFetchErrorCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(Options{BaseURL: srv.URL})

	_, err := client.FetchList(context.Background(), DefaultCategory)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T (%v)", err, err)
	}
	if fetchErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", fetchErr.Status)
	}
	if !strings.Contains(err.Error(), "unexpected status code: 503") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestFetchErrorOnMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{"))
	}))
	t.Cleanup(srv.Close)
	client := NewClient(Options{BaseURL: srv.URL})

	_, err := client.FetchDetail(context.Background(), 1)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T (%v)", err, err)
	}
	if fetchErr.Status != 0 {
		t.Fatalf("expected no status on decode failure, got %d", fetchErr.Status)
	}
}

func TestSearchMapsHits(t *testing.T) {
	srv := newTestServer(t, nil, nil)
	client := NewClient(Options{BaseURL: srv.URL, SearchURL: srv.URL + "/search"})

	got, err := client.Search(context.Background(), "  golang  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one valid hit, got %#v", got)
	}
	if got[0].ID != 77 || got[0].Title != "golang" || got[0].ChildCount != 2 {
		t.Fatalf("unexpected hit mapping: %#v", got[0])
	}

	empty, err := client.Search(context.Background(), "   ")
	if err != nil || empty != nil {
		t.Fatalf("expected blank query to short-circuit, got %#v, %v", empty, err)
	}
}

func TestLookupCategory(t *testing.T) {
	c, err := LookupCategory("Front-Page")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Endpoint != "topstories" {
		t.Fatalf("expected topstories endpoint, got %s", c.Endpoint)
	}
	if _, err := LookupCategory("nope"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
	all := Categories()
	all[0].ID = "mutated"
	if Categories()[0].ID != "front_page" {
		t.Fatalf("expected Categories to return a copy")
	}
}
