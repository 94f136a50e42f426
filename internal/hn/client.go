package hn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBaseURL   = "https://hacker-news.firebaseio.com/v0"
	DefaultSearchURL = "https://hn.algolia.com/api/v1/search"

	defaultLimit       = 30
	defaultWorkers     = 8
	defaultMaxComments = 500
	defaultTimeout     = 15 * time.Second
)

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL     string
	SearchURL   string
	HTTPClient  *http.Client
	Limit       int
	Workers     int
	MaxComments int
	Interval    time.Duration
	Timeout     time.Duration
}

// Client fetches stories and comment threads from the Hacker News API. It is
// safe for concurrent use and is shared read-only by every view.
type Client struct {
	baseURL     string
	searchURL   string
	http        *http.Client
	limit       int
	workers     int
	maxComments int
	throttle    *throttle
}

// NewClient builds a Client from the supplied options.
func NewClient(opts Options) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		searchURL:   opts.SearchURL,
		http:        opts.HTTPClient,
		limit:       opts.Limit,
		workers:     opts.Workers,
		maxComments: opts.MaxComments,
		throttle:    newThrottle(opts.Interval),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.searchURL == "" {
		c.searchURL = DefaultSearchURL
	}
	if c.http == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		c.http = &http.Client{Timeout: timeout}
	}
	if c.limit <= 0 {
		c.limit = defaultLimit
	}
	if c.workers <= 0 {
		c.workers = defaultWorkers
	}
	if c.maxComments <= 0 {
		c.maxComments = defaultMaxComments
	}
	return c
}

// FetchList returns the first stories of a category, in feed order. Deleted
// and dead entries are skipped.
func (c *Client) FetchList(ctx context.Context, category Category) ([]Item, error) {
	var ids []int
	endpoint := fmt.Sprintf("%s/%s.json", c.baseURL, category.Endpoint)
	if err := c.getJSON(ctx, "fetch "+category.ID, endpoint, &ids); err != nil {
		return nil, err
	}
	if len(ids) > c.limit {
		ids = ids[:c.limit]
	}
	raw, err := c.fetchItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(raw))
	for _, a := range raw {
		if a.Deleted || a.Dead || a.ID == 0 {
			continue
		}
		items = append(items, a.item())
	}
	return items, nil
}

// FetchDetail loads an item together with its comment tree, flattened in
// depth-first order.
func (c *Client) FetchDetail(ctx context.Context, id int) (Detail, error) {
	root, err := c.fetchItem(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	detail := Detail{Item: root.item(), Text: HTMLToText(root.Text)}
	comments, err := c.fetchThread(ctx, root.Kids, 0, nil)
	if err != nil {
		return Detail{}, err
	}
	detail.Comments = comments
	return detail, nil
}

// Search queries the Algolia HN index for stories matching query.
func (c *Client) Search(ctx context.Context, query string) ([]Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("tags", "story")
	params.Set("hitsPerPage", strconv.Itoa(c.limit))
	endpoint := c.searchURL + "?" + params.Encode()
	var resp searchResponse
	if err := c.getJSON(ctx, "search", endpoint, &resp); err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		id, err := strconv.Atoi(hit.ObjectID)
		if err != nil {
			continue
		}
		items = append(items, Item{
			ID:         id,
			Title:      hit.Title,
			URL:        hit.URL,
			Author:     hit.Author,
			CreatedAt:  time.Unix(hit.CreatedAtI, 0),
			Points:     hit.Points,
			ChildCount: hit.NumComments,
		})
	}
	return items, nil
}

func (c *Client) fetchThread(ctx context.Context, ids []int, depth int, out []Comment) ([]Comment, error) {
	if len(ids) == 0 || len(out) >= c.maxComments {
		return out, nil
	}
	kids, err := c.fetchItems(ctx, ids)
	if err != nil {
		return out, err
	}
	for _, kid := range kids {
		if len(out) >= c.maxComments {
			break
		}
		if kid.Deleted || kid.Dead || kid.ID == 0 {
			continue
		}
		out = append(out, Comment{
			ID:        kid.ID,
			Author:    kid.By,
			Text:      HTMLToText(kid.Text),
			CreatedAt: time.Unix(kid.Time, 0),
			Depth:     depth,
		})
		if out, err = c.fetchThread(ctx, kid.Kids, depth+1, out); err != nil {
			return out, err
		}
	}
	return out, nil
}

// fetchItems retrieves items concurrently while preserving the order of ids.
func (c *Client) fetchItems(ctx context.Context, ids []int) ([]apiItem, error) {
	items := make([]apiItem, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, id := range ids {
		g.Go(func() error {
			item, err := c.fetchItem(gctx, id)
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) fetchItem(ctx context.Context, id int) (apiItem, error) {
	var item apiItem
	endpoint := fmt.Sprintf("%s/item/%d.json", c.baseURL, id)
	if err := c.getJSON(ctx, fmt.Sprintf("fetch item %d", id), endpoint, &item); err != nil {
		return apiItem{}, err
	}
	return item, nil
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, v interface{}) error {
	if err := c.throttle.wait(ctx); err != nil {
		return &FetchError{Op: op, URL: endpoint, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &FetchError{Op: op, URL: endpoint, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Op: op, URL: endpoint, Err: errors.Wrap(err, "http get")}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &FetchError{
			Op:     op,
			URL:    endpoint,
			Status: resp.StatusCode,
			Err:    errors.Errorf("unexpected status %s", resp.Status),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &FetchError{Op: op, URL: endpoint, Err: errors.Wrapf(err, "decode %s", endpoint)}
	}
	return nil
}
