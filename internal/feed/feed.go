// Package feed collects post URLs from RSS and Atom feeds.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/ppiankov/bbpie/internal/fetch"
	"github.com/ppiankov/bbpie/internal/tweet"
)

// Reader fetches feeds and picks out post URLs.
type Reader struct {
	client *http.Client
}

// NewReader creates a feed reader. Zero values use the fetch defaults.
func NewReader(timeout time.Duration, userAgent string) *Reader {
	if timeout <= 0 {
		timeout = fetch.DefaultTimeout
	}
	if userAgent == "" {
		userAgent = fetch.DefaultUserAgent
	}
	return &Reader{
		client: &http.Client{
			Timeout:   timeout,
			Transport: &uaTransport{base: http.DefaultTransport, userAgent: userAgent},
		},
	}
}

// StatusURLs fetches feedURL and returns the post URLs its items link to,
// in feed order and without duplicates.
func (r *Reader) StatusURLs(ctx context.Context, feedURL string) ([]string, error) {
	fp := gofeed.NewParser()
	fp.Client = r.client
	f, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}
	return statusURLs(f), nil
}

// ParseString parses a feed document and returns its post URLs.
func ParseString(doc string) ([]string, error) {
	f, err := gofeed.NewParser().ParseString(doc)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return statusURLs(f), nil
}

func statusURLs(f *gofeed.Feed) []string {
	seen := make(map[string]bool)
	var urls []string
	for _, item := range f.Items {
		for _, link := range itemLinks(item) {
			link = strings.TrimSpace(link)
			if seen[link] || !tweet.IsStatusURL(link) {
				continue
			}
			seen[link] = true
			urls = append(urls, link)
		}
	}
	return urls
}

func itemLinks(item *gofeed.Item) []string {
	links := make([]string, 0, len(item.Links)+2)
	links = append(links, item.Link)
	links = append(links, item.Links...)
	if item.GUID != "" {
		links = append(links, item.GUID)
	}
	return links
}

// uaTransport injects a User-Agent header into every request.
type uaTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *uaTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(req)
}
