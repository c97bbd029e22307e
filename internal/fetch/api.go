// Package fetch retrieves post records for the embedder.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ppiankov/bbpie/internal/tweet"
)

const (
	DefaultBaseURL   = "http://api.twitter.com/1"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "bbpie/1.0"
)

// API fetches records from a statuses/show.json endpoint.
type API struct {
	client    *http.Client
	baseURL   string
	token     string
	userAgent string
}

// APIOptions configures NewAPI. Zero values fall back to the defaults above.
type APIOptions struct {
	BaseURL   string
	Token     string // sent as a bearer token when set
	UserAgent string
	Timeout   time.Duration
}

// NewAPI creates an API fetcher.
func NewAPI(opts APIOptions) (*API, error) {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("fetch: invalid base url %q: %w", opts.BaseURL, err)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &API{
		client:    &http.Client{Timeout: timeout},
		baseURL:   base,
		token:     opts.Token,
		userAgent: ua,
	}, nil
}

// Fetch requests the record for id. It makes a single attempt.
func (a *API) Fetch(ctx context.Context, id string) (*tweet.Record, error) {
	if id == "" {
		return nil, &tweet.FetchError{ID: id, Err: errors.New("empty id")}
	}

	endpoint := fmt.Sprintf("%s/statuses/show.json?id=%s", a.baseURL, url.QueryEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &tweet.FetchError{ID: id, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Accept", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &tweet.FetchError{ID: id, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &tweet.FetchError{ID: id, Status: resp.StatusCode}
	}

	rec, err := tweet.DecodeRecord(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tweet %s: %w", id, err)
	}
	return rec, nil
}
