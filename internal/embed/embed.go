// Package embed turns a post URL into Blackbird Pie embed HTML.
package embed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"time"

	"github.com/ppiankov/bbpie/internal/linkify"
	"github.com/ppiankov/bbpie/internal/privacy"
	"github.com/ppiankov/bbpie/internal/render"
	"github.com/ppiankov/bbpie/internal/timestamp"
	"github.com/ppiankov/bbpie/internal/tweet"
)

// Fetcher retrieves the record for a post ID.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (*tweet.Record, error)
}

// Options tune a render. The zero value renders exactly like Blackbird Pie.
type Options struct {
	ExtraCSS render.ExtraCSS
	Sanitize bool             // run the linkified body through render.Sanitize
	Redact   []*regexp.Regexp // applied to the body before linkifying
	Now      func() time.Time // clock whose zone offset localizes timestamps
	Logger   *slog.Logger
}

// Result is a rendered embed together with the data it was built from.
type Result struct {
	ID      string
	URL     string
	Record  *tweet.Record
	Created time.Time // creation instant, UTC
	Local   time.Time // Created shifted by Localize
	HTML    string
}

// Embedder renders embeds for post URLs. It holds no per-call state.
type Embedder struct {
	fetcher Fetcher
	opts    Options
}

// New creates an Embedder. ExtraCSS in opts is validated here.
func New(f Fetcher, opts Options) (*Embedder, error) {
	if f == nil {
		return nil, errors.New("embed: fetcher is required")
	}
	if err := opts.ExtraCSS.Validate(); err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Embedder{fetcher: f, opts: opts}, nil
}

// Embed extracts the ID from rawURL, fetches the record once, and renders it.
// Any failure aborts the whole render.
func (e *Embedder) Embed(ctx context.Context, rawURL string) (*Result, error) {
	log := e.opts.Logger.With("url", rawURL)

	id, err := tweet.IDFromURL(rawURL)
	if err != nil {
		return nil, err
	}
	log = log.With("id", id)

	log.Debug("fetching record")
	start := time.Now()
	rec, err := e.fetcher.Fetch(ctx, id)
	if err != nil {
		if !errors.Is(err, tweet.ErrFetch) && !errors.Is(err, tweet.ErrMalformedRecord) {
			err = &tweet.FetchError{ID: id, Err: err}
		}
		log.Debug("fetch failed", "error", err)
		return nil, err
	}
	log.Debug("fetched record", "screen_name", rec.User.ScreenName, "elapsed", time.Since(start))

	created, err := timestamp.Parse(rec.CreatedAt)
	if err != nil {
		return nil, &tweet.MalformedRecordError{Field: "created_at", Err: err}
	}
	local := timestamp.Localize(created, e.opts.Now())

	html, err := render.Render(render.Fields{
		ID:                     id,
		TweetURL:               rawURL,
		ScreenName:             rec.User.ScreenName,
		RealName:               rec.User.Name,
		TweetText:              e.body(rec.Text),
		Source:                 rec.Source,
		ProfilePic:             rec.User.ProfileImageURL,
		ProfileBackgroundColor: rec.User.ProfileBackgroundColor,
		ProfileBackgroundImage: rec.User.ProfileBackgroundImageURL,
		TimeStamp:              rec.CreatedAt,
		EasyTimeStamp:          timestamp.EasyRead(local),
		BoxCSS:                 e.opts.ExtraCSS.Box(),
	})
	if err != nil {
		return nil, err
	}
	log.Debug("rendered embed", "bytes", len(html))

	return &Result{
		ID:      id,
		URL:     rawURL,
		Record:  rec,
		Created: created,
		Local:   local,
		HTML:    html,
	}, nil
}

func (e *Embedder) body(text string) string {
	if len(e.opts.Redact) > 0 {
		text = privacy.Apply(text, e.opts.Redact)
	}
	text = linkify.Text(text)
	if e.opts.Sanitize {
		text = render.Sanitize(text)
	}
	return text
}
