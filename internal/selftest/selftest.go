// Package selftest runs the embed pipeline's behavioral checks in-process.
package selftest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ppiankov/bbpie/internal/embed"
	"github.com/ppiankov/bbpie/internal/linkify"
	"github.com/ppiankov/bbpie/internal/timestamp"
	"github.com/ppiankov/bbpie/internal/tweet"
)

// Check is one named self-test.
type Check struct {
	Name string
	Run  func() error
}

// Checks returns the built-in checks in execution order.
func Checks() []Check {
	return []Check{
		{"linkify passes leave plain text alone", checkIdentity},
		{"mention link", checkMention},
		{"mention keeps boundary character", checkMentionBoundary},
		{"hashtag link", checkHashtag},
		{"url link", checkURL},
		{"parse +0000 timestamp", checkParseUTC},
		{"parse +0200 timestamp with 1-digit hour", checkParseOffset},
		{"easy-read PM", checkEasyReadPM},
		{"easy-read AM", checkEasyReadAM},
		{"id from status url", checkIDStatus},
		{"id from statuses url", checkIDStatuses},
		{"invalid urls rejected", checkInvalidURLs},
		{"end-to-end render", checkEndToEnd},
	}
}

// Run executes checks, printing one line per check to w. It returns an error
// when any check fails.
func Run(w io.Writer, checks []Check) error {
	failed := 0
	for _, c := range checks {
		if err := c.Run(); err != nil {
			failed++
			fmt.Fprintf(w, "[FAIL] %s: %v\n", c.Name, err)
			continue
		}
		fmt.Fprintf(w, "[ OK ] %s\n", c.Name)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	fmt.Fprintf(w, "\nAll %d checks passed.\n", len(checks))
	return nil
}

func expect(got, want string) error {
	if got != want {
		return fmt.Errorf("got %q, want %q", got, want)
	}
	return nil
}

func checkIdentity() error {
	for _, s := range []string{"", "plain words", "no triggers here, just text.", "email me at home"} {
		for name, pass := range map[string]func(string) string{
			"mentions": linkify.Mentions,
			"hashtags": linkify.Hashtags,
			"urls":     linkify.URLs,
		} {
			if got := pass(s); got != s {
				return fmt.Errorf("%s(%q) = %q", name, s, got)
			}
		}
	}
	return nil
}

func checkMention() error {
	return expect(linkify.Mentions("@user"), `<a href="http://twitter.com/user">@user</a>`)
}

func checkMentionBoundary() error {
	return expect(linkify.Mentions("Hey @user: hey"), `Hey <a href="http://twitter.com/user">@user</a>: hey`)
}

func checkHashtag() error {
	return expect(linkify.Hashtags("Total #fail!"), `Total <a href="http://twitter.com/search?q=fail">#fail</a>!`)
}

func checkURL() error {
	return expect(linkify.URLs("http://foo"), `<a href="http://foo">http://foo</a>`)
}

func checkParse(s string, want time.Time) error {
	got, err := timestamp.Parse(s)
	if err != nil {
		return err
	}
	if !got.Equal(want) {
		return fmt.Errorf("got %s, want %s", got, want)
	}
	return nil
}

func checkParseUTC() error {
	return checkParse("Wed Jun 09 18:31:55 +0000 2010", time.Date(2010, 6, 9, 18, 31, 55, 0, time.UTC))
}

func checkParseOffset() error {
	return checkParse("Mon Jan 11 5:01:00 +0200 1998", time.Date(1998, 1, 11, 3, 1, 0, 0, time.UTC))
}

func checkEasyReadPM() error {
	return expect(timestamp.EasyRead(time.Date(2010, 6, 9, 18, 31, 55, 0, time.UTC)), "6:31 PM Wed Jun 9, 2010")
}

func checkEasyReadAM() error {
	return expect(timestamp.EasyRead(time.Date(1998, 1, 11, 3, 1, 0, 0, time.UTC)), "3:01 AM Sun Jan 11, 1998")
}

func checkID(rawURL, want string) error {
	got, err := tweet.IDFromURL(rawURL)
	if err != nil {
		return err
	}
	return expect(got, want)
}

func checkIDStatus() error {
	return checkID("http://twitter.com/foo/status/1234567890", "1234567890")
}

func checkIDStatuses() error {
	return checkID("http://twitter.com/bar99/statuses/555555", "555555")
}

func checkInvalidURLs() error {
	for _, u := range []string{
		"not a url",
		"http://twitter.com/status/123",
		"http://twitter.com/foo/status/",
		"http://twitter.com/foo/status/123 ",
	} {
		if _, err := tweet.IDFromURL(u); !errors.Is(err, tweet.ErrInvalidURL) {
			return fmt.Errorf("IDFromURL(%q) error = %v, want invalid url", u, err)
		}
	}
	return nil
}

// staticFetcher serves one fixed record.
type staticFetcher struct {
	rec *tweet.Record
}

func (f staticFetcher) Fetch(_ context.Context, _ string) (*tweet.Record, error) {
	return f.rec, nil
}

func checkEndToEnd() error {
	rec := &tweet.Record{
		Text:      "Cooking with @chef #dinner http://pf.io/x",
		CreatedAt: "Wed Jun 09 18:31:55 +0000 2010",
		Source:    "web",
		User: tweet.User{
			ScreenName:                "punchfork",
			Name:                      "Punchfork",
			ProfileImageURL:           "http://a0.twimg.com/pf.png",
			ProfileBackgroundColor:    "FFFFFF",
			ProfileBackgroundImageURL: "http://a0.twimg.com/bg.png",
		},
	}
	e, err := embed.New(staticFetcher{rec}, embed.Options{
		Now: func() time.Time { return time.Date(2010, 6, 10, 0, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		return err
	}
	res, err := e.Embed(context.Background(), "http://twitter.com/punchfork/status/15812345")
	if err != nil {
		return err
	}

	for _, want := range []string{
		"class='bbpBox15812345'",
		`<a href="http://twitter.com/chef">@chef</a>`,
		`<a href="http://twitter.com/search?q=dinner">#dinner</a>`,
		`<a href="http://pf.io/x">http://pf.io/x</a>`,
		"6:31 PM Wed Jun 9, 2010",
	} {
		if !strings.Contains(res.HTML, want) {
			return fmt.Errorf("html missing %q", want)
		}
	}
	if n := strings.Count(res.HTML, "<br/>punchfork</span>"); n != 1 {
		return fmt.Errorf("author line appears %d times, want 1", n)
	}
	return nil
}
