package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/bbpie/internal/embed"
	"github.com/ppiankov/bbpie/internal/tweet"
)

func testResult() *embed.Result {
	offset := -18000
	created := time.Date(2010, 6, 9, 18, 31, 55, 0, time.UTC)
	return &embed.Result{
		ID:  "20",
		URL: "http://twitter.com/jack/status/20",
		Record: &tweet.Record{
			Text:      "just setting up my twttr\nsecond line",
			CreatedAt: "Wed Jun 09 18:31:55 +0000 2010",
			Source:    `<a href="http://example.com">web &amp; more</a>`,
			User: tweet.User{
				ScreenName: "jack",
				Name:       "Jack Dorsey",
				UTCOffset:  &offset,
			},
		},
		Created: created,
		Local:   created,
		HTML:    "<div class='bbpBox20'><p class='bbpTweet'>x</p></div>",
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"html", false},
		{"", false},
		{"oembed", false},
		{"json", true},
		{"info", false},
		{"xml", true},
	}
	for _, tt := range tests {
		_, err := New(tt.name, false)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q) err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestHTMLFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := NewHTML().Format(&buf, testResult()); err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "<div class='bbpBox20'><p class='bbpTweet'>x</p></div>\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestOEmbedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOEmbed().Format(&buf, testResult()); err != nil {
		t.Fatalf("format: %v", err)
	}

	if strings.Contains(buf.String(), `\u003c`) {
		t.Errorf("html was escaped in JSON output:\n%s", buf.String())
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}

	checks := map[string]string{
		"type":          "rich",
		"version":       "1.0",
		"url":           "http://twitter.com/jack/status/20",
		"author_name":   "Jack Dorsey",
		"author_url":    "http://twitter.com/jack",
		"provider_name": "Twitter",
		"html":          "<div class='bbpBox20'><p class='bbpTweet'>x</p></div>",
	}
	for key, want := range checks {
		if got[key] != want {
			t.Errorf("%s = %v, want %q", key, got[key], want)
		}
	}
}

func TestInfoFormat(t *testing.T) {
	f := NewInfo(false)
	f.now = func() time.Time { return time.Date(2012, 6, 9, 18, 31, 55, 0, time.UTC) }

	var buf bytes.Buffer
	if err := f.Format(&buf, testResult()); err != nil {
		t.Fatalf("format: %v", err)
	}
	out := buf.String()

	checks := []string{
		"@jack (Jack Dorsey)",
		"just setting up my twttr second line",
		"6:31 PM Wed Jun 9, 2010 (2 years ago) via web & more",
		"http://twitter.com/jack/status/20",
		"author utc offset -5:00",
		"embed 53 bytes",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n\nfull output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("ANSI codes present with color disabled")
	}
}

func TestInfoFormat_Color(t *testing.T) {
	var buf bytes.Buffer
	if err := NewInfo(true).Format(&buf, testResult()); err != nil {
		t.Fatalf("format: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[1m@jack\033[0m") {
		t.Errorf("expected bold screen name, got:\n%s", buf.String())
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "+0:00"},
		{-18000, "-5:00"},
		{19800, "+5:30"},
		{-1800, "-0:30"},
	}
	for _, tt := range tests {
		if got := formatOffset(tt.seconds); got != tt.want {
			t.Errorf("formatOffset(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
