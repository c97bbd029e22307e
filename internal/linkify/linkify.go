// Package linkify rewrites mentions, hashtags and raw URLs in post text into
// HTML anchors.
package linkify

import (
	"regexp"
	"strings"

	"github.com/ppiankov/bbpie/internal/tweet"
)

const searchBase = tweet.ProfileBase + "search?q="

var (
	mentionRe = regexp.MustCompile(`(^|\W)@(\w+)\b`)
	hashtagRe = regexp.MustCompile(`(^|\W)#(\w+)\b`)
	urlRe     = regexp.MustCompile(`(^|\W)(http://\S+)`)

	// anchorRe finds anchor elements already present in the text, including
	// the ones produced by the passes below.
	anchorRe = regexp.MustCompile(`(?is)<a\s[^>]*>.*?</a>`)
)

// Mentions replaces @user with <a href="http://twitter.com/user">@user</a>.
// The character before the @ is kept.
func Mentions(text string) string {
	return mentionRe.ReplaceAllString(text, `${1}<a href="`+tweet.ProfileBase+`${2}">@${2}</a>`)
}

// Hashtags replaces #tag with <a href="http://twitter.com/search?q=tag">#tag</a>.
func Hashtags(text string) string {
	return hashtagRe.ReplaceAllString(text, `${1}<a href="`+searchBase+`${2}">#${2}</a>`)
}

// URLs wraps every http:// URL in an anchor pointing at itself. The URL runs
// up to the next whitespace.
func URLs(text string) string {
	return urlRe.ReplaceAllString(text, `${1}<a href="${2}">${2}</a>`)
}

// Text collapses newlines to spaces and applies the URL, hashtag and mention
// passes in that order. The hashtag and mention passes leave existing anchors
// untouched, so a #fragment or @ inside a linked URL is not wrapped twice.
func Text(text string) string {
	text = CollapseNewlines(text)
	text = URLs(text)
	text = outsideAnchors(text, Hashtags)
	return outsideAnchors(text, Mentions)
}

// CollapseNewlines replaces each newline with a single space.
func CollapseNewlines(text string) string {
	return strings.ReplaceAll(text, "\n", " ")
}

// outsideAnchors runs pass over the text between anchor elements only.
func outsideAnchors(text string, pass func(string) string) string {
	locs := anchorRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return pass(text)
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		b.WriteString(pass(text[last:loc[0]]))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(pass(text[last:]))
	return b.String()
}
