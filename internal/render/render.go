// Package render substitutes post fields into the Blackbird Pie embed template.
package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/ppiankov/bbpie/internal/tweet"
)

// BoxClass is the only ExtraCSS key the template uses.
const BoxClass = "bbpBox"

// ExtraCSS maps a class key to CSS declarations injected into that class's rule.
type ExtraCSS map[string]string

// Box returns the CSS for BoxClass, or "" when none is set.
func (c ExtraCSS) Box() string {
	return c[BoxClass]
}

// Fields is the complete set of values the template consumes.
type Fields struct {
	ID                     string
	TweetURL               string
	ScreenName             string
	RealName               string
	TweetText              string // already linkified; inserted as-is
	Source                 string
	ProfilePic             string
	ProfileBackgroundColor string
	ProfileBackgroundImage string
	TimeStamp              string // raw API timestamp, shown as the link title
	EasyTimeStamp          string
	BoxCSS                 string
}

// The CSS carries literal braces, so actions use [[ ]].
const embedTemplate = `<!-- [[.TweetURL]] -->
<style type='text/css'>.bbpBox[[.ID]] {[[.BoxCSS]]background:url([[.ProfileBackgroundImage]]) #[[.ProfileBackgroundColor]];padding:20px;} p.bbpTweet{background:#fff;padding:10px 12px 10px 12px;margin:0;min-height:48px;color:#000;font-size:18px !important;line-height:22px;-moz-border-radius:5px;-webkit-border-radius:5px} p.bbpTweet span.metadata{display:block;width:100%;clear:both;margin-top:8px;padding-top:12px;height:40px;border-top:1px solid #fff;border-top:1px solid #e6e6e6} p.bbpTweet span.metadata span.author{line-height:19px} p.bbpTweet span.metadata span.author img{float:left;margin:0 7px 0 0px;width:38px;height:38px} p.bbpTweet span.timestamp{font-size:12px;display:block}</style>
<div class='bbpBox[[.ID]]'><p class='bbpTweet'>[[.TweetText]]<span class='timestamp'><a title='[[.TimeStamp]]' href='[[.TweetURL]]'>[[.EasyTimeStamp]]</a> via [[.Source]]</span><span class='metadata'><span class='author'><a href='[[profile .ScreenName]]'><img src='[[.ProfilePic]]' /></a><strong><a href='[[profile .ScreenName]]'>[[.RealName]]</a></strong><br/>[[.ScreenName]]</span></span></p></div>
<!-- end of tweet -->`

var tmpl = template.Must(template.New("embed").
	Delims("[[", "]]").
	Funcs(template.FuncMap{
		"profile": func(screenName string) string { return tweet.ProfileBase + screenName },
	}).
	Parse(embedTemplate))

// Render returns the embed HTML for f. Field values are not escaped.
func Render(f Fields) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, f); err != nil {
		return "", fmt.Errorf("render embed %s: %w", f.ID, err)
	}
	return b.String(), nil
}
