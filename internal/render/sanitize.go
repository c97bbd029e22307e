package render

import "github.com/microcosm-cc/bluemonday"

// bodyPolicy keeps the anchors the linkifier produces and escapes or drops
// everything else.
var bodyPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https")
	p.RequireParseableURLs(true)
	return p
}()

// Sanitize strips markup other than http(s) links from linkified body text.
func Sanitize(body string) string {
	return bodyPolicy.Sanitize(body)
}
