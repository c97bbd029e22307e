// Package tweet holds the post record, its decoding, and post URL parsing.
package tweet

import "regexp"

// statusURLRe matches http://<host>/<user>/status(es)/<digits> with single-word
// host labels and user segment.
var statusURLRe = regexp.MustCompile(`^http://\w+\.\w+/\w+/status(?:es)?/(\d+)$`)

// IDFromURL extracts the numeric post ID from a full post URL.
// Input is matched as-is; surrounding whitespace makes it invalid.
func IDFromURL(rawURL string) (string, error) {
	m := statusURLRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", &InvalidURLError{URL: rawURL}
	}
	return m[1], nil
}

// IsStatusURL reports whether rawURL is a post URL IDFromURL accepts.
func IsStatusURL(rawURL string) bool {
	return statusURLRe.MatchString(rawURL)
}
