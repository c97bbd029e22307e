// Package privacy masks sensitive substrings of post text before it is embedded.
package privacy

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder replaces every redacted match. It contains no @, # or URL, so
// the linkifier leaves it alone.
const Placeholder = "[REDACTED]"

// Compile compiles redaction patterns. A pattern that is blank or can match
// the empty string is rejected, since it would splice the placeholder
// between every character.
func Compile(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("redact pattern %q: empty", p)
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile redact pattern %q: %w", p, err)
		}
		if re.MatchString("") {
			return nil, fmt.Errorf("redact pattern %q: matches empty text", p)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Apply replaces every match of patterns in text with Placeholder.
func Apply(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		text = re.ReplaceAllLiteralString(text, Placeholder)
	}
	return text
}
