// Package timestamp parses API creation timestamps and formats them for
// display in an embed.
package timestamp

import (
	"fmt"
	"regexp"
	"time"
)

// Layout is the API creation timestamp format, e.g.
// "Wed Jun 09 18:31:55 +0000 2010". Single-digit days and hours are accepted.
const Layout = "Mon Jan _2 15:04:05 -0700 2006"

// easyLayout is strftime("%I:%M %p %a %b %d, %Y"); zero padding is removed
// afterwards by leadingZeroRe.
const easyLayout = "03:04 PM Mon Jan 02, 2006"

// leadingZeroRe matches a 0 at the start of the string or after spaces.
var leadingZeroRe = regexp.MustCompile(`(^| +)0`)

// Parse converts a creation timestamp into the UTC instant it names.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// Localize shifts instant into the zone offset that now has in its location.
//
// The offset is the one in effect at now, not at instant: a post from
// January viewed in July is shown with the summer offset. This matches the
// Blackbird Pie output and is intentional.
func Localize(instant, now time.Time) time.Time {
	name, offset := now.Zone()
	return instant.In(time.FixedZone(name, offset))
}

// EasyRead formats t like "6:31 PM Wed Jun 9, 2010".
func EasyRead(t time.Time) string {
	return leadingZeroRe.ReplaceAllString(t.Format(easyLayout), "${1}")
}
