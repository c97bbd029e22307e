package output

import (
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ppiankov/bbpie/internal/embed"
	"github.com/ppiankov/bbpie/internal/timestamp"
)

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// InfoFormatter writes a short human-readable summary of the post instead of HTML.
type InfoFormatter struct {
	color bool
	now   func() time.Time
}

// NewInfo creates an info formatter. Set color=true for ANSI colors.
func NewInfo(color bool) *InfoFormatter {
	return &InfoFormatter{color: color, now: time.Now}
}

func (f *InfoFormatter) Format(w io.Writer, res *embed.Result) error {
	u := res.Record.User

	fmt.Fprintf(w, "%s %s\n", f.bold("@"+u.ScreenName), f.dim("("+u.Name+")"))
	fmt.Fprintf(w, "  %s\n", stripHTML(res.Record.Text))
	fmt.Fprintf(w, "  %s %s via %s\n",
		timestamp.EasyRead(res.Local),
		f.dim("("+humanize.RelTime(res.Created, f.now(), "ago", "from now")+")"),
		stripHTML(res.Record.Source),
	)
	fmt.Fprintf(w, "  %s\n", f.dim(res.URL))
	if u.UTCOffset != nil {
		fmt.Fprintf(w, "  %s\n", f.dim("author utc offset "+formatOffset(*u.UTCOffset)))
	}
	_, err := fmt.Fprintf(w, "  %s\n", f.dim(fmt.Sprintf("embed %s bytes", humanize.Comma(int64(len(res.HTML))))))
	return err
}

func stripHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

// formatOffset renders seconds east of UTC as "+5:30" or "-5:00".
func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%d:%02d", sign, seconds/3600, seconds%3600/60)
}

// ANSI helpers, no-op when color is false.

func (f *InfoFormatter) bold(s string) string {
	if !f.color {
		return s
	}
	return "\033[1m" + s + "\033[0m"
}

func (f *InfoFormatter) dim(s string) string {
	if !f.color {
		return s
	}
	return "\033[2m" + s + "\033[0m"
}
