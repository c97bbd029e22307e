// Package output writes rendered embeds in the formats the CLI offers.
package output

import (
	"fmt"
	"io"

	"github.com/ppiankov/bbpie/internal/embed"
)

// Formatter writes a rendered embed to w.
type Formatter interface {
	Format(w io.Writer, res *embed.Result) error
}

// New returns the formatter for name. Color only affects "info".
func New(name string, color bool) (Formatter, error) {
	switch name {
	case "html", "":
		return NewHTML(), nil
	case "oembed":
		return NewOEmbed(), nil
	case "info":
		return NewInfo(color), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want html, oembed, or info)", name)
	}
}

// HTMLFormatter writes the embed fragment followed by a newline.
type HTMLFormatter struct{}

// NewHTML creates an HTML formatter.
func NewHTML() *HTMLFormatter {
	return &HTMLFormatter{}
}

func (f *HTMLFormatter) Format(w io.Writer, res *embed.Result) error {
	_, err := fmt.Fprintln(w, res.HTML)
	return err
}
