package output

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/ppiankov/bbpie/internal/embed"
	"github.com/ppiankov/bbpie/internal/tweet"
)

// oEmbed 1.0 "rich" response.
type oEmbedResponse struct {
	Type         string `json:"type"`
	Version      string `json:"version"`
	URL          string `json:"url"`
	AuthorName   string `json:"author_name"`
	AuthorURL    string `json:"author_url"`
	ProviderName string `json:"provider_name"`
	ProviderURL  string `json:"provider_url"`
	HTML         string `json:"html"`
}

// OEmbedFormatter writes the embed as an oEmbed JSON document.
type OEmbedFormatter struct{}

// NewOEmbed creates an oEmbed formatter.
func NewOEmbed() *OEmbedFormatter {
	return &OEmbedFormatter{}
}

func (f *OEmbedFormatter) Format(w io.Writer, res *embed.Result) error {
	out := oEmbedResponse{
		Type:         "rich",
		Version:      "1.0",
		URL:          res.URL,
		AuthorName:   res.Record.User.Name,
		AuthorURL:    res.Record.User.ProfileURL(),
		ProviderName: "Twitter",
		ProviderURL:  tweet.ProfileBase,
		HTML:         res.HTML,
	}

	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
