package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/bbpie/internal/config"
	"github.com/ppiankov/bbpie/internal/embed"
	"github.com/ppiankov/bbpie/internal/fetch"
	"github.com/ppiankov/bbpie/internal/output"
	"github.com/ppiankov/bbpie/internal/privacy"
	"github.com/ppiankov/bbpie/internal/render"
)

var (
	embedCSS      string
	embedRecord   string
	embedSanitize bool
	embedFormat   string
	noColor       bool
)

var embedCmd = &cobra.Command{
	Use:   "embed <status-url>",
	Short: "Render one tweet as embed HTML",
	Args:  cobra.ExactArgs(1),
	RunE:  embedAction,
}

func init() {
	addEmbedFlags(embedCmd)
	addEmbedFlags(rootCmd)
}

// addEmbedFlags registers the flags of embed, which a bare "bbpie <url>" also takes.
func addEmbedFlags(cmd *cobra.Command) {
	addRenderFlags(cmd)
	cmd.Flags().StringVar(&embedRecord, "record", "", "render from a saved JSON record instead of the API")
}

// addRenderFlags registers the flags shared by embed and feed.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&embedCSS, "css", "", "extra CSS for the "+render.BoxClass+" rule")
	cmd.Flags().BoolVar(&embedSanitize, "sanitize", false, "strip all markup except links from the body")
	cmd.Flags().StringVar(&embedFormat, "format", "", "output format: html, oembed, info")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
}

func embedAction(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}

	var fetcher embed.Fetcher
	if embedRecord != "" {
		fetcher = fetch.NewFile(embedRecord)
	} else {
		fetcher, err = newAPIFetcher(cfg)
		if err != nil {
			return err
		}
	}

	emb, err := newEmbedder(cfg, fetcher, log)
	if err != nil {
		return err
	}
	formatter, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	res, err := emb.Embed(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	log.Info("embedded", "id", res.ID, "screen_name", res.Record.User.ScreenName)
	return formatter.Format(os.Stdout, res)
}

func newAPIFetcher(cfg *config.Config) (*fetch.API, error) {
	api, err := fetch.NewAPI(fetch.APIOptions{
		BaseURL:   cfg.API.BaseURL,
		Token:     cfg.API.Token,
		UserAgent: cfg.API.UserAgent,
		Timeout:   cfg.API.Timeout.Duration,
	})
	if err != nil {
		return nil, fmt.Errorf("create api fetcher: %w", err)
	}
	return api, nil
}

// newEmbedder merges config with the command-line flags. Flags win.
func newEmbedder(cfg *config.Config, fetcher embed.Fetcher, log *slog.Logger) (*embed.Embedder, error) {
	css := render.ExtraCSS{}
	for k, v := range cfg.Embed.ExtraCSS {
		css[k] = v
	}
	if embedCSS != "" {
		css[render.BoxClass] = embedCSS
	}

	opts := embed.Options{
		ExtraCSS: css,
		Sanitize: cfg.Embed.Sanitize || embedSanitize,
		Logger:   log,
	}
	if cfg.Privacy.Redact.Enabled {
		patterns, err := privacy.Compile(cfg.Privacy.Redact.Patterns)
		if err != nil {
			return nil, err
		}
		opts.Redact = patterns
	}
	return embed.New(fetcher, opts)
}

func newFormatter(cfg *config.Config) (output.Formatter, error) {
	name := cfg.Embed.Format
	if embedFormat != "" {
		name = embedFormat
	}
	return output.New(name, !noColor && isTerminal(os.Stdout))
}
