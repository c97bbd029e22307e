package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/bbpie/internal/feed"
)

var feedCmd = &cobra.Command{
	Use:   "feed <feed-url>",
	Short: "Render every tweet linked from an RSS or Atom feed",
	Args:  cobra.ExactArgs(1),
	RunE:  feedAction,
}

func init() {
	addRenderFlags(feedCmd)
}

func feedAction(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	log = log.With("feed", args[0])

	api, err := newAPIFetcher(cfg)
	if err != nil {
		return err
	}
	emb, err := newEmbedder(cfg, api, log)
	if err != nil {
		return err
	}
	formatter, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	urls, err := feed.NewReader(cfg.API.Timeout.Duration, cfg.API.UserAgent).StatusURLs(ctx, args[0])
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		log.Info("no status links in feed")
		return nil
	}

	var rendered, failed int
	for _, u := range urls {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		res, err := emb.Embed(ctx, u)
		if err != nil {
			failed++
			log.Warn("skipping item", "url", u, "error", err)
			continue
		}
		if err := formatter.Format(os.Stdout, res); err != nil {
			return fmt.Errorf("write embed %s: %w", res.ID, err)
		}
		rendered++
	}

	log.Info("feed done", "rendered", rendered, "failed", failed)
	if rendered == 0 {
		return errors.New("no feed items could be rendered")
	}
	return nil
}
