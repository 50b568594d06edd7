package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/bilingo/internal/feed"
	"github.com/ziadkadry99/bilingo/internal/progress"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Summarize RSS feeds into posts",
	Long: `Fetches every feed listed in feeds.json, writes a summarized page for
each new item under posts/ and prepends the new entries to posts/index.json.
The content source must be a local directory.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().String("feeds", "", "feeds file (default <source>/feeds.json)")
	ingestCmd.Flags().Int("per-feed", feed.DefaultPerFeed, "items taken from each feed")
	ingestCmd.Flags().Bool("quiet", false, "suppress progress output")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if strings.HasPrefix(cfg.Source, "http://") || strings.HasPrefix(cfg.Source, "https://") {
		return fmt.Errorf("ingest writes into the content source, which must be a local directory, not %s", cfg.Source)
	}
	feedsFile, _ := cmd.Flags().GetString("feeds")
	if feedsFile == "" {
		feedsFile = filepath.Join(cfg.Source, "feeds.json")
	}
	sources, err := feed.LoadSources(feedsFile)
	if err != nil {
		return fmt.Errorf("loading feeds: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ingester := feed.NewIngester(cfg.Source)
	ingester.Client = &http.Client{Timeout: cfg.RequestTimeout}
	ingester.PerFeed, _ = cmd.Flags().GetInt("per-feed")
	ingester.Logger = logger
	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		ingester.Reporter = progress.NewReporter()
	}

	res, err := ingester.Run(ctx, sources)
	if err != nil {
		return fmt.Errorf("ingesting feeds: %w", err)
	}
	fmt.Printf("Generated %d posts (%d feeds failed)\n", res.Posts, res.Failed)
	return nil
}
