package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/bilingo/internal/progress"
	"github.com/ziadkadry99/bilingo/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static bilingual site",
	Long: `Renders every enabled variant in Arabic and English into the output
directory, writes the root page in the site's default language, copies the
selected static assets and the post pages items link to, and writes
sitemap.xml when the site config sets site_url.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().Bool("quiet", false, "suppress progress output")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	variants, err := cfg.ContentVariants()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator := site.NewGenerator(newLoader(cfg, logger), cfg.OutputDir, variants)
	generator.Assets = assetOptions(cfg)
	generator.Logger = logger
	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		generator.Reporter = progress.NewReporter()
	}

	res, err := generator.Build(ctx)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages, %d assets, %d documents)\n",
		cfg.OutputDir, res.Pages, res.Assets, res.Documents)
	return nil
}
